package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is the fixed-width UTC layout for stored timestamps.
	// Every value has nine fractional digits so text order matches time order.
	TimestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

	// TimeFormat is the clock format shown on the dashboard (HH:MM:SS)
	TimeFormat = "15:04:05"

	// LongDateFormat is the dashboard headline date, e.g. "Friday, October 16, 2026"
	LongDateFormat = "Monday, January 2, 2006"

	// DefaultTimezone uses the system local timezone
	DefaultTimezone = "Local"
)
