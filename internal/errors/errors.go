package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/dayly/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Warning formats a non-fatal problem, such as a failed save after a check-in.
func Warning(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Warning: %v", err)
}

// Warn logs err and prints it as a warning on stderr. It is a no-op for nil.
func Warn(err error) {
	if err == nil {
		return
	}
	logger.Warn("Non-fatal error", "error", err)
	fmt.Fprintln(os.Stderr, Warning(err))
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
