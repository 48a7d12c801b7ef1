// Package config resolves dayly settings from, in increasing precedence,
// built-in defaults, the YAML config file, .env files, DAYLY_* environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/dayly/internal/calendar"
	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/seasons"
)

const (
	EnvDB         = "DAYLY_DB"
	EnvTimezone   = "DAYLY_TIMEZONE"
	EnvHemisphere = "DAYLY_HEMISPHERE"
	EnvDebug      = "DAYLY_DEBUG"
)

type Config struct {
	DB              string `yaml:"db" json:"db" validate:"required"`
	Timezone        string `yaml:"timezone" json:"timezone"`
	Hemisphere      string `yaml:"hemisphere" json:"hemisphere" validate:"oneof=northern southern"`
	Debug           bool   `yaml:"debug" json:"debug"`
	GoalDefaultDays int    `yaml:"goal_default_days" json:"goal_default_days" validate:"gte=7,lte=730"`
}

// Overrides carries flag values; empty strings and nil pointers are ignored.
type Overrides struct {
	DB         string
	Timezone   string
	Hemisphere string
	Debug      *bool
}

var validate = validator.New()

func Default() Config {
	return Config{
		DB:              constants.DefaultConfigPath,
		Timezone:        constants.DefaultTimezone,
		Hemisphere:      string(constants.HemisphereNorthern),
		GoalDefaultDays: constants.GoalDefaultDays,
	}
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Dir returns the expanded config directory.
func Dir() string {
	return ExpandPath(constants.DefaultConfigDir)
}

// FilePath returns the default YAML config file location.
func FilePath() string {
	return filepath.Join(Dir(), constants.ConfigFileName)
}

// Load resolves the configuration. A missing config file or .env file is not
// an error; a malformed one is.
func Load(path string, overrides Overrides) (Config, error) {
	cfg := Default()

	if err := cfg.readFile(path); err != nil {
		return Config{}, err
	}

	// godotenv never overwrites variables that are already set, so the real
	// environment wins over both files, and the working directory wins over
	// the config directory.
	for _, envFile := range []string{constants.EnvFileName, filepath.Join(filepath.Dir(path), constants.EnvFileName)} {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.apply(overrides)

	cfg.DB = ExpandPath(cfg.DB)
	if h, err := seasons.ParseHemisphere(cfg.Hemisphere); err == nil {
		cfg.Hemisphere = string(h)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadFile returns the defaults overlaid with the YAML file only, ignoring
// the environment. It is what "config set" edits.
func ReadFile(path string) (Config, error) {
	cfg := Default()
	if err := cfg.readFile(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Set assigns one field by its YAML key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "db":
		c.DB = value
	case "timezone":
		c.Timezone = value
	case "hemisphere":
		h, err := seasons.ParseHemisphere(value)
		if err != nil {
			return err
		}
		c.Hemisphere = string(h)
	case "debug":
		debug, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid debug value %q: %w", value, err)
		}
		c.Debug = debug
	case "goal_default_days":
		days, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid goal_default_days value %q: %w", value, err)
		}
		c.GoalDefaultDays = days
	default:
		return fmt.Errorf("unknown config key %q (valid keys: db, timezone, hemisphere, debug, goal_default_days)", key)
	}
	return nil
}

func (c *Config) readFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDB); v != "" {
		c.DB = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv(EnvHemisphere); v != "" {
		c.Hemisphere = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvDebug, v, err)
		}
		c.Debug = debug
	}
	return nil
}

func (c *Config) apply(o Overrides) {
	if o.DB != "" {
		c.DB = o.DB
	}
	if o.Timezone != "" {
		c.Timezone = o.Timezone
	}
	if o.Hemisphere != "" {
		c.Hemisphere = o.Hemisphere
	}
	if o.Debug != nil {
		c.Debug = *o.Debug
	}
}

// Validate checks field constraints and that the timezone can be loaded.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q (got %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := calendar.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
