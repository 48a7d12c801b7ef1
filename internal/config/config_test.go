package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/dayly/internal/constants"
)

// clearEnv unsets the DAYLY_* variables for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDB, EnvTimezone, EnvHemisphere, EnvDebug} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := Load(filepath.Join(dir, "missing.yaml"), Overrides{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Hemisphere != string(constants.HemisphereNorthern) {
		t.Errorf("expected northern hemisphere, got %s", cfg.Hemisphere)
	}
	if cfg.GoalDefaultDays != constants.GoalDefaultDays {
		t.Errorf("expected %d default days, got %d", constants.GoalDefaultDays, cfg.GoalDefaultDays)
	}
	if strings.HasPrefix(cfg.DB, "~") {
		t.Errorf("expected expanded db path, got %s", cfg.DB)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yaml")
	yamlCfg := "db: /from/yaml.db\ntimezone: UTC\nhemisphere: southern\ngoal_default_days: 30\n"
	if err := os.WriteFile(path, []byte(yamlCfg), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DAYLY_DB=/from/dotenv.db\nDAYLY_DEBUG=true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvHemisphere, "Northern")

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DB != "/from/dotenv.db" {
		t.Errorf(".env should override yaml, got db=%s", cfg.DB)
	}
	if !cfg.Debug {
		t.Error("expected debug from .env")
	}
	if cfg.Hemisphere != "northern" {
		t.Errorf("environment should override yaml, got %s", cfg.Hemisphere)
	}
	if cfg.Timezone != "UTC" || cfg.GoalDefaultDays != 30 {
		t.Errorf("expected yaml values to survive, got %+v", cfg)
	}

	debug := false
	cfg, err = Load(path, Overrides{DB: "/from/flag.db", Debug: &debug})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DB != "/from/flag.db" || cfg.Debug {
		t.Errorf("flags should win, got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad hemisphere", "hemisphere: equatorial\n", "hemisphere"},
		{"goal days out of range", "goal_default_days: 1000\n", "goaldefaultdays"},
		{"bad timezone", "timezone: Mars/Olympus\n", "timezone"},
		{"malformed yaml", "db: [unterminated\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			chdir(t, dir)
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path, Overrides{})
			if err == nil || !strings.Contains(strings.ToLower(err.Error()), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Default()
	cfg.DB = "/tmp/dayly-test.db"
	cfg.Hemisphere = "southern"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DB != cfg.DB || loaded.Hemisphere != "southern" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/.config/dayly"); got != filepath.Join(home, ".config/dayly") {
		t.Errorf("unexpected expansion %s", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %s", got)
	}
}

func TestSet(t *testing.T) {
	cfg := Default()

	tests := []struct {
		key, value string
		wantErr    bool
	}{
		{"hemisphere", "S", false},
		{"goal_default_days", "30", false},
		{"debug", "true", false},
		{"timezone", "Europe/Paris", false},
		{"debug", "maybe", true},
		{"goal_default_days", "ninety", true},
		{"hemisphere", "eastern", true},
		{"colour", "blue", true},
	}
	for _, tt := range tests {
		err := cfg.Set(tt.key, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Set(%s, %s) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
		}
	}

	if cfg.Hemisphere != "southern" || cfg.GoalDefaultDays != 30 || !cfg.Debug || cfg.Timezone != "Europe/Paris" {
		t.Errorf("unexpected config after Set: %+v", cfg)
	}
}

func TestReadFileIgnoresEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("hemisphere: southern\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvHemisphere, "northern")

	cfg, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if cfg.Hemisphere != "southern" {
		t.Errorf("expected file value, got %s", cfg.Hemisphere)
	}
}
