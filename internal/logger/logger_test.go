package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("hidden below warn level")
	Warn("streak reset", "days", 3)

	data, err := os.ReadFile(LogPath(configDir))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "streak reset") {
		t.Errorf("expected warning in log file, got %q", content)
	}
	if strings.Contains(content, "hidden below warn level") {
		t.Error("debug message should not be written in normal mode")
	}
}

func TestInitDebugModeMirrorsToStderr(t *testing.T) {
	configDir := t.TempDir()
	var stderr bytes.Buffer

	if err := Init(Config{Debug: true, ConfigDir: configDir, Stderr: &stderr}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	Debug("loading state", "key", "dayly_streak")

	if !strings.Contains(stderr.String(), "loading state") {
		t.Errorf("expected debug line on stderr, got %q", stderr.String())
	}
}

func TestHelpersAreNilSafe(t *testing.T) {
	_ = Close()
	Debug("no logger")
	Info("no logger")
	Warn("no logger")
	Error("no logger")
}
