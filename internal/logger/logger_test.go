package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	err := Init(Config{
		Debug:     false,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("test debug message")
	Info("test info message")
	Warn("test warning message")
	Error("test error message")
}

func TestInitDebugMode(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	err := Init(Config{
		Debug:     true,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}
}

func TestHelpersAreSafeBeforeInit(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// Must not panic when logging before Init
	Debug("ignored")
	Info("ignored")
	Warn("ignored")
	Error("ignored")
}
