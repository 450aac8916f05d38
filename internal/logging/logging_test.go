package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"keylayout/internal/config"
)

func fileLoggingConfig(t *testing.T) config.LoggingConfig {
	t.Helper()
	return config.LoggingConfig{
		Level:      "debug",
		Format:     "json",
		Output:     "file",
		FilePath:   filepath.Join(t.TempDir(), "test.log"),
		MaxSizeMB:  10,
		MaxBackups: 2,
	}
}

func TestNewWritesToFile(t *testing.T) {
	cfg := fileLoggingConfig(t)
	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer logger.Close()

	logger.Info("layout resolved", "layout_id", 0x0409)

	data, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "layout resolved") {
		t.Errorf("log file missing message: %s", data)
	}
	if !strings.Contains(string(data), `"layout_id"`) {
		t.Errorf("JSON format should include attributes: %s", data)
	}
}

func TestWithComponent(t *testing.T) {
	cfg := fileLoggingConfig(t)
	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer logger.Close()

	logger.WithComponent("probe").Info("hello")

	data, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"component":"probe"`) {
		t.Errorf("expected component attribute: %s", data)
	}
}

func TestLevelFiltering(t *testing.T) {
	cfg := fileLoggingConfig(t)
	cfg.Level = "warn"
	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer logger.Close()

	logger.Debug("too quiet")
	logger.Warn("loud enough")

	data, _ := os.ReadFile(cfg.FilePath)
	if strings.Contains(string(data), "too quiet") {
		t.Error("debug message should be filtered at warn level")
	}
	if !strings.Contains(string(data), "loud enough") {
		t.Error("warn message should pass at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRotatorRotatesOnSize(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LoggingConfig{
		FilePath:   filepath.Join(dir, "rot.log"),
		MaxSizeMB:  1,
		MaxBackups: 3,
	}
	r, err := NewFileRotator(cfg)
	if err != nil {
		t.Fatalf("NewFileRotator: %v", err)
	}
	defer r.Close()

	line := strings.Repeat("x", 64*1024)
	for i := 0; i < 20; i++ {
		if _, err := r.Write([]byte(line)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	matches, err := filepath.Glob(filepath.Join(dir, "rot-*.log*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Error("expected at least one rotated file")
	}

	info, err := os.Stat(cfg.FilePath)
	if err != nil {
		t.Fatalf("stat current log: %v", err)
	}
	if info.Size() > 1024*1024 {
		t.Errorf("current log exceeds rotation size: %d", info.Size())
	}
}
