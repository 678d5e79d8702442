package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToFile(t *testing.T) {
	t.Cleanup(func() { Close() })
	path := filepath.Join(t.TempDir(), "logs", "minitui.log")

	if err := Init(path, "debug"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !Enabled() {
		t.Fatal("Enabled() = false after Init")
	}

	Logger().Debug("frame", "n", 7)
	Logger().Info("started")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if Enabled() {
		t.Error("Enabled() = true after Close")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"minitui", "frame", "n=7", "started"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestInit_Level(t *testing.T) {
	t.Cleanup(func() { Close() })
	path := filepath.Join(t.TempDir(), "minitui.log")

	if err := Init(path, "warn"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Logger().Info("hidden")
	Logger().Warn("shown")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if out := string(data); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("log output = %q, want only the warning", out)
	}
}

func TestInit_Disabled(t *testing.T) {
	t.Cleanup(func() { Close() })
	t.Setenv(EnvVar, "")

	if err := Init("", "debug"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if Enabled() {
		t.Error("Enabled() = true without a path")
	}
	if Logger() == nil {
		t.Error("Logger() = nil")
	}
	// Logging without a file is a no-op.
	Logger().Info("discarded")
}

func TestInit_EnvFallback(t *testing.T) {
	t.Cleanup(func() { Close() })
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvVar, path)

	if err := Init("", ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !Enabled() {
		t.Fatal("Enabled() = false with $" + EnvVar + " set")
	}
	Logger().Info("from env")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "from env") {
		t.Errorf("log output = %q, want %q", data, "from env")
	}
}

func TestInit_Errors(t *testing.T) {
	t.Cleanup(func() { Close() })

	type tc struct {
		path  string
		level string
	}
	dir := t.TempDir()
	tests := map[string]tc{
		"invalid level": {path: filepath.Join(dir, "a.log"), level: "loud"},
		"path is a dir":   {path: dir, level: "info"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if err := Init(tt.path, tt.level); err == nil {
				t.Errorf("Init(%q, %q) error = nil, want error", tt.path, tt.level)
			}
			if Enabled() {
				t.Error("Enabled() = true after failed Init")
			}
		})
	}
}
