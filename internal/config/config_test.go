package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points config discovery at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.FrameRate != 60 {
		t.Errorf("UI.FrameRate = %d, want 60", cfg.UI.FrameRate)
	}
	if cfg.UI.QuitByte != 3 {
		t.Errorf("UI.QuitByte = %d, want 3", cfg.UI.QuitByte)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.File != "" {
		t.Errorf("Log.File = %q, want empty", cfg.Log.File)
	}
	if cfg.Layout.Demo != "dashboard" {
		t.Errorf("Layout.Demo = %q, want %q", cfg.Layout.Demo, "dashboard")
	}
	if cfg.Layout.Watch {
		t.Error("Layout.Watch should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	v := New("")
	if err := Read(v); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want %+v", *cfg, *Default())
	}
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `
[ui]
frame_rate = 30

[log]
file = "/tmp/minitui.log"
level = "debug"

[layout]
file = "screen.toml"
watch = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v := New(path)
	if err := Read(v); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.UI.FrameRate != 30 {
		t.Errorf("UI.FrameRate = %d, want 30", cfg.UI.FrameRate)
	}
	if cfg.UI.QuitByte != 3 {
		t.Errorf("UI.QuitByte = %d, want default 3", cfg.UI.QuitByte)
	}
	if cfg.Log.File != "/tmp/minitui.log" || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v, want file /tmp/minitui.log at debug", cfg.Log)
	}
	if cfg.Layout.File != "screen.toml" || !cfg.Layout.Watch {
		t.Errorf("Layout = %+v, want screen.toml watched", cfg.Layout)
	}
}

func TestLoad_DiscoveredFile(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(filepath.Join(dir, "minitui"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "minitui", "config.toml"), []byte("[layout]\ndemo = \"login\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got, want := Locate(), filepath.Join(dir, "minitui", "config.toml"); got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}

	v := New("")
	if err := Read(v); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Layout.Demo != "login" {
		t.Errorf("Layout.Demo = %q, want %q", cfg.Layout.Demo, "login")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MINITUI_UI_FRAME_RATE", "120")
	t.Setenv("MINITUI_LOG_LEVEL", "warn")
	t.Setenv("MINITUI_LAYOUT_DEMO", "login")

	v := New("")
	if err := Read(v); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.UI.FrameRate != 120 {
		t.Errorf("UI.FrameRate = %d, want 120", cfg.UI.FrameRate)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
	if cfg.Layout.Demo != "login" {
		t.Errorf("Layout.Demo = %q, want %q", cfg.Layout.Demo, "login")
	}
}

func TestRead_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[ui\nframe_rate = "), 0o644); err != nil {
		t.Fatal(err)
	}

	type tc struct {
		file string
	}
	tests := map[string]tc{
		"missing file": {file: filepath.Join(dir, "missing.toml")},
		"invalid toml": {file: bad},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := Read(New(tt.file))
			if err == nil {
				t.Fatal("Read() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.file) {
				t.Errorf("Read() error = %q, want it to name %q", err, tt.file)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("MINITUI_UI_FRAME_RATE", "0")

	v := New("")
	if _, err := Load(v); err == nil || !strings.Contains(err.Error(), "ui.frame_rate") {
		t.Errorf("Load() error = %v, want ui.frame_rate error", err)
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := Dir(), filepath.Join("/xdg", "minitui"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	if got, want := Dir(), filepath.Join("/home/someone", ".config", "minitui"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}
