package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate runs the test in an empty folder with an empty home, so that no
// lucro.yaml of the developer is read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"LCR_DATA_DIR", "LCR_BACKEND", "LCR_CURRENCY", "LCR_LOG_LEVEL", "LCR_BCRYPT_COST"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Chdir(t.TempDir())
	return home
}

func TestLoadSettings_Defaults(t *testing.T) {
	home := isolate(t)

	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	want := Settings{
		DataDir:    filepath.Join(home, ".lucro"),
		Backend:    "file",
		Currency:   "BRL",
		LogLevel:   "warn",
		BcryptCost: 10,
	}
	if *s != want {
		t.Errorf("LoadSettings() = %+v, want %+v", *s, want)
	}
}

func TestLoadSettings_File(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "custom.yaml")
	content := "data_dir: /tmp/lucro\nbackend: sqlite\ncurrency: usd\nbcrypt_cost: 4\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(file)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.DataDir != "/tmp/lucro" || s.Backend != "sqlite" || s.BcryptCost != 4 {
		t.Errorf("LoadSettings() = %+v", *s)
	}
	if s.Currency != "USD" {
		t.Errorf("Currency = %q, want it upper cased", s.Currency)
	}
}

func TestLoadSettings_DefaultFileInWorkingDir(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("lucro.yaml", []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", s.LogLevel)
	}
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("lucro.yaml", []byte("backend: file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LCR_BACKEND", "sqlite")

	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", s.Backend)
	}
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadSettings() of a missing file succeeded, want an error")
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		warnSeen  bool
	}{
		{level: "debug", debugSeen: true, warnSeen: true},
		{level: "WARN", debugSeen: false, warnSeen: true},
		{level: "bogus", debugSeen: false, warnSeen: true},
		{level: "error", debugSeen: false, warnSeen: false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(&buf, tt.level)
			log.Debug().Msg("debug-line")
			log.Warn().Msg("warn-line")

			out := buf.String()
			if got := strings.Contains(out, "debug-line"); got != tt.debugSeen {
				t.Errorf("debug logged = %v, want %v", got, tt.debugSeen)
			}
			if got := strings.Contains(out, "warn-line"); got != tt.warnSeen {
				t.Errorf("warn logged = %v, want %v", got, tt.warnSeen)
			}
		})
	}
}
