package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "chalkboard" {
		t.Errorf("expected theme chalkboard, got %s", cfg.Theme)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if got := cfg.TickInterval(); got != time.Second/30 {
		t.Errorf("TickInterval() = %v", got)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linprimer.yaml")
	data := "theme: retro\nfps: 12\nserver:\n  cache_ttl: 30s\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "retro" || cfg.FPS != 12 {
		t.Errorf("got theme %s fps %d", cfg.Theme, cfg.FPS)
	}
	if cfg.Server.CacheTTL != 30*time.Second {
		t.Errorf("cache ttl = %v", cfg.Server.CacheTTL)
	}
	if cfg.Precision != DefaultPrecision || cfg.Server.Addr != DefaultAddr {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	want := DefaultConfig()
	want.Apply(GetProfile("presenter"))

	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\nlog_level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrBadFPS) || !errors.Is(err, ErrBadLogLevel) {
		t.Errorf("Load error = %v, want fps and log level errors", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"fps too high", func(c *Config) { c.FPS = 500 }, ErrBadFPS},
		{"negative precision", func(c *Config) { c.Precision = -1 }, ErrBadPrecision},
		{"tiny canvas", func(c *Config) { c.Canvas.Height = 2 }, ErrBadCanvas},
		{"unknown level", func(c *Config) { c.LogLevel = "trace" }, ErrBadLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	cfg := GetProfile("print")
	if cfg == nil {
		t.Fatal("expected profile, got nil")
	}
	if cfg.Precision != 4 {
		t.Errorf("expected precision 4, got %d", cfg.Precision)
	}

	cfg.Precision = 9
	if Profiles["print"].Precision != 4 {
		t.Error("GetProfile returned the shared profile")
	}

	if GetProfile("nonexistent") != nil {
		t.Error("expected nil for nonexistent profile")
	}
}

func TestListProfiles(t *testing.T) {
	names := ListProfiles()
	if len(names) != len(Profiles) {
		t.Fatalf("got %d names", len(names))
	}
	if names[0] != "blueprint" {
		t.Errorf("profiles should be sorted, first is %s", names[0])
	}
	for _, name := range names {
		cfg := DefaultConfig()
		cfg.Apply(GetProfile(name))
		if err := cfg.Validate(); err != nil {
			t.Errorf("profile %s invalid: %v", name, err)
		}
	}
}
