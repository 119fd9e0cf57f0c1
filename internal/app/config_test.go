package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Disks != 3 || cfg.Frontend != FrontendTea || cfg.UI.StyleVariant != "modern_arcade" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "zero disks", mutate: func(c *Config) { c.Disks = 0 }, want: "disk number cannot be below 1"},
		{name: "negative disks", mutate: func(c *Config) { c.Disks = -4 }, want: "disk number cannot be below 1"},
		{name: "too many disks", mutate: func(c *Config) { c.Disks = 64 }, want: "disk number cannot be above 63"},
		{name: "huge disks", mutate: func(c *Config) { c.Disks = 1 << 30 }, want: "disk number cannot be above 63"},
		{name: "frontend", mutate: func(c *Config) { c.Frontend = "curses" }, want: "invalid frontend"},
		{name: "style", mutate: func(c *Config) { c.UI.StyleVariant = "neon" }, want: "invalid ui style variant"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.NoStats = true
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateAcceptsLargestTower(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoStats = true
	cfg.Disks = 63
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateNormalizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoStats = true
	cfg.Frontend = " TCELL "
	cfg.UI.StyleVariant = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Frontend != FrontendTcell || cfg.UI.StyleVariant != "modern_arcade" {
		t.Fatalf("unexpected normalisation: %+v", cfg)
	}
	if cfg.DataDir != "" {
		t.Fatalf("data dir should stay empty without stats, got %q", cfg.DataDir)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	doc := "disks: 5\nno_color: true\nui:\n  style_variant: retro_terminal\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Disks != 5 || !cfg.NoColor || cfg.UI.StyleVariant != "retro_terminal" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Frontend != FrontendTea {
		t.Fatalf("unset keys must keep defaults, frontend=%q", cfg.Frontend)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	if err := os.WriteFile(path, []byte("poles: 4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err == nil {
		t.Fatalf("expected unknown key to fail")
	}
}

func TestLoadFileEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("empty file should be accepted: %v", err)
	}
	if cfg.Disks != DefaultDisks {
		t.Fatalf("disks = %d", cfg.Disks)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv([]string{
		"HANOI_DISKS=6",
		"HANOI_FRONTEND=tcell",
		"HANOI_UI_STYLE_VARIANT=cozy_clean",
		"PATH=/usr/bin",
	})
	if err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Disks != 6 || cfg.Frontend != FrontendTcell || cfg.UI.StyleVariant != "cozy_clean" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.NoColor {
		t.Fatalf("colour should stay on")
	}
}

func TestApplyEnvNoColorConvention(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyEnv([]string{"NO_COLOR=1"}); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if !cfg.NoColor {
		t.Fatalf("NO_COLOR must disable colour")
	}
}

func TestApplyEnvRejectsMalformedNumber(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyEnv([]string{"HANOI_DISKS=three"}); err == nil {
		t.Fatalf("expected malformed disk count to fail")
	}
}
