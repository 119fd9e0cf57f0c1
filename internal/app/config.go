package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	gap "github.com/muesli/go-app-paths"
	"gopkg.in/yaml.v3"

	"hanoi/internal/game"
	"hanoi/internal/theme"
)

const (
	DefaultDisks = 3

	FrontendTea   = "tea"
	FrontendTcell = "tcell"
)

// Config controls runtime behavior. Sources are applied in order:
// defaults, YAML file, environment, command-line flags.
type Config struct {
	Disks    int      `yaml:"disks" env:"DISKS"`
	NoColor  bool     `yaml:"no_color" env:"NO_COLOR_OUTPUT"`
	Frontend string   `yaml:"frontend" env:"FRONTEND"`
	LogPath  string   `yaml:"log_path" env:"LOG"`
	Debug    bool     `yaml:"debug" env:"DEBUG"`
	DataDir  string   `yaml:"data_dir" env:"DATA_DIR"`
	NoStats  bool     `yaml:"no_stats" env:"NO_STATS"`
	UI       UIConfig `yaml:"ui" envPrefix:"UI_"`
}

type UIConfig struct {
	StyleVariant string `yaml:"style_variant" env:"STYLE_VARIANT"`
}

func DefaultConfig() Config {
	return Config{
		Disks:    DefaultDisks,
		Frontend: FrontendTea,
		UI: UIConfig{
			StyleVariant: theme.DefaultVariant,
		},
	}
}

// LoadFile overlays the YAML document at path onto c. Unknown keys are errors.
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays HANOI_* variables from environ (KEY=VALUE pairs). A
// non-empty NO_COLOR also disables colour.
func (c *Config) ApplyEnv(environ []string) error {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}
	if err := env.ParseWithOptions(c, env.Options{Prefix: "HANOI_", Environment: vars}); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if vars["NO_COLOR"] != "" {
		c.NoColor = true
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Disks < 1 {
		return errors.New("disk number cannot be below 1")
	}
	if c.Disks > game.MaxDisks {
		return fmt.Errorf("disk number cannot be above %d", game.MaxDisks)
	}
	c.Frontend = strings.ToLower(strings.TrimSpace(c.Frontend))
	switch c.Frontend {
	case "":
		c.Frontend = FrontendTea
	case FrontendTea, FrontendTcell:
	default:
		return fmt.Errorf("invalid frontend %q", c.Frontend)
	}
	if !theme.Valid(c.UI.StyleVariant) {
		return fmt.Errorf("invalid ui style variant %q", c.UI.StyleVariant)
	}
	c.UI.StyleVariant = theme.Normalize(c.UI.StyleVariant)

	if c.DataDir == "" && !c.NoStats {
		dir, err := gap.NewScope(gap.User, "hanoi").DataPath("")
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		c.DataDir = dir
	}
	return nil
}

func (c Config) StatePath() string {
	return filepath.Join(c.DataDir, "state.db")
}
