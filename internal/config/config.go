package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/nodeweb/internal/scene"
)

const (
	DefaultColor  = "#3a7bd5"
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 60
)

// Config is the on-disk form of a scene and its window. YAML and TOML
// files share the same keys.
type Config struct {
	Canvas      string       `yaml:"canvas" toml:"canvas"`
	Container   string       `yaml:"container" toml:"container"`
	Color       string       `yaml:"color" toml:"color"`
	Background  string       `yaml:"background" toml:"background"`
	Interactive bool         `yaml:"interactive" toml:"interactive"`
	NodeRadius  float64      `yaml:"node_radius" toml:"node_radius"`
	LineWidth   float64      `yaml:"line_width" toml:"line_width"`
	Seed        int64        `yaml:"seed" toml:"seed"`
	Window      WindowConfig `yaml:"window" toml:"window"`
	Tuning      TuningConfig `yaml:"tuning" toml:"tuning"`
}

type WindowConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	FPS    int `yaml:"fps" toml:"fps"`
}

type TuningConfig struct {
	DensityDivisor  float64 `yaml:"density_divisor" toml:"density_divisor"`
	LinkDistance    float64 `yaml:"link_distance" toml:"link_distance"`
	PhaseStep       float64 `yaml:"phase_step" toml:"phase_step"`
	RetentionMargin float64 `yaml:"retention_margin" toml:"retention_margin"`
}

// DefaultConfig returns the stock scene options with a blue network on
// white in a 1280x720 window at 60 fps.
func DefaultConfig() *Config {
	opts := scene.DefaultOptions()
	return &Config{
		Canvas:      opts.Canvas,
		Container:   opts.Container,
		Color:       DefaultColor,
		Background:  opts.Background,
		Interactive: opts.Interactive,
		NodeRadius:  opts.NodeRadius,
		LineWidth:   opts.LineWidth,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		Tuning: TuningConfig{
			DensityDivisor:  opts.DensityDivisor,
			LinkDistance:    opts.LinkDistance,
			PhaseStep:       opts.PhaseStep,
			RetentionMargin: opts.RetentionMargin,
		},
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a YAML or TOML file (by extension) over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as TOML or YAML, chosen by the extension of path.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts c into scene options.
func (c *Config) Options() scene.Options {
	return scene.Options{
		Canvas:          c.Canvas,
		Container:       c.Container,
		NetworkColor:    c.Color,
		Background:      c.Background,
		Interactive:     c.Interactive,
		NodeRadius:      c.NodeRadius,
		LineWidth:       c.LineWidth,
		DensityDivisor:  c.Tuning.DensityDivisor,
		LinkDistance:    c.Tuning.LinkDistance,
		PhaseStep:       c.Tuning.PhaseStep,
		RetentionMargin: c.Tuning.RetentionMargin,
		Seed:            c.Seed,
	}
}
