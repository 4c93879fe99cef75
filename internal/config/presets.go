package config

import "sort"

var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"night": func(c *Config) {
		c.Color = "#7fdbff"
		c.Background = "#0b0c10"
	},
	"dense": func(c *Config) {
		c.Tuning.DensityDivisor = 12000
		c.Tuning.LinkDistance = 180
	},
	"sparse": func(c *Config) {
		c.Tuning.DensityDivisor = 60000
		c.Tuning.LinkDistance = 340
		c.LineWidth = 1.2
	},
	"ember": func(c *Config) {
		c.Color = "#ff7043"
		c.Background = "#1a0f0a"
		c.NodeRadius = 3
		c.Tuning.PhaseStep = 0.05
	},
	"calm": func(c *Config) {
		c.Interactive = false
		c.Tuning.PhaseStep = 0.01
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// Apply overlays the named preset on cfg. It reports false for unknown names.
func (c *Config) Apply(name string) bool {
	apply, ok := Presets[name]
	if ok {
		apply(c)
	}
	return ok
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
