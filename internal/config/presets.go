package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Theme: "terminal", FPS: 60,
	},
	"low-power": {
		Theme: "ocean", FPS: 20,
	},
	"demo": {
		Theme: "cyberpunk", FPS: 60, Seed: 42,
	},
	"retro": {
		Theme: "retro", FPS: 30,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

// ApplyPreset copies the preset's non-zero fields onto c.
func (c *Config) ApplyPreset(name string) bool {
	p := GetPreset(name)
	if p == nil {
		return false
	}
	if p.Theme != "" {
		c.Theme = p.Theme
	}
	if p.FPS != 0 {
		c.FPS = p.FPS
	}
	if p.Seed != 0 {
		c.Seed = p.Seed
	}
	return true
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
