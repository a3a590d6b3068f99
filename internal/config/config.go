package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/folio/internal/content"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme   = "terminal"
	DefaultFPS     = 60
	DefaultDataDir = ".folio"
	DefaultAddr    = ":8080"
	MaxFPS         = 240
)

type Config struct {
	Theme       string           `yaml:"theme"`
	FPS         int              `yaml:"fps"`
	Seed        int64            `yaml:"seed"`
	DataDir     string           `yaml:"data_dir"`
	ProfilePath string           `yaml:"profile_path,omitempty"`
	Profile     *content.Profile `yaml:"profile,omitempty"`
	Server      ServerConfig     `yaml:"server"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:   DefaultTheme,
		FPS:     DefaultFPS,
		DataDir: DefaultDataDir,
		Server:  ServerConfig{Addr: DefaultAddr},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FrameInterval is the display refresh period for FPS, clamped to
// [1, MaxFPS].
func (c *Config) FrameInterval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	return time.Second / time.Duration(fps)
}

// SeedOr returns the configured seed, or fallback when none is set.
func (c *Config) SeedOr(fallback int64) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return fallback
}

// ResolveProfile picks the profile file, then the inline profile, then the
// built-in default.
func (c *Config) ResolveProfile() (*content.Profile, error) {
	if c.ProfilePath != "" {
		return content.Load(c.ProfilePath)
	}
	if c.Profile != nil {
		if err := c.Profile.Validate(); err != nil {
			return nil, err
		}
		return c.Profile, nil
	}
	return content.Default(), nil
}
