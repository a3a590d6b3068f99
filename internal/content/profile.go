// Package content holds the portfolio profile shown after the splash.
package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile indicates a profile that cannot be rendered.
var ErrInvalidProfile = errors.New("content: invalid profile")

type Profile struct {
	Name       string       `yaml:"name" json:"name"`
	Hero       []string     `yaml:"hero" json:"hero"`
	Links      []Link       `yaml:"links" json:"links"`
	Skills     []SkillGroup `yaml:"skills" json:"skills"`
	Experience []Experience `yaml:"experience" json:"experience"`
	Education  []Education  `yaml:"education" json:"education"`
}

type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

type SkillGroup struct {
	Category string   `yaml:"category" json:"category"`
	Items    []string `yaml:"items" json:"items"`
}

type Experience struct {
	Company          string   `yaml:"company" json:"company"`
	Role             string   `yaml:"role" json:"role"`
	Period           string   `yaml:"period" json:"period"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities"`
}

type Education struct {
	Degree       string   `yaml:"degree" json:"degree"`
	Field        string   `yaml:"field" json:"field"`
	Institution  string   `yaml:"institution" json:"institution"`
	Year         string   `yaml:"year" json:"year"`
	Achievements []string `yaml:"achievements" json:"achievements"`
}

// HeroLines returns the typewriter lines; the name is the first line when
// no hero lines are configured.
func (p *Profile) HeroLines() []string {
	if len(p.Hero) > 0 {
		return p.Hero
	}
	return []string{p.Name}
}

func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}
	for i, g := range p.Skills {
		if g.Category == "" {
			return fmt.Errorf("%w: skill group %d has no category", ErrInvalidProfile, i+1)
		}
	}
	for i, e := range p.Experience {
		if e.Company == "" {
			return fmt.Errorf("%w: experience %d has no company", ErrInvalidProfile, i+1)
		}
	}
	return nil
}

// Load reads a yaml profile and validates it.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func Save(path string, p *Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
