// Package surface names the display surfaces the splash core writes to.
package surface

import (
	"errors"
	"fmt"
	"sort"
)

// Well-known surface names.
const (
	Splash  = "splash"
	Content = "content"
)

// ErrNotFound indicates a required surface was never registered.
var ErrNotFound = errors.New("surface: not found")

// Surface is a named area of the screen with visibility and opacity.
type Surface interface {
	Name() string
	Visible() bool
	SetVisible(v bool)
	Opacity() float64
	// SetOpacity sets the target opacity, clamped to [0, 1]. Surfaces may
	// ease toward the target over several frames.
	SetOpacity(a float64)
}

// Registry maps names to surfaces.
type Registry struct {
	byName map[string]Surface
}

func NewRegistry(surfaces ...Surface) *Registry {
	r := &Registry{byName: make(map[string]Surface)}
	for _, s := range surfaces {
		r.Register(s)
	}
	return r
}

// Register adds s, replacing any surface with the same name.
func (r *Registry) Register(s Surface) {
	if s == nil {
		return
	}
	r.byName[s.Name()] = s
}

func (r *Registry) Lookup(name string) (Surface, error) {
	if r != nil {
		if s, ok := r.byName[name]; ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Basic is an in-memory surface whose opacity changes immediately.
type Basic struct {
	name    string
	visible bool
	opacity float64
}

func NewBasic(name string, visible bool) *Basic {
	return &Basic{name: name, visible: visible, opacity: 1}
}

func (b *Basic) Name() string         { return b.name }
func (b *Basic) Visible() bool        { return b.visible }
func (b *Basic) SetVisible(v bool)    { b.visible = v }
func (b *Basic) Opacity() float64     { return b.opacity }
func (b *Basic) SetOpacity(a float64) { b.opacity = Clamp01(a) }

func Clamp01(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
