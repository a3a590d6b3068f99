// Package page wires the splash scene, the transition timeline and the hero
// typewriters onto one scheduler. Front ends own a Page and pump it.
package page

import (
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/scene"
	"github.com/san-kum/folio/internal/sched"
	"github.com/san-kum/folio/internal/surface"
	"github.com/san-kum/folio/internal/transition"
	"github.com/san-kum/folio/internal/typewriter"
)

// Hero timing defaults. The first line starts once the content is shown.
const (
	HeroStartDelay = transition.FadeStartDelay + transition.FadeDuration
	HeroStagger    = 2500 * time.Millisecond
)

var (
	ErrMounted  = errors.New("page: already mounted")
	ErrDisposed = errors.New("page: disposed")
)

// Splash is a scene renderer that is also the splash surface.
type Splash interface {
	scene.Renderer
	surface.Surface
}

type Options struct {
	Origin         time.Time
	ReservedRows   int
	HeroStartDelay time.Duration
	HeroStagger    time.Duration
}

type Page struct {
	Loop       *sched.Loop
	Scene      *scene.Controller
	Resize     *scene.ResizeAdapter
	Transition *transition.Controller
	Content    *surface.Basic
	Hero       []*typewriter.Engine

	profile  *content.Profile
	splash   Splash
	mounted  bool
	disposed bool
}

// New builds a page for profile drawing the particle field through splash.
// Nothing is scheduled until Mount.
func New(p *content.Profile, splash Splash, rng scene.RandSource, opts Options) (*Page, error) {
	if p == nil {
		p = content.Default()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if opts.HeroStartDelay <= 0 {
		opts.HeroStartDelay = HeroStartDelay
	}
	if opts.HeroStagger <= 0 {
		opts.HeroStagger = HeroStagger
	}
	if opts.Origin.IsZero() {
		opts.Origin = time.Now()
	}

	ctrl := scene.New(rng)
	pg := &Page{
		Loop:    sched.NewLoop(opts.Origin),
		Scene:   ctrl,
		Resize:  scene.NewResizeAdapter(ctrl, opts.ReservedRows),
		Content: surface.NewBasic(surface.Content, false),
		profile: p,
		splash:  splash,
	}

	tr, err := transition.New(surface.NewRegistry(splash, pg.Content))
	if err != nil {
		return nil, err
	}
	tr.OnChange = pg.onTransition
	pg.Transition = tr

	for i, line := range p.HeroLines() {
		pg.Hero = append(pg.Hero, typewriter.New(line, typewriter.Options{
			StartDelay: opts.HeroStartDelay + time.Duration(i)*opts.HeroStagger,
		}))
	}
	return pg, nil
}

// Mount initializes the scene at vp and starts every timeline.
func (p *Page) Mount(vp scene.Viewport) error {
	if p.disposed {
		return ErrDisposed
	}
	if p.mounted {
		return ErrMounted
	}
	if err := p.Scene.Initialize(p.splash, vp); err != nil {
		return fmt.Errorf("page: %w", err)
	}
	if err := p.Scene.Start(p.Loop); err != nil {
		return fmt.Errorf("page: %w", err)
	}
	if err := p.Transition.Start(p.Loop); err != nil {
		return fmt.Errorf("page: %w", err)
	}
	for _, e := range p.Hero {
		e.Start(p.Loop)
	}
	p.mounted = true
	return nil
}

// The splash is never shown again once hidden, so its frame task ends.
func (p *Page) onTransition(s transition.State, _ time.Time) {
	if s == transition.Hidden {
		p.Scene.Stop()
	}
}

// Advance runs everything due up to now.
func (p *Page) Advance(now time.Time) int {
	if p.disposed {
		return 0
	}
	return p.Loop.Advance(now)
}

// Dispose cancels every timer the page owns. Safe to call twice.
func (p *Page) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.Transition.Dispose()
	p.Scene.Dispose()
	for _, e := range p.Hero {
		e.Close()
	}
}

func (p *Page) Profile() *content.Profile { return p.profile }
func (p *Page) Disposed() bool            { return p.disposed }

// ShowingContent reports whether the content surface is on screen.
func (p *Page) ShowingContent() bool { return p.Content.Visible() }
