package viz

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/surface"
)

const (
	fadeFrequency = 6.0
	fadeDamping   = 1.0
	fadeEpsilon   = 0.002
)

// Splash is the splash surface: a braille canvas that receives particle
// frames. Opacity eases toward its target with a critically damped spring
// advanced once per rendered frame.
type Splash struct {
	canvas  *Canvas
	visible bool
	target  float64
	opacity float64
	vel     float64
	spring  harmonica.Spring
	drawn   int
}

func NewSplash(fps int) *Splash {
	if fps <= 0 {
		fps = 60
	}
	return &Splash{
		canvas:  NewCanvas(0, 0),
		visible: true,
		target:  1,
		opacity: 1,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), fadeFrequency, fadeDamping),
	}
}

func (s *Splash) Name() string      { return surface.Splash }
func (s *Splash) Visible() bool     { return s.visible }
func (s *Splash) SetVisible(v bool) { s.visible = v }
func (s *Splash) Opacity() float64  { return s.opacity }

func (s *Splash) SetOpacity(a float64) { s.target = surface.Clamp01(a) }

// Target is the opacity the splash is easing toward.
func (s *Splash) Target() float64 { return s.target }

// Resize sets the drawing surface size in dots.
func (s *Splash) Resize(w, h int) {
	cw, ch := CellsFor(w, h)
	s.canvas.Resize(cw, ch)
}

// Render rasterizes one frame and advances the fade.
func (s *Splash) Render(f Frame) {
	s.canvas.Clear()
	s.drawn = f.Each(func(x, y int, _ float64) { s.canvas.Set(x, y) })
	s.Step()
}

// Step advances the opacity spring by one frame.
func (s *Splash) Step() {
	if s.opacity == s.target {
		return
	}
	s.opacity, s.vel = s.spring.Update(s.opacity, s.vel, s.target)
	if math.Abs(s.opacity-s.target) < fadeEpsilon {
		s.opacity, s.vel = s.target, 0
	}
	s.opacity = surface.Clamp01(s.opacity)
}

// Drawn is the number of particles visible in the last frame.
func (s *Splash) Drawn() int { return s.drawn }

func (s *Splash) Canvas() *Canvas { return s.canvas }

// View renders the canvas in the theme's particle color faded toward the
// background by the current opacity.
func (s *Splash) View(t Theme) string {
	if !s.visible {
		return ""
	}
	col := Blend(t.Background, t.Particle, s.opacity)
	return lipgloss.NewStyle().Foreground(col).Render(s.canvas.String())
}
