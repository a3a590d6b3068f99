package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/folio/internal/viz"
)

const particleSize = 1.5

// particleLayer is the window's splash surface. Fade and visibility come
// from viz.Splash; drawing projects the last frame straight to the window.
type particleLayer struct {
	*viz.Splash
	frame viz.Frame
}

func newParticleLayer(fps int) *particleLayer {
	return &particleLayer{Splash: viz.NewSplash(fps)}
}

func (l *particleLayer) Render(f viz.Frame) {
	l.frame = f
	l.Step()
}

// The frame carries its own pixel size.
func (l *particleLayer) Resize(w, h int) {}

func (l *particleLayer) Draw(col rl.Color) {
	alpha := float32(l.Opacity())
	if alpha <= 0 {
		return
	}
	ref := 0.0
	if l.frame.Camera != nil {
		ref = l.frame.Camera.Position.Z
	}
	l.frame.Each(func(x, y int, depth float64) {
		r := particleSize
		if ref > 0 && depth > 0 {
			r = particleSize * ref / depth
		}
		rl.DrawCircle(int32(x), int32(y), float32(r), rl.ColorAlpha(col, alpha))
	})
}

func (a *App) drawContent() {
	y := 80 - int(a.Scroll)
	x := 80

	for i, e := range a.Page.Hero {
		size, col := 48, a.text
		if i > 0 {
			size, col = 28, a.accent
		}
		line := "> " + e.Text()
		if e.CursorVisible() {
			line += "_"
		}
		a.drawText(line, x, y, size, col)
		y += size + 16
	}
	y += 24

	p := a.Page.Profile()
	for _, l := range p.Links {
		a.drawText(l.Label, x, y, 18, a.accent)
		a.drawText(l.URL, x+140, y, 18, a.muted)
		y += 28
	}
	y += 24

	if len(p.Skills) > 0 {
		y = a.heading("Skills", x, y)
		for _, g := range p.Skills {
			a.drawText(g.Category, x, y, 18, a.accent)
			a.drawText(strings.Join(g.Items, " · "), x+180, y, 18, a.text)
			y += 28
		}
		y += 24
	}

	if len(p.Experience) > 0 {
		y = a.heading("Experience", x, y)
		for _, e := range p.Experience {
			a.drawText(e.Role+" @ "+e.Company, x, y, 20, a.accent)
			a.drawText(e.Period, x, y+26, 16, a.muted)
			y += 56
			for _, r := range e.Responsibilities {
				a.drawText("• "+r, x+20, y, 16, a.text)
				y += 24
			}
			y += 16
		}
	}

	if len(p.Education) > 0 {
		y = a.heading("Education", x, y)
		for _, e := range p.Education {
			a.drawText(e.Degree+" in "+e.Field, x, y, 20, a.accent)
			a.drawText(e.Institution+", "+e.Year, x, y+26, 16, a.muted)
			y += 56
			for _, r := range e.Achievements {
				a.drawText("• "+r, x+20, y, 16, a.text)
				y += 24
			}
		}
	}
}

func (a *App) heading(title string, x, y int) int {
	a.drawText(title, x, y, 24, a.text)
	rl.DrawLine(int32(x), int32(y+32), int32(x+400), int32(y+32), a.muted)
	return y + 48
}
