package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/onsi/gomega"
)

func TestCanvasSetAndClear(t *testing.T) {
	g := NewWithT(t)
	c := NewCanvas(4, 2)
	w, h := c.PixelSize()
	g.Expect(w).To(Equal(8))
	g.Expect(h).To(Equal(8))

	c.Set(0, 0)
	c.Set(7, 7)
	c.Set(-1, 3)
	c.Set(8, 0)
	g.Expect(c.IsSet(0, 0)).To(BeTrue())
	g.Expect(c.IsSet(7, 7)).To(BeTrue())
	g.Expect(c.IsSet(1, 0)).To(BeFalse())
	g.Expect(c.Lit()).To(Equal(2))
	g.Expect(c.Grid[0][0]).To(Equal(rune(0x2801)))

	c.Clear()
	g.Expect(c.Lit()).To(BeZero())
	g.Expect(strings.Count(c.String(), "\n")).To(Equal(1))
}

func TestCellsFor(t *testing.T) {
	g := NewWithT(t)
	w, h := CellsFor(161, 97)
	g.Expect(w).To(Equal(81))
	g.Expect(h).To(Equal(25))
}

func TestEulerPreservesLength(t *testing.T) {
	g := NewWithT(t)
	p := Vec3{30, -120, 84.85}
	for _, e := range []Euler{{0.3, 1.2, 0}, {math.Pi, 0.001, 2}, {6.28, 6.28, 6.28}} {
		r := e.Matrix().Apply(p)
		g.Expect(r.Length()).To(BeNumerically("~", p.Length(), 1e-9))
	}
}

func TestEulerOrderXYZ(t *testing.T) {
	g := NewWithT(t)
	e := Euler{X: 0.4, Y: -0.7}
	p := Vec3{1, 2, 3}

	// Ry first, then Rx.
	cy, sy := math.Cos(e.Y), math.Sin(e.Y)
	q := Vec3{p.X*cy + p.Z*sy, p.Y, -p.X*sy + p.Z*cy}
	cx, sx := math.Cos(e.X), math.Sin(e.X)
	q = Vec3{q.X, q.Y*cx - q.Z*sx, q.Y*sx + q.Z*cx}

	r := e.Matrix().Apply(p)
	g.Expect(r.X).To(BeNumerically("~", q.X, 1e-12))
	g.Expect(r.Y).To(BeNumerically("~", q.Y, 1e-12))
	g.Expect(r.Z).To(BeNumerically("~", q.Z, 1e-12))
}

func TestPerspectiveProjection(t *testing.T) {
	g := NewWithT(t)
	cam := NewPerspectiveCamera(75, 2, 0.1, 1000)
	cam.Position = Vec3{0, 0, 400}

	x, y, depth, ok := cam.Project(Vec3{}, 200, 100)
	g.Expect(ok).To(BeTrue())
	g.Expect(x).To(Equal(100))
	g.Expect(y).To(Equal(50))
	g.Expect(depth).To(Equal(400.0))

	// Up in world space is up on screen.
	_, yUp, _, ok := cam.Project(Vec3{0, 100, 0}, 200, 100)
	g.Expect(ok).To(BeTrue())
	g.Expect(yUp).To(BeNumerically("<", 50))

	// Behind the camera and beyond the far plane are culled.
	_, _, _, ok = cam.Project(Vec3{0, 0, 500}, 200, 100)
	g.Expect(ok).To(BeFalse())
	_, _, _, ok = cam.Project(Vec3{0, 0, -700}, 200, 100)
	g.Expect(ok).To(BeFalse())
}

func TestProjectionTracksAspect(t *testing.T) {
	g := NewWithT(t)
	cam := NewPerspectiveCamera(75, 1, 0.1, 1000)
	cam.Position = Vec3{0, 0, 400}
	p := Vec3{100, 0, 0}

	wide, _, _, _ := cam.Project(p, 100, 100)
	cam.Aspect = 2
	cam.UpdateProjection()
	narrow, _, _, _ := cam.Project(p, 100, 100)
	g.Expect(narrow).To(BeNumerically("<", wide))
}

func TestFrameEachCountsVisible(t *testing.T) {
	g := NewWithT(t)
	cam := NewPerspectiveCamera(75, 1, 0.1, 1000)
	cam.Position = Vec3{0, 0, 400}
	f := Frame{
		Points:    []Vec3{{0, 0, 0}, {0, 0, 900}, {10, 10, 10}},
		Transform: Identity(),
		Camera:    cam,
		Width:     64,
		Height:    64,
	}
	calls := 0
	n := f.Each(func(x, y int, d float64) { calls++ })
	g.Expect(n).To(Equal(2))
	g.Expect(calls).To(Equal(2))

	f.Width = 0
	g.Expect(f.Each(func(int, int, float64) {})).To(BeZero())
}

func TestSplashFadeConverges(t *testing.T) {
	g := NewWithT(t)
	s := NewSplash(60)
	g.Expect(s.Opacity()).To(Equal(1.0))

	s.SetOpacity(0)
	g.Expect(s.Target()).To(Equal(0.0))
	prev := s.Opacity()
	for i := 0; i < 60; i++ {
		s.Step()
		g.Expect(s.Opacity()).To(BeNumerically("<=", prev))
		prev = s.Opacity()
	}
	g.Expect(s.Opacity()).To(BeNumerically("<", 0.05))

	for i := 0; i < 120; i++ {
		s.Step()
	}
	g.Expect(s.Opacity()).To(Equal(0.0))
}

func TestSplashRender(t *testing.T) {
	g := NewWithT(t)
	s := NewSplash(60)
	s.Resize(40, 40)
	g.Expect(s.Canvas().Width).To(Equal(20))
	g.Expect(s.Canvas().Height).To(Equal(10))

	cam := NewPerspectiveCamera(75, 1, 0.1, 1000)
	cam.Position = Vec3{0, 0, 400}
	s.Render(Frame{Points: []Vec3{{}}, Transform: Identity(), Camera: cam, Width: 40, Height: 40})
	g.Expect(s.Drawn()).To(Equal(1))
	g.Expect(s.Canvas().IsSet(20, 20)).To(BeTrue())

	g.Expect(s.View(ThemeTerminal)).NotTo(BeEmpty())
	s.SetVisible(false)
	g.Expect(s.View(ThemeTerminal)).To(BeEmpty())
}

func TestBlend(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Blend("#000000", "#ffffff", 0)).To(Equal(lipgloss.Color("#000000")))
	g.Expect(Blend("#000000", "#ffffff", 1)).To(Equal(lipgloss.Color("#ffffff")))
	g.Expect(Blend("#000000", "#ffffff", 0.5)).To(Equal(lipgloss.Color("#808080")))
}

func TestNextThemeWraps(t *testing.T) {
	g := NewWithT(t)
	last := Themes[len(Themes)-1]
	g.Expect(NextTheme(last.Name).Name).To(Equal(Themes[0].Name))
	g.Expect(GetTheme("missing").Name).To(Equal("terminal"))
	g.Expect(ThemeNames()).To(HaveLen(len(Themes)))
}
