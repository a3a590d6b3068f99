package gui

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/page"
	"github.com/san-kum/folio/internal/scene"
	"github.com/san-kum/folio/internal/viz"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	targetFPS    = 60
)

type App struct {
	Page   *page.Page
	Layer  *particleLayer
	Theme  viz.Theme
	Font   rl.Font
	Scroll float32

	bg, text, muted, accent, particle rl.Color
}

// initWindow opens a resizable window and disables the default exit key.
func initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "folio")
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono from the system path with bilinear
// filtering. raylib falls back to its built-in font when the file is missing.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, p *content.Profile) (*App, error) {
	now := time.Now()
	layer := newParticleLayer(targetFPS)
	pg, err := page.New(p, layer, rand.New(rand.NewSource(cfg.SeedOr(now.UnixNano()))), page.Options{Origin: now})
	if err != nil {
		return nil, err
	}
	if err := pg.Mount(scene.Viewport{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()}); err != nil {
		return nil, err
	}

	a := &App{Page: pg, Layer: layer, Font: loadFont()}
	a.setTheme(viz.GetTheme(cfg.Theme))
	return a, nil
}

func (a *App) setTheme(t viz.Theme) {
	a.Theme = t
	a.bg = color(t.Background)
	a.text = color(t.Text)
	a.muted = color(t.Muted)
	a.accent = color(t.Primary)
	a.particle = color(t.Particle)
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, p *content.Profile) error {
	initWindow()
	defer rl.CloseWindow()

	a, err := NewApp(cfg, p)
	if err != nil {
		return err
	}
	defer a.Close()
	log.Printf("gui: %dx%d theme=%s", rl.GetScreenWidth(), rl.GetScreenHeight(), a.Theme.Name)

	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.Page.Disposed() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Close() {
	a.Page.Dispose()
	rl.UnloadFont(a.Font)
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.Page.Resize.Pixels(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.Page.Dispose()
		return
	case rl.IsKeyPressed(rl.KeyT):
		a.setTheme(viz.NextTheme(a.Theme.Name))
	}

	if a.Page.ShowingContent() {
		a.Scroll -= rl.GetMouseWheelMove() * 40
		if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyJ) {
			a.Scroll += 8
		}
		if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyK) {
			a.Scroll -= 8
		}
		if a.Scroll < 0 {
			a.Scroll = 0
		}
	}

	a.Page.Advance(time.Now())
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.bg)

	if a.Layer.Visible() {
		a.Layer.Draw(a.particle)
	} else {
		a.drawContent()
	}
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	h := rl.GetScreenHeight()
	a.drawText("[T] THEME  [Q] QUIT", 30, h-40, 14, a.muted)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), rl.GetScreenWidth()-100, h-40, 14, a.muted)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func color(c lipgloss.Color) rl.Color {
	r, g, b := viz.RGB(c)
	return rl.NewColor(uint8(r), uint8(g), uint8(b), 255)
}
