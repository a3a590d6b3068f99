package export

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/folio/internal/scene"
	"github.com/san-kum/folio/internal/viz"
)

// Format selects the snapshot rendering.
type Format string

const (
	// FormatPoints draws every particle at full resolution.
	FormatPoints Format = "points"
	// FormatBraille draws the terminal canvas dot grid.
	FormatBraille Format = "braille"
)

type Options struct {
	Seed   int64
	Ticks  int
	Width  int
	Height int
	Format Format
	Theme  viz.Theme
}

// Snapshot is one rendered splash frame.
type Snapshot struct {
	Rotation scene.Rotation
	Visible  int
	SVG      string
}

// capture keeps the last frame a controller draws.
type capture struct {
	frame viz.Frame
}

func (c *capture) Render(f viz.Frame) { c.frame = f }
func (c *capture) Resize(w, h int)    {}

// Ticks between context checks.
const cancelCheck = 1024

// Render samples the sphere from Seed, advances it Ticks frames and draws
// the result. Each call uses its own controller.
func Render(opts Options) (*Snapshot, error) {
	return RenderContext(context.Background(), opts)
}

// RenderContext is Render stopping early when ctx is done.
func RenderContext(ctx context.Context, opts Options) (*Snapshot, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("export: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Ticks < 0 {
		return nil, fmt.Errorf("export: negative tick count %d", opts.Ticks)
	}
	switch opts.Format {
	case "", FormatPoints, FormatBraille:
	default:
		return nil, fmt.Errorf("export: unknown format %q", opts.Format)
	}
	if opts.Theme.Name == "" {
		opts.Theme = viz.ThemeTerminal
	}

	rec := &capture{}
	ctrl := scene.New(rand.New(rand.NewSource(opts.Seed)))
	if err := ctrl.Initialize(rec, scene.Viewport{Width: opts.Width, Height: opts.Height}); err != nil {
		return nil, err
	}
	defer ctrl.Dispose()

	// Only the final frame is drawn; ticking just advances the rotation.
	rec.Render(ctrl.Frame())
	for i := 0; i < opts.Ticks; i++ {
		if i%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		ctrl.Tick()
	}

	snap := &Snapshot{Rotation: ctrl.Rotation()}
	fg, bg := string(opts.Theme.Particle), string(opts.Theme.Background)
	switch opts.Format {
	case FormatBraille:
		splash := viz.NewSplash(60)
		splash.Resize(opts.Width, opts.Height)
		splash.Render(rec.frame)
		snap.Visible = splash.Drawn()
		snap.SVG = CanvasToSVG(splash.Canvas(), 4, fg, bg)
	default:
		snap.Visible = rec.frame.Each(func(int, int, float64) {})
		snap.SVG = FrameToSVG(rec.frame, fg, bg, 0.75)
	}
	return snap, nil
}
