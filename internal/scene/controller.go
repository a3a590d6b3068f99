package scene

import (
	"errors"
	"math"
	"time"

	"github.com/san-kum/folio/internal/sched"
	"github.com/san-kum/folio/internal/viz"
)

// Build-time scene constants.
const (
	ParticleCount  = 2000
	Radius         = 150.0
	FieldOfView    = 75.0
	NearPlane      = 0.1
	FarPlane       = 1000.0
	CameraDistance = 400.0
	YawStep        = 0.002
	PitchStep      = 0.001
)

var (
	// ErrNoSurface indicates initialization without a drawing surface.
	ErrNoSurface = errors.New("scene: no drawing surface")

	// ErrAlreadyInitialized indicates a second Initialize call.
	ErrAlreadyInitialized = errors.New("scene: already initialized")

	// ErrNotInitialized indicates Start before Initialize.
	ErrNotInitialized = errors.New("scene: not initialized")
)

// Renderer is the drawing surface a controller draws frames to.
type Renderer interface {
	Render(f viz.Frame)
	// Resize sets the drawing surface size in pixels.
	Resize(w, h int)
}

// Viewport is the drawing area in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect is Width/Height, or 0 for a degenerate viewport.
func (v Viewport) Aspect() float64 {
	if v.Height <= 0 {
		return 0
	}
	return float64(v.Width) / float64(v.Height)
}

func (v Viewport) valid() bool { return v.Width > 0 && v.Height > 0 }

// Rotation is the group rotation: yaw about Y, pitch about X.
type Rotation struct {
	Yaw, Pitch float64
}

// Advance adds the per-frame increments, wrapping into [0, 2π).
func (r Rotation) Advance() Rotation {
	return Rotation{
		Yaw:   wrapAngle(r.Yaw + YawStep),
		Pitch: wrapAngle(r.Pitch + PitchStep),
	}
}

func (r Rotation) Euler() viz.Euler { return viz.Euler{X: r.Pitch, Y: r.Yaw} }

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Controller renders a rotating particle sphere. It is not goroutine-safe;
// drive it from one scheduler.
type Controller struct {
	rng         RandSource
	field       Field
	rot         Rotation
	vp          Viewport
	cam         *viz.PerspectiveCamera
	renderer    Renderer
	initialized bool
	disposed    bool
	frame       sched.Timer
	running     bool
	ticks       uint64
}

// New returns a controller sampling its field from rng.
func New(rng RandSource) *Controller {
	return &Controller{rng: rng}
}

// Initialize builds the camera and samples the field. It may be called once.
func (c *Controller) Initialize(r Renderer, vp Viewport) error {
	if c.initialized || c.disposed {
		return ErrAlreadyInitialized
	}
	if r == nil {
		return ErrNoSurface
	}
	c.renderer = r
	c.cam = viz.NewPerspectiveCamera(FieldOfView, 1, NearPlane, FarPlane)
	c.cam.Position = viz.Vec3{Z: CameraDistance}
	c.field = Sample(ParticleCount, Radius, c.rng)
	c.initialized = true
	if vp.valid() {
		c.apply(vp)
	}
	return nil
}

// Tick advances the rotation by one frame and draws once.
func (c *Controller) Tick() {
	if !c.live() {
		return
	}
	c.rot = c.rot.Advance()
	c.ticks++
	c.renderer.Render(c.Frame())
}

// Resize applies a new viewport. Degenerate sizes are ignored; the return
// value reports whether the viewport changed.
func (c *Controller) Resize(vp Viewport) bool {
	if !c.live() || !vp.valid() || vp == c.vp {
		return false
	}
	c.apply(vp)
	return true
}

func (c *Controller) apply(vp Viewport) {
	c.vp = vp
	c.cam.Aspect = vp.Aspect()
	c.cam.UpdateProjection()
	c.renderer.Resize(vp.Width, vp.Height)
}

// Start schedules Tick on every frame of s until Stop. A Stop or Dispose
// issued while a frame is drawing ends the task after that frame.
func (c *Controller) Start(s sched.Scheduler) error {
	if !c.live() {
		return ErrNotInitialized
	}
	if c.running {
		return nil
	}
	c.running = true
	var step sched.Func
	step = func(time.Time) {
		c.frame = nil
		c.Tick()
		if c.running && c.live() && c.frame == nil {
			c.frame = s.RequestFrame(step)
		}
	}
	c.frame = s.RequestFrame(step)
	return nil
}

// Stop cancels the frame task. Safe to call when not running.
func (c *Controller) Stop() {
	c.running = false
	if c.frame != nil {
		c.frame.Stop()
		c.frame = nil
	}
}

// Running reports whether the frame task is scheduled.
func (c *Controller) Running() bool { return c.running }

// Dispose stops the frame task and releases the field and renderer. A
// disposed controller cannot be initialized again.
func (c *Controller) Dispose() {
	c.Stop()
	c.field = nil
	c.renderer = nil
	c.disposed = true
}

func (c *Controller) live() bool { return c.initialized && !c.disposed }

// Frame is the current draw: field, group transform, camera and viewport.
func (c *Controller) Frame() viz.Frame {
	return viz.Frame{
		Points:    c.field,
		Transform: c.rot.Euler().Matrix(),
		Camera:    c.cam,
		Width:     c.vp.Width,
		Height:    c.vp.Height,
	}
}

func (c *Controller) Rotation() Rotation             { return c.rot }
func (c *Controller) Viewport() Viewport             { return c.vp }
func (c *Controller) Field() Field                   { return c.field }
func (c *Controller) Camera() *viz.PerspectiveCamera { return c.cam }
func (c *Controller) Ticks() uint64                  { return c.ticks }
