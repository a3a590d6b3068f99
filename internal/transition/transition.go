// Package transition runs the one-shot splash-to-content timeline.
package transition

import (
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/folio/internal/sched"
	"github.com/san-kum/folio/internal/surface"
)

// Timeline constants.
const (
	FadeStartDelay = 4000 * time.Millisecond
	FadeDuration   = 1000 * time.Millisecond
)

// ErrAlreadyStarted indicates a second Start on the same controller.
var ErrAlreadyStarted = errors.New("transition: already started")

type State int

const (
	Visible State = iota
	FadingOut
	Hidden
)

func (s State) String() string {
	switch s {
	case Visible:
		return "visible"
	case FadingOut:
		return "fading-out"
	case Hidden:
		return "hidden"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Controller fades the splash out and then swaps it for the content. It
// only ever moves forward: Visible, FadingOut, Hidden.
type Controller struct {
	splash  surface.Surface
	content surface.Surface

	state   State
	sched   sched.Scheduler
	fadeAt  time.Time
	pending sched.Timer
	started bool

	// stoppedAt pins the fade clock once disposed.
	stoppedAt time.Time

	// OnChange, when set, observes every state change.
	OnChange func(s State, at time.Time)
}

// New looks up the splash and content surfaces; a missing surface is a
// configuration error.
func New(reg *surface.Registry) (*Controller, error) {
	splash, err := reg.Lookup(surface.Splash)
	if err != nil {
		return nil, fmt.Errorf("transition: %w", err)
	}
	content, err := reg.Lookup(surface.Content)
	if err != nil {
		return nil, fmt.Errorf("transition: %w", err)
	}
	return &Controller{splash: splash, content: content}, nil
}

// Start shows the splash, hides the content and schedules the timeline
// relative to the scheduler's current time.
func (c *Controller) Start(s sched.Scheduler) error {
	if c.started {
		return ErrAlreadyStarted
	}
	c.started = true
	c.sched = s
	c.splash.SetVisible(true)
	c.splash.SetOpacity(1)
	c.content.SetVisible(false)
	c.pending = s.AfterFunc(FadeStartDelay, c.fade)
	return nil
}

func (c *Controller) fade(now time.Time) {
	c.fadeAt = now
	c.splash.SetOpacity(0)
	c.set(FadingOut, now)
	c.pending = c.sched.AfterFunc(FadeDuration, c.swap)
}

func (c *Controller) swap(now time.Time) {
	c.pending = nil
	c.splash.SetVisible(false)
	c.content.SetVisible(true)
	c.content.SetOpacity(1)
	c.set(Hidden, now)
}

func (c *Controller) set(s State, now time.Time) {
	c.state = s
	if c.OnChange != nil {
		c.OnChange(s, now)
	}
}

// Dispose cancels whatever step is still pending. The surfaces keep their
// current visibility.
func (c *Controller) Dispose() {
	if c.sched != nil && c.stoppedAt.IsZero() {
		c.stoppedAt = c.sched.Now()
	}
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) State() State { return c.state }

// Done reports whether the content has been revealed.
func (c *Controller) Done() bool { return c.state == Hidden }

// FadeProgress is the linear fade position in [0, 1].
func (c *Controller) FadeProgress() float64 {
	switch c.state {
	case Visible:
		return 0
	case Hidden:
		return 1
	}
	now := c.stoppedAt
	if now.IsZero() {
		now = c.sched.Now()
	}
	p := float64(now.Sub(c.fadeAt)) / float64(FadeDuration)
	return surface.Clamp01(p)
}
