// Package typewriter reveals text one character at a time with an
// independently blinking cursor.
package typewriter

import (
	"fmt"
	"time"

	"github.com/san-kum/folio/internal/sched"
)

// Default cadences.
const (
	CharInterval  = 150 * time.Millisecond
	BlinkInterval = 500 * time.Millisecond
)

type State int

const (
	Idle State = iota
	Revealing
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Revealing:
		return "revealing"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options configures one engine. Zero intervals take the defaults.
type Options struct {
	StartDelay    time.Duration
	CharInterval  time.Duration
	BlinkInterval time.Duration
}

// Engine is one typewriter instance. The reveal timer owns revealed; the
// blink timer owns cursor. Close releases both.
type Engine struct {
	text     []rune
	opts     Options
	revealed int
	cursor   bool
	state    State

	start  sched.Timer
	reveal sched.Timer
	blink  sched.Timer
	closed bool
}

func New(text string, opts Options) *Engine {
	if opts.CharInterval <= 0 {
		opts.CharInterval = CharInterval
	}
	if opts.BlinkInterval <= 0 {
		opts.BlinkInterval = BlinkInterval
	}
	return &Engine{text: []rune(text), opts: opts, cursor: true}
}

// Start begins blinking immediately and revealing after the start delay.
// Starting a started or closed engine does nothing.
func (e *Engine) Start(s sched.Scheduler) {
	if e.closed || e.blink != nil {
		return
	}
	e.blink = s.Every(e.opts.BlinkInterval, func(time.Time) { e.cursor = !e.cursor })
	if e.opts.StartDelay > 0 {
		e.start = s.AfterFunc(e.opts.StartDelay, func(time.Time) {
			e.start = nil
			e.begin(s)
		})
		return
	}
	e.begin(s)
}

func (e *Engine) begin(s sched.Scheduler) {
	if len(e.text) == 0 {
		e.state = Complete
		return
	}
	e.state = Revealing
	e.reveal = s.Every(e.opts.CharInterval, func(time.Time) {
		e.revealed++
		if e.revealed >= len(e.text) {
			e.state = Complete
			e.reveal.Stop()
			e.reveal = nil
		}
	})
}

// Close cancels every timer the engine owns. The engine keeps its last
// displayed state.
func (e *Engine) Close() {
	e.closed = true
	for _, t := range []sched.Timer{e.start, e.reveal, e.blink} {
		if t != nil {
			t.Stop()
		}
	}
	e.start, e.reveal, e.blink = nil, nil, nil
}

// Text is the revealed prefix of the source text.
func (e *Engine) Text() string { return string(e.text[:e.revealed]) }

func (e *Engine) Revealed() int       { return e.revealed }
func (e *Engine) CursorVisible() bool { return e.cursor }
func (e *Engine) State() State        { return e.state }
