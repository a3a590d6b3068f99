package sched

import (
	"container/heap"
	"errors"
	"time"
)

// ErrInvalidInterval is the panic value of Every with a non-positive interval.
var ErrInvalidInterval = errors.New("sched: non-positive interval")

// Func is a scheduled callback. now is the loop time at which it runs.
type Func func(now time.Time)

// Timer is a handle on a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped a live
	// timer; stopping twice returns false.
	Stop() bool
}

// Scheduler is the subset of Loop that timer owners depend on.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn Func) Timer
	Every(d time.Duration, fn Func) Timer
	RequestFrame(fn Func) Timer
}

type timerKind int

const (
	kindOnce timerKind = iota
	kindEvery
	kindFrame
)

type timer struct {
	loop   *Loop
	kind   timerKind
	when   time.Time
	period time.Duration
	fn     Func
	seq    uint64
	index  int
	live   bool
}

func (t *timer) Stop() bool {
	if !t.live {
		return false
	}
	t.live = false
	switch t.kind {
	case kindFrame:
		t.loop.dropFrame(t)
	default:
		if t.index >= 0 {
			heap.Remove(&t.loop.timers, t.index)
		}
	}
	return true
}

// Loop is a virtual-time scheduler.
type Loop struct {
	now    time.Time
	seq    uint64
	timers timerHeap
	frames []*timer
}

// NewLoop returns a loop whose clock starts at origin.
func NewLoop(origin time.Time) *Loop {
	return &Loop{now: origin}
}

func (l *Loop) Now() time.Time { return l.now }

// Pending returns the number of live timers and frame requests.
func (l *Loop) Pending() int { return len(l.timers) + len(l.frames) }

// AfterFunc runs fn once, d after the current loop time.
func (l *Loop) AfterFunc(d time.Duration, fn Func) Timer {
	if d < 0 {
		d = 0
	}
	t := l.newTimer(kindOnce, fn)
	t.when = l.now.Add(d)
	heap.Push(&l.timers, t)
	return t
}

// Every runs fn every d, starting d after the current loop time. Deadlines
// advance by exactly d so the cadence does not drift with pump jitter.
func (l *Loop) Every(d time.Duration, fn Func) Timer {
	if d <= 0 {
		panic(ErrInvalidInterval)
	}
	t := l.newTimer(kindEvery, fn)
	t.period = d
	t.when = l.now.Add(d)
	heap.Push(&l.timers, t)
	return t
}

// RequestFrame runs fn once on the next Advance, after due timers.
func (l *Loop) RequestFrame(fn Func) Timer {
	t := l.newTimer(kindFrame, fn)
	t.index = -1
	l.frames = append(l.frames, t)
	return t
}

func (l *Loop) newTimer(kind timerKind, fn Func) *timer {
	l.seq++
	return &timer{loop: l, kind: kind, fn: fn, seq: l.seq, live: true}
}

func (l *Loop) dropFrame(t *timer) {
	for i, f := range l.frames {
		if f == t {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
}

// Advance moves the clock to `to`, running every due timer in deadline order
// and then the frame callbacks requested before this call. It returns the
// number of callbacks run. Moving backwards runs nothing.
func (l *Loop) Advance(to time.Time) int {
	if to.Before(l.now) {
		return 0
	}
	ran := 0
	for len(l.timers) > 0 && !l.timers[0].when.After(to) {
		t := l.timers[0]
		if t.when.After(l.now) {
			l.now = t.when
		}
		if t.kind == kindEvery {
			t.when = t.when.Add(t.period)
			t.seq = l.nextSeq()
			heap.Fix(&l.timers, 0)
		} else {
			heap.Pop(&l.timers)
			t.live = false
		}
		t.fn(l.now)
		ran++
	}
	l.now = to

	frames := l.frames
	l.frames = nil
	for _, f := range frames {
		if !f.live {
			continue
		}
		f.live = false
		f.fn(l.now)
		ran++
	}
	return ran
}

func (l *Loop) nextSeq() uint64 {
	l.seq++
	return l.seq
}

// timerHeap orders timers by deadline, then by scheduling order.
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].seq < h[j].seq
	}
	return h[i].when.Before(h[j].when)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
