package typewriter_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/sched"
	"github.com/san-kum/folio/internal/typewriter"
)

type sample struct {
	text string
	at   time.Duration
}

var _ = Describe("Engine", func() {
	var (
		origin time.Time
		loop   *sched.Loop
	)

	advance := func(d time.Duration) { loop.Advance(origin.Add(d)) }

	// watch pumps 1ms steps and records every change of the displayed text.
	watch := func(e *typewriter.Engine, until time.Duration) []sample {
		seen := []sample{{e.Text(), 0}}
		for t := time.Millisecond; t <= until; t += time.Millisecond {
			advance(t)
			if last := seen[len(seen)-1]; e.Text() != last.text {
				seen = append(seen, sample{e.Text(), t})
			}
		}
		return seen
	}

	BeforeEach(func() {
		origin = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		loop = sched.NewLoop(origin)
	})

	It("reveals Hi one character per interval", func() {
		e := typewriter.New("Hi", typewriter.Options{})
		Expect(e.State()).To(Equal(typewriter.Idle))
		e.Start(loop)
		Expect(e.State()).To(Equal(typewriter.Revealing))

		seen := watch(e, time.Second)
		Expect(seen).To(Equal([]sample{
			{"", 0},
			{"H", 150 * time.Millisecond},
			{"Hi", 300 * time.Millisecond},
		}))
		Expect(e.State()).To(Equal(typewriter.Complete))
		Expect(e.Revealed()).To(Equal(2))
	})

	It("becomes complete exactly when every character is revealed", func() {
		e := typewriter.New("Hi", typewriter.Options{})
		e.Start(loop)
		advance(299 * time.Millisecond)
		Expect(e.Revealed()).To(Equal(1))
		Expect(e.State()).To(Equal(typewriter.Revealing))
		advance(300 * time.Millisecond)
		Expect(e.Revealed()).To(Equal(2))
		Expect(e.State()).To(Equal(typewriter.Complete))

		// Only the blink timer stays alive.
		Expect(loop.Pending()).To(Equal(1))
	})

	It("counts characters, not bytes", func() {
		e := typewriter.New("héllo", typewriter.Options{})
		e.Start(loop)
		advance(2 * typewriter.CharInterval)
		Expect(e.Text()).To(Equal("hé"))
	})

	It("honors the start delay", func() {
		e := typewriter.New("Data", typewriter.Options{StartDelay: 2500 * time.Millisecond})
		e.Start(loop)
		Expect(e.State()).To(Equal(typewriter.Idle))

		seen := watch(e, 4*time.Second)
		Expect(seen[1]).To(Equal(sample{"D", 2650 * time.Millisecond}))
		Expect(seen[len(seen)-1]).To(Equal(sample{"Data", 3100 * time.Millisecond}))
		for i := 1; i < len(seen); i++ {
			Expect(seen[i].at - seen[i-1].at).To(BeNumerically(">=", typewriter.CharInterval))
		}
	})

	It("completes empty text without a reveal timer", func() {
		e := typewriter.New("", typewriter.Options{})
		e.Start(loop)
		Expect(e.State()).To(Equal(typewriter.Complete))
		Expect(e.Text()).To(BeEmpty())
		Expect(loop.Pending()).To(Equal(1))
	})

	It("blinks every 500ms, also after completion", func() {
		e := typewriter.New("Hi", typewriter.Options{})
		e.Start(loop)
		Expect(e.CursorVisible()).To(BeTrue())

		var toggles []time.Duration
		last := e.CursorVisible()
		for t := time.Millisecond; t <= 3*time.Second; t += time.Millisecond {
			advance(t)
			if e.CursorVisible() != last {
				toggles = append(toggles, t)
				last = e.CursorVisible()
			}
		}
		Expect(toggles).To(HaveLen(6))
		for i, at := range toggles {
			Expect(at).To(Equal(time.Duration(i+1) * typewriter.BlinkInterval))
		}
		Expect(e.State()).To(Equal(typewriter.Complete))
	})

	It("stops every timer on close", func() {
		e := typewriter.New("Sitesh Muduli", typewriter.Options{StartDelay: time.Second})
		e.Start(loop)
		advance(1200 * time.Millisecond)
		Expect(e.Revealed()).To(Equal(1))

		e.Close()
		Expect(loop.Pending()).To(BeZero())
		cursor, text := e.CursorVisible(), e.Text()
		advance(time.Minute)
		Expect(e.CursorVisible()).To(Equal(cursor))
		Expect(e.Text()).To(Equal(text))

		e.Start(loop)
		Expect(loop.Pending()).To(BeZero())
	})

	It("releases a pending start delay on close", func() {
		e := typewriter.New("later", typewriter.Options{StartDelay: 5 * time.Second})
		e.Start(loop)
		Expect(loop.Pending()).To(Equal(2))
		e.Close()
		Expect(loop.Pending()).To(BeZero())
		advance(10 * time.Second)
		Expect(e.State()).To(Equal(typewriter.Idle))
	})

	It("runs several instances independently", func() {
		a := typewriter.New("ab", typewriter.Options{})
		b := typewriter.New("xyz", typewriter.Options{StartDelay: time.Second, CharInterval: 100 * time.Millisecond})
		a.Start(loop)
		b.Start(loop)
		advance(1200 * time.Millisecond)
		Expect(a.Text()).To(Equal("ab"))
		Expect(b.Text()).To(Equal("xy"))
		a.Close()
		advance(1300 * time.Millisecond)
		Expect(b.State()).To(Equal(typewriter.Complete))
		b.Close()
		Expect(loop.Pending()).To(BeZero())
	})
})
