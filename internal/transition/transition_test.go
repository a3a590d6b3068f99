package transition_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/sched"
	"github.com/san-kum/folio/internal/surface"
	"github.com/san-kum/folio/internal/transition"
)

type change struct {
	state transition.State
	at    time.Duration
}

var _ = Describe("Controller", func() {
	var (
		origin  time.Time
		loop    *sched.Loop
		splash  *surface.Basic
		content *surface.Basic
		ctrl    *transition.Controller
		changes []change
	)

	// pump advances the loop in 16ms frames, like a display refresh.
	pump := func(until time.Duration) {
		for t := loop.Now().Sub(origin); t < until; {
			t += 16 * time.Millisecond
			if t > until {
				t = until
			}
			loop.Advance(origin.Add(t))
		}
	}

	BeforeEach(func() {
		origin = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		loop = sched.NewLoop(origin)
		splash = surface.NewBasic(surface.Splash, true)
		content = surface.NewBasic(surface.Content, true)
		changes = nil

		var err error
		ctrl, err = transition.New(surface.NewRegistry(splash, content))
		Expect(err).NotTo(HaveOccurred())
		ctrl.OnChange = func(s transition.State, at time.Time) {
			changes = append(changes, change{s, at.Sub(origin)})
		}
		Expect(ctrl.Start(loop)).To(Succeed())
	})

	It("starts with the splash shown and the content hidden", func() {
		Expect(ctrl.State()).To(Equal(transition.Visible))
		Expect(splash.Visible()).To(BeTrue())
		Expect(content.Visible()).To(BeFalse())
		Expect(ctrl.FadeProgress()).To(BeZero())
	})

	It("runs Visible, FadingOut, Hidden exactly once at 4000ms and 5000ms", func() {
		pump(3999 * time.Millisecond)
		Expect(changes).To(BeEmpty())

		pump(20 * time.Second)
		Expect(changes).To(Equal([]change{
			{transition.FadingOut, 4000 * time.Millisecond},
			{transition.Hidden, 5000 * time.Millisecond},
		}))
		Expect(ctrl.Done()).To(BeTrue())
		Expect(loop.Pending()).To(BeZero())
	})

	It("fades the splash before swapping surfaces", func() {
		pump(4500 * time.Millisecond)
		Expect(ctrl.State()).To(Equal(transition.FadingOut))
		Expect(splash.Opacity()).To(BeZero())
		Expect(splash.Visible()).To(BeTrue())
		Expect(content.Visible()).To(BeFalse())
		Expect(ctrl.FadeProgress()).To(BeNumerically("~", 0.5, 1e-9))

		pump(5000 * time.Millisecond)
		Expect(splash.Visible()).To(BeFalse())
		Expect(content.Visible()).To(BeTrue())
		Expect(ctrl.FadeProgress()).To(Equal(1.0))
	})

	It("does not depend on frame cadence", func() {
		loop.Advance(origin.Add(time.Minute))
		Expect(changes).To(HaveLen(2))
		Expect(changes[1].at).To(Equal(5000 * time.Millisecond))
	})

	It("refuses a second start", func() {
		Expect(ctrl.Start(loop)).To(MatchError(transition.ErrAlreadyStarted))
	})

	It("cancels pending steps on dispose", func() {
		pump(4200 * time.Millisecond)
		ctrl.Dispose()
		Expect(loop.Pending()).To(BeZero())
		pump(10 * time.Second)
		Expect(ctrl.State()).To(Equal(transition.FadingOut))
		Expect(changes).To(HaveLen(1))
	})

	It("freezes fade progress when disposed mid-fade", func() {
		pump(4500 * time.Millisecond)
		Expect(ctrl.FadeProgress()).To(BeNumerically("~", 0.5, 1e-9))
		ctrl.Dispose()
		pump(10 * time.Second)
		Expect(ctrl.State()).To(Equal(transition.FadingOut))
		Expect(ctrl.FadeProgress()).To(BeNumerically("~", 0.5, 1e-9))
	})
})

var _ = Describe("New", func() {
	It("fails without a content surface", func() {
		_, err := transition.New(surface.NewRegistry(surface.NewBasic(surface.Splash, true)))
		Expect(err).To(MatchError(surface.ErrNotFound))
	})

	It("fails without a splash surface", func() {
		_, err := transition.New(surface.NewRegistry(surface.NewBasic(surface.Content, false)))
		Expect(err).To(MatchError(surface.ErrNotFound))
	})
})

var _ = Describe("State", func() {
	It("names each state", func() {
		Expect(transition.Visible.String()).To(Equal("visible"))
		Expect(transition.FadingOut.String()).To(Equal("fading-out"))
		Expect(transition.Hidden.String()).To(Equal("hidden"))
	})
})
