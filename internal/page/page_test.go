package page_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/page"
	"github.com/san-kum/folio/internal/scene"
	"github.com/san-kum/folio/internal/transition"
	"github.com/san-kum/folio/internal/typewriter"
	"github.com/san-kum/folio/internal/viz"
)

var _ = Describe("Page", func() {
	var (
		origin time.Time
		splash *viz.Splash
		pg     *page.Page
	)

	pump := func(until time.Duration) {
		for t := pg.Loop.Now().Sub(origin); t < until; {
			t += 16 * time.Millisecond
			if t > until {
				t = until
			}
			pg.Advance(origin.Add(t))
		}
	}

	BeforeEach(func() {
		origin = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		splash = viz.NewSplash(60)

		var err error
		pg, err = page.New(content.Default(), splash, rand.New(rand.NewSource(7)), page.Options{Origin: origin})
		Expect(err).NotTo(HaveOccurred())
		Expect(pg.Mount(scene.Viewport{Width: 160, Height: 96})).To(Succeed())
	})

	It("refuses a second mount", func() {
		Expect(pg.Mount(scene.Viewport{Width: 10, Height: 10})).To(MatchError(page.ErrMounted))
	})

	It("rejects an invalid profile", func() {
		_, err := page.New(&content.Profile{}, viz.NewSplash(60), rand.New(rand.NewSource(1)), page.Options{})
		Expect(err).To(MatchError(content.ErrInvalidProfile))
	})

	It("draws the field on every frame while the splash is up", func() {
		pump(160 * time.Millisecond)
		Expect(pg.Scene.Ticks()).To(BeEquivalentTo(10))
		Expect(splash.Drawn()).To(BeNumerically(">", 0))
		Expect(pg.ShowingContent()).To(BeFalse())
	})

	It("swaps to the content and stops the scene", func() {
		pump(5 * time.Second)
		Expect(pg.Transition.State()).To(Equal(transition.Hidden))
		Expect(pg.ShowingContent()).To(BeTrue())
		Expect(splash.Visible()).To(BeFalse())
		Expect(pg.Scene.Running()).To(BeFalse())

		ticks := pg.Scene.Ticks()
		pump(6 * time.Second)
		Expect(pg.Scene.Ticks()).To(Equal(ticks))
	})

	It("types the hero lines after the content appears", func() {
		Expect(pg.Hero).To(HaveLen(2))
		pump(4990 * time.Millisecond)
		Expect(pg.Hero[0].State()).To(Equal(typewriter.Idle))

		pump(7 * time.Second)
		Expect(pg.Hero[0].State()).To(Equal(typewriter.Complete))
		Expect(pg.Hero[0].Text()).To(Equal("Sitesh Muduli"))
		Expect(pg.Hero[1].State()).To(Equal(typewriter.Idle))

		pump(10 * time.Second)
		Expect(pg.Hero[1].Text()).To(Equal("Data Engineer"))
	})

	It("releases every timer on dispose", func() {
		pump(6 * time.Second)
		pg.Dispose()
		Expect(pg.Loop.Pending()).To(BeZero())
		Expect(pg.Advance(origin.Add(time.Minute))).To(BeZero())
		Expect(pg.Mount(scene.Viewport{Width: 10, Height: 10})).To(MatchError(page.ErrDisposed))
	})
})
