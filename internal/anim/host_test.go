package anim_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/linprimer/internal/anim"
)

func newCounter(start int) *anim.Driver[int, int] {
	return anim.MustNew(anim.Config[int, int]{
		Initial: start,
		Update:  func(s int) int { return s + 1 },
		Render:  func(s int) int { return s },
	})
}

var _ = Describe("Host", func() {
	var (
		host   *anim.Host
		a, b   *anim.Driver[int, int]
		ticked map[string]int
	)

	BeforeEach(func() {
		host = anim.NewHost(slog.New(slog.NewTextHandler(io.Discard, nil)))
		a, b = newCounter(0), newCounter(100)
		host.Add("a", a)
		host.Add("b", b)
		ticked = map[string]int{}
		host.AddObserver(anim.ObserverFunc(func(name string, tick int) {
			ticked[name] = tick
		}))
	})

	It("advances every driver once per step", func() {
		for i := 0; i < 5; i++ {
			Expect(host.StepAll()).To(Equal(2))
		}
		Expect(a.State()).To(Equal(5))
		Expect(b.State()).To(Equal(105))
		Expect(ticked).To(Equal(map[string]int{"a": 5, "b": 5}))
	})

	It("keeps drivers independent when one is stopped", func() {
		host.StepAll()
		a.Stop()
		Expect(host.StepAll()).To(Equal(1))
		Expect(host.StepAll()).To(Equal(1))
		Expect(a.State()).To(Equal(1))
		Expect(b.State()).To(Equal(103))
	})

	It("stops every driver when the context ends", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
		defer cancel()

		err := host.Run(ctx, 200)
		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(a.Stopped()).To(BeTrue())
		Expect(b.Stopped()).To(BeTrue())
		Expect(a.Ticks()).To(BeNumerically(">", 0))
		Expect(b.State() - 100).To(Equal(a.State()))
	})

	It("returns once every driver has stopped", func() {
		a.Stop()
		b.Stop()
		Expect(host.Run(context.Background(), 100)).To(Succeed())
	})

	It("rejects a non-positive frame rate", func() {
		Expect(host.Run(context.Background(), 0)).To(MatchError(anim.ErrBadCadence))
	})
})
