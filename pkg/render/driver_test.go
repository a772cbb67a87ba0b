package render_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	"github.com/mgnsk/go-webgl-demos/pkg/render"
	"github.com/mgnsk/go-webgl-demos/pkg/render/rendertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type countingFramer struct {
	frames int
	failAt int
	err    error
}

func (f *countingFramer) Frame() error {
	f.frames++
	if f.frames == f.failAt {
		return f.err
	}
	return nil
}

var _ = Describe("Driver", func() {
	var (
		framer *countingFramer
		sched  *rendertest.Scheduler
		driver *render.Driver
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		framer = &countingFramer{}
		sched = &rendertest.Scheduler{}
		driver = render.NewDriver(framer, sched)
		ctx, cancel = context.WithCancel(context.Background())
	})

	AfterEach(func() {
		cancel()
	})

	When("started", func() {
		BeforeEach(func() {
			driver.Start(ctx)
		})

		It("draws the first frame immediately", func() {
			Expect(framer.frames).To(Equal(1))
			Expect(driver.Ticks()).To(BeNumerically("==", 1))
		})

		It("registers exactly one future callback per tick", func() {
			Expect(sched.Pending()).To(Equal(1))

			Expect(sched.FireN(10)).To(Equal(10))
			Expect(sched.Pending()).To(Equal(1))
			Expect(sched.Requests()).To(Equal(11))
			Expect(framer.frames).To(Equal(11))
			Expect(driver.Ticks()).To(BeNumerically("==", 11))
		})

		It("is running", func() {
			Expect(driver.Done()).NotTo(BeClosed())
			Expect(driver.Err()).To(BeNil())
		})

		It("panics when started twice", func() {
			Expect(func() { driver.Start(ctx) }).To(Panic())
		})

		It("stops without re-registering", func() {
			driver.Stop()
			Expect(sched.Fire()).To(BeTrue())

			Expect(sched.Pending()).To(Equal(0))
			Expect(framer.frames).To(Equal(1))
			Expect(driver.Done()).To(BeClosed())
			Expect(driver.Wait()).To(Succeed())
		})

		It("stops when the context is canceled", func() {
			sched.FireN(3)
			cancel()
			Expect(sched.Fire()).To(BeTrue())

			Expect(sched.Pending()).To(Equal(0))
			Expect(framer.frames).To(Equal(4))
			Expect(driver.Done()).To(BeClosed())
			Expect(driver.Err()).To(BeNil())
		})

		It("closes Done on stop before the pending callback runs", func() {
			driver.Stop()

			Expect(driver.Done()).To(BeClosed())
			Expect(sched.Pending()).To(Equal(1))

			sched.Fire()
			Expect(framer.frames).To(Equal(1))
			Expect(sched.Pending()).To(Equal(0))
		})

		It("closes Done when the context is canceled between callbacks", func() {
			cancel()

			Eventually(driver.Done()).Should(BeClosed())
			Expect(driver.Err()).To(BeNil())
			Expect(sched.Pending()).To(Equal(1))

			sched.Fire()
			Expect(framer.frames).To(Equal(1))
			Expect(sched.Pending()).To(Equal(0))
		})

		It("tolerates repeated stops", func() {
			driver.Stop()
			driver.Stop()
			sched.Fire()
			Expect(driver.Done()).To(BeClosed())
		})
	})

	When("a frame fails", func() {
		var frameErr = errors.New("context lost")

		BeforeEach(func() {
			framer.failAt = 3
			framer.err = frameErr
			driver.Start(ctx)
			sched.FireN(2)
		})

		It("ends the loop with the error", func() {
			Expect(driver.Done()).To(BeClosed())
			Expect(driver.Err()).To(MatchError(frameErr))
			Expect(driver.Wait()).To(MatchError(frameErr))
		})

		It("does not draw again", func() {
			Expect(sched.Fire()).To(BeTrue())
			Expect(sched.Pending()).To(Equal(0))
			Expect(framer.frames).To(Equal(3))
		})
	})

	When("the context is done before start", func() {
		It("never draws", func() {
			cancel()
			driver.Start(ctx)

			Expect(framer.frames).To(Equal(0))
			Expect(sched.Pending()).To(Equal(0))
			Expect(driver.Done()).To(BeClosed())
		})
	})

	When("a logger is set", func() {
		var buf bytes.Buffer

		BeforeEach(func() {
			buf.Reset()
			render.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
		})

		AfterEach(func() {
			render.SetLogger(nil)
		})

		It("logs start and stop", func() {
			driver.Start(ctx)
			driver.Stop()
			sched.Fire()

			Expect(buf.String()).To(ContainSubstring("frame driver started"))
			Expect(buf.String()).To(ContainSubstring("frame driver stopped"))
		})
	})
})

var _ = Describe("Logger", func() {
	It("is silent by default", func() {
		Expect(render.Logger().Enabled(context.Background(), slog.LevelError)).To(BeFalse())
	})
})
