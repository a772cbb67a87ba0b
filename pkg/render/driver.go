package render

import (
	"context"
	"sync"
	"sync/atomic"
)

// Scheduler invokes callbacks at the display refresh cadence.
type Scheduler interface {
	// RequestFrame registers cb to be invoked once, at the next display refresh.
	RequestFrame(cb func())
}

// Framer draws one frame.
type Framer interface {
	Frame() error
}

// Driver runs a Framer once per display refresh until it is stopped,
// its context is done or a frame fails.
//
// A tick re-registers itself with the scheduler before drawing, so the
// callback chain is never recursive. Once the loop has ended the pending
// callback returns without drawing or registering again.
type Driver struct {
	framer Framer
	sched  Scheduler

	ctx   context.Context
	ticks atomic.Uint64

	done     chan struct{}
	doneOnce sync.Once
	err      error
}

// NewDriver creates a frame driver.
func NewDriver(f Framer, s Scheduler) *Driver {
	return &Driver{
		framer: f,
		sched:  s,
		done:   make(chan struct{}),
	}
}

// Start runs the first tick immediately. It must be called once.
// The loop ends as soon as ctx is done, without waiting for a callback.
func (d *Driver) Start(ctx context.Context) {
	if d.ctx != nil {
		panic("render: Driver started twice")
	}
	d.ctx = ctx
	Logger().Info("frame driver started")

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				d.finish(nil)
			case <-d.done:
			}
		}()
	}

	d.tick()
}

// Stop ends the loop immediately and closes Done.
// The pending callback, if any, returns without drawing.
func (d *Driver) Stop() {
	d.finish(nil)
}

// Done is closed when the loop has ended.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Err returns the frame error that ended the loop.
// It is nil while running and after a stop or context cancellation.
func (d *Driver) Err() error {
	select {
	case <-d.done:
		return d.err
	default:
		return nil
	}
}

// Wait blocks until the loop has ended and returns Err.
func (d *Driver) Wait() error {
	<-d.done
	return d.err
}

// Ticks returns the number of frames attempted.
func (d *Driver) Ticks() uint64 {
	return d.ticks.Load()
}

func (d *Driver) tick() {
	select {
	case <-d.done:
		return
	case <-d.ctx.Done():
		d.finish(nil)
		return
	default:
	}

	d.sched.RequestFrame(d.tick)

	d.ticks.Add(1)
	if err := d.framer.Frame(); err != nil {
		Logger().Error("frame failed", "tick", d.ticks.Load(), "error", err)
		d.finish(err)
	}
}

func (d *Driver) finish(err error) {
	d.doneOnce.Do(func() {
		d.err = err
		close(d.done)
		Logger().Info("frame driver stopped", "ticks", d.ticks.Load())
	})
}
