//go:build js && wasm
// +build js,wasm

package webgl

import (
	"syscall/js"
)

// RAFScheduler schedules frames with requestAnimationFrame.
// When the stats.js Stats global is present an FPS panel is attached
// to the document body and every frame is measured.
type RAFScheduler struct {
	fn    js.Func
	queue []frameRequest
	stats js.Value
}

type frameRequest struct {
	id js.Value
	cb func()
}

// NewRAFScheduler creates a scheduler. Release it when done.
func NewRAFScheduler() *RAFScheduler {
	s := &RAFScheduler{}

	if ctor := js.Global().Get("Stats"); ctor.Truthy() {
		s.stats = ctor.New()
		s.stats.Call("showPanel", 0)
		js.Global().Get("document").Get("body").Call("appendChild", s.stats.Get("dom"))
	}

	s.fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(s.queue) == 0 {
			return nil
		}
		req := s.queue[0]
		s.queue = s.queue[1:]

		if s.stats.Truthy() {
			s.stats.Call("begin")
			defer s.stats.Call("end")
		}

		req.cb()

		return nil
	})

	return s
}

// RequestFrame implements render.Scheduler.
func (s *RAFScheduler) RequestFrame(cb func()) {
	id := js.Global().Call("requestAnimationFrame", s.fn)
	s.queue = append(s.queue, frameRequest{id: id, cb: cb})
}

// Release cancels pending frames and frees the frame callback.
func (s *RAFScheduler) Release() {
	for _, req := range s.queue {
		js.Global().Call("cancelAnimationFrame", req.id)
	}
	s.queue = nil
	s.fn.Release()
}
