package rendertest

import (
	"github.com/mgnsk/go-webgl-demos/pkg/render"
)

// Scheduler is a render.Scheduler fired by hand.
type Scheduler struct {
	pending  []func()
	requests int
}

// RequestFrame implements render.Scheduler.
func (s *Scheduler) RequestFrame(cb func()) {
	s.pending = append(s.pending, cb)
	s.requests++
}

// Pending returns the number of registered callbacks not yet fired.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Requests returns the total number of RequestFrame calls.
func (s *Scheduler) Requests() int {
	return s.requests
}

// Fire invokes the oldest pending callback. It returns false when none is pending.
func (s *Scheduler) Fire() bool {
	if len(s.pending) == 0 {
		return false
	}
	cb := s.pending[0]
	s.pending = s.pending[1:]
	cb()
	return true
}

// FireN fires up to n callbacks and returns how many were fired.
func (s *Scheduler) FireN(n int) int {
	fired := 0
	for fired < n && s.Fire() {
		fired++
	}
	return fired
}

// Loader is a render.ImageLoader completed by hand.
type Loader struct {
	pending map[string][]func(render.Image, error)
}

// LoadImage implements render.ImageLoader.
func (l *Loader) LoadImage(url string, done func(render.Image, error)) {
	if l.pending == nil {
		l.pending = make(map[string][]func(render.Image, error))
	}
	l.pending[url] = append(l.pending[url], done)
}

// Pending reports whether a load of url is in progress.
func (l *Loader) Pending(url string) bool {
	return len(l.pending[url]) > 0
}

// Complete finishes all loads of url with img and err.
func (l *Loader) Complete(url string, img render.Image, err error) {
	callbacks := l.pending[url]
	delete(l.pending, url)
	for _, done := range callbacks {
		done(img, err)
	}
}
