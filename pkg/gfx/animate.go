package gfx

import "math"

// Animator advances transform state by one frame tick.
type Animator interface {
	Advance(t *Transform)
}

// Spin rotates the model by a fixed angle per tick about each of its axes in order.
// The angular velocity is constant in ticks, not in wall-clock time.
type Spin struct {
	step  float32
	axes  []Axis
	ticks uint64
}

// NewSpin creates a spin of step radians per tick.
func NewSpin(step float32, axes ...Axis) *Spin {
	return &Spin{
		step: step,
		axes: axes,
	}
}

// Advance composes one tick of rotation into the model matrix.
func (s *Spin) Advance(t *Transform) {
	for _, axis := range s.axes {
		t.Rotate(axis, s.step)
	}
	s.ticks++
}

// Ticks returns the number of ticks applied.
func (s *Spin) Ticks() uint64 {
	return s.ticks
}

// Angle returns the accumulated angle about each axis, wrapped into [0, 2π).
func (s *Spin) Angle() float32 {
	return WrapAngle(float32(math.Mod(float64(s.ticks)*float64(s.step), 2*math.Pi)))
}

// Orbit moves a camera around its target by a fixed angle per tick
// and writes the camera matrices into the transform.
type Orbit struct {
	camera *PerspectiveCamera
	step   float32
}

// NewOrbit creates an orbit animator.
func NewOrbit(camera *PerspectiveCamera, step float32) *Orbit {
	return &Orbit{
		camera: camera,
		step:   step,
	}
}

// Advance orbits the camera by one step.
func (o *Orbit) Advance(t *Transform) {
	o.camera.Orbit(o.step)
	t.View = o.camera.View()
	t.Projection = o.camera.Projection()
}
