package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera is a camera that uses perspective projection.
type PerspectiveCamera struct {
	eye        mgl32.Vec3
	target     mgl32.Vec3
	up         mgl32.Vec3
	fovRadians float32
	zoom       float32
	ratio      float32
	near       float32
	far        float32
}

// NewPerspectiveCamera creates a new camera with near and far planes at 1 and 1000.
func NewPerspectiveCamera(eye, target, up mgl32.Vec3, fov, zoom, ratio float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		eye:        eye,
		target:     target,
		up:         up,
		fovRadians: fov,
		zoom:       zoom,
		ratio:      ratio,
		near:       1,
		far:        1000,
	}
}

// SetClipPlanes sets the near and far clipping plane distances.
func (c *PerspectiveCamera) SetClipPlanes(near, far float32) {
	c.near = near
	c.far = far
}

// SetRatio sets the aspect ratio (width / height).
func (c *PerspectiveCamera) SetRatio(ratio float32) {
	c.ratio = ratio
}

// Eye returns the camera position.
func (c *PerspectiveCamera) Eye() mgl32.Vec3 {
	return c.eye
}

// Projection returns the projection matrix.
func (c *PerspectiveCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.fovRadians*c.zoom, c.ratio, c.near, c.far)
}

// View returns the view matrix.
func (c *PerspectiveCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.target, c.up)
}

// Orbit moves the eye around the target about the up axis.
func (c *PerspectiveCamera) Orbit(amount float32) {
	c.eye = Point3D(c.eye).RotateAroundPoint(c.target, c.up.Normalize(), amount)
}
