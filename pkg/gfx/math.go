package gfx

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Point3D is a point in 3D space.
type Point3D mgl32.Vec3

// RotateAroundPoint rotates point p around middle point with direction vector
// dir (must be unit vector) by an angle.
// Formula from here: https://sites.google.com/site/glennmurray/Home/rotation-matrices-and-formulas
func (p Point3D) RotateAroundPoint(middle mgl32.Vec3, axis mgl32.Vec3, angle float32) mgl32.Vec3 {
	a := middle.X()
	b := middle.Y()
	c := middle.Z()
	u := axis.X()
	v := axis.Y()
	w := axis.Z()

	angleCos := math32.Cos(angle)
	angleSin := math32.Sin(angle)

	newX := (a*(v*v+w*w)-u*(b*v+c*w-u*p[0]-v*p[1]-w*p[2]))*(1-angleCos) + p[0]*angleCos + (-c*v+b*w-w*p[1]+v*p[2])*angleSin
	newY := (b*(u*u+w*w)-v*(a*u+c*w-u*p[0]-v*p[1]-w*p[2]))*(1-angleCos) + p[1]*angleCos + (c*u-a*w+w*p[0]-u*p[2])*angleSin
	newZ := (c*(u*u+v*v)-w*(a*u+b*v-u*p[0]-v*p[1]-w*p[2]))*(1-angleCos) + p[2]*angleCos + (-b*u+a*v-v*p[0]+u*p[1])*angleSin

	return mgl32.Vec3{newX, newY, newZ}
}

// WrapAngle wraps an angle in radians into [0, 2π).
func WrapAngle(angle float32) float32 {
	a := math32.Mod(angle, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}
