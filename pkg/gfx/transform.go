package gfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Axis is a rotation axis.
type Axis int

// Axis constants.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Rotation returns the homogeneous rotation matrix about the axis.
func (a Axis) Rotation(angle float32) mgl32.Mat4 {
	switch a {
	case AxisX:
		return mgl32.HomogRotate3DX(angle)
	case AxisY:
		return mgl32.HomogRotate3DY(angle)
	case AxisZ:
		return mgl32.HomogRotate3DZ(angle)
	default:
		panic(fmt.Errorf("invalid axis: %s", a))
	}
}

// Transform is the per-scene matrix state.
//
// Model operations post-multiply the model matrix, so they apply to a vertex
// in the reverse of the order they were called in: calling Translate and
// then Scale scales the object first and then places it in the world.
type Transform struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4

	// Derived by Update.
	ModelView mgl32.Mat4
	MVP       mgl32.Mat4
	Normal    mgl32.Mat4
}

// NewTransform creates a transform with identity matrices.
func NewTransform() *Transform {
	t := &Transform{
		Model:      mgl32.Ident4(),
		View:       mgl32.Ident4(),
		Projection: mgl32.Ident4(),
	}
	t.Update()
	return t
}

// Translate composes a translation into the model matrix.
func (t *Transform) Translate(v mgl32.Vec3) {
	t.Model = t.Model.Mul4(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Scale composes a scale into the model matrix.
func (t *Transform) Scale(v mgl32.Vec3) {
	t.Model = t.Model.Mul4(mgl32.Scale3D(v[0], v[1], v[2]))
}

// Rotate composes a rotation about axis into the model matrix.
func (t *Transform) Rotate(axis Axis, angle float32) {
	t.Model = t.Model.Mul4(axis.Rotation(angle))
}

// Update recomputes the derived matrices.
func (t *Transform) Update() {
	t.ModelView = t.View.Mul4(t.Model)
	t.MVP = t.Projection.Mul4(t.ModelView)
	t.Normal = t.ModelView.Inv().Transpose()
}
