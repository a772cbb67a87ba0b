// Package scene defines the demo scenes.
package scene

import (
	_ "embed"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/go-webgl-demos/pkg/geometry"
	"github.com/mgnsk/go-webgl-demos/pkg/gfx"
	"github.com/mgnsk/go-webgl-demos/pkg/render"
)

var (
	//go:embed shader/flat.vert
	flatVert string
	//go:embed shader/flat.frag
	flatFrag string
	//go:embed shader/lambert.vert
	lambertVert string
	//go:embed shader/lambert.frag
	lambertFrag string
	//go:embed shader/textured.vert
	texturedVert string
	//go:embed shader/textured.frag
	texturedFrag string
)

// Per-tick rotation angles.
const (
	TriangleStep     = math32.Pi / 2 / 70
	ColorCubeStep    = math32.Pi / 2 / 120
	TexturedCubeStep = math32.Pi / 2 / 180
)

// TextureSampler is the sampler uniform of the textured cube.
const TextureSampler = "textureID"

// Triangle is a flat-colored triangle spinning about Y.
func Triangle() render.SceneConfig {
	tr := gfx.NewTransform()
	tr.Translate(mgl32.Vec3{0.5, 0.3, 0})
	tr.Scale(mgl32.Vec3{0.5, 0.5, 0.5})

	return render.SceneConfig{
		Name:           "triangle",
		VertexShader:   flatVert,
		FragmentShader: flatFrag,
		Mesh:           geometry.Triangle(),
		Attributes: []render.Attribute{
			{Name: "position", Stream: geometry.Positions},
			{Name: "color", Stream: geometry.Colors},
		},
		Pipeline:  render.Flat,
		Transform: tr,
		Animators: []gfx.Animator{
			gfx.NewSpin(TriangleStep, gfx.AxisY),
		},
	}
}

// ColorCube is a Lambert-lit cube with a color per face, spinning about X
// and Y while the camera orbits it.
func ColorCube(aspect float32) render.SceneConfig {
	camera := gfx.NewPerspectiveCamera(
		mgl32.Vec3{0, 2, 6},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
		mgl32.DegToRad(45),
		1,
		aspect,
	)
	camera.SetClipPlanes(0.1, 100)

	tr := gfx.NewTransform()
	tr.View = camera.View()
	tr.Projection = camera.Projection()

	return render.SceneConfig{
		Name:           "cube",
		VertexShader:   lambertVert,
		FragmentShader: lambertFrag,
		Mesh:           geometry.ColorCube(),
		Attributes: []render.Attribute{
			{Name: "position", Stream: geometry.Positions},
			{Name: "color", Stream: geometry.Colors},
			{Name: "normal", Stream: geometry.Normals},
		},
		Pipeline:  render.Lit,
		Transform: tr,
		Animators: []gfx.Animator{
			gfx.NewOrbit(camera, ColorCubeStep/2),
			gfx.NewSpin(ColorCubeStep, gfx.AxisX, gfx.AxisY),
		},
		Reproject: func(t *gfx.Transform, aspect float32) {
			camera.SetRatio(aspect)
			t.Projection = camera.Projection()
		},
	}
}

// TexturedCube is a textured, lit cube spinning about X and Y.
func TexturedCube(aspect float32) render.SceneConfig {
	tr := gfx.NewTransform()
	tr.Translate(mgl32.Vec3{0.3, 0, -1})
	tr.Scale(mgl32.Vec3{0.3, 0.3, 0.3})
	tr.Projection = texturedCubeProjection(aspect)

	return render.SceneConfig{
		Name:           "texcube",
		VertexShader:   texturedVert,
		FragmentShader: texturedFrag,
		Mesh:           geometry.TexturedCube(),
		Attributes: []render.Attribute{
			{Name: "position", Stream: geometry.Positions},
			{Name: "UV", Stream: geometry.UVs},
			{Name: "normal", Stream: geometry.Normals},
		},
		Pipeline:  render.Lit,
		Transform: tr,
		Animators: []gfx.Animator{
			gfx.NewSpin(TexturedCubeStep, gfx.AxisX, gfx.AxisY),
		},
		Sampler: TextureSampler,
		Reproject: func(t *gfx.Transform, aspect float32) {
			t.Projection = texturedCubeProjection(aspect)
		},
	}
}

func texturedCubeProjection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(math32.Pi/2, aspect, 1e-4, 1e4)
}
