package render_test

import (
	"context"
	"errors"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/go-webgl-demos/pkg/geometry"
	"github.com/mgnsk/go-webgl-demos/pkg/gfx"
	"github.com/mgnsk/go-webgl-demos/pkg/render"
	"github.com/mgnsk/go-webgl-demos/pkg/render/rendertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const flatVert = `
precision mediump float;
attribute vec3 position;
attribute vec3 color;
varying vec3 vColor;
uniform mat4 matrix;

void main() {
    vColor = color;
    gl_Position = matrix * vec4(position, 1);
}`

const flatFrag = `
precision mediump float;
varying vec3 vColor;

void main() {
    gl_FragColor = vec4(vColor, 1);
}`

const litVert = `
precision mediump float;
attribute vec3 position;
attribute vec2 UV;
attribute vec3 normal;
varying vec2 vUV;
varying float vBrightness;
uniform mat4 matrix;
uniform mat4 normalMatrix;

void main() {
    vec3 worldNormal = (normalMatrix * vec4(normal, 1.0)).xyz;
    vBrightness = max(0.0, dot(worldNormal, vec3(0, 0, 1))) + 0.4;
    vUV = UV;
    gl_Position = matrix * vec4(position, 1);
}`

const litFrag = `
precision mediump float;
varying vec2 vUV;
varying float vBrightness;
uniform sampler2D textureID;

void main() {
    vec4 texel = texture2D(textureID, vUV);
    texel.xyz *= vBrightness;
    gl_FragColor = texel;
}`

func flatConfig() render.SceneConfig {
	tr := gfx.NewTransform()
	tr.Translate(mgl32.Vec3{0.5, 0.3, 0})
	tr.Scale(mgl32.Vec3{0.5, 0.5, 0.5})

	return render.SceneConfig{
		Name:           "flat",
		VertexShader:   flatVert,
		FragmentShader: flatFrag,
		Mesh:           geometry.Triangle(),
		Attributes: []render.Attribute{
			{Name: "position", Stream: geometry.Positions},
			{Name: "color", Stream: geometry.Colors},
		},
		Pipeline:  render.Flat,
		Transform: tr,
		Animators: []gfx.Animator{gfx.NewSpin(0.1, gfx.AxisY)},
	}
}

func litConfig() render.SceneConfig {
	tr := gfx.NewTransform()
	tr.Projection = mgl32.Perspective(mgl32.DegToRad(90), 1.5, 1e-4, 1e4)
	tr.View = mgl32.Translate3D(0, 0, -2)
	tr.Translate(mgl32.Vec3{0.3, 0, -1})
	tr.Scale(mgl32.Vec3{0.3, 0.3, 0.3})

	return render.SceneConfig{
		Name:           "lit",
		VertexShader:   litVert,
		FragmentShader: litFrag,
		Mesh:           geometry.TexturedCube(),
		Attributes: []render.Attribute{
			{Name: "position", Stream: geometry.Positions},
			{Name: "UV", Stream: geometry.UVs},
			{Name: "normal", Stream: geometry.Normals},
		},
		Pipeline:  render.Lit,
		Transform: tr,
		Animators: []gfx.Animator{gfx.NewSpin(0.05, gfx.AxisX, gfx.AxisY)},
		Sampler:   "textureID",
	}
}

var _ = Describe("Scene", func() {
	var backend *rendertest.Backend

	BeforeEach(func() {
		backend = rendertest.NewBackend()
	})

	Context("flat pipeline", func() {
		var scene *render.Scene

		BeforeEach(func() {
			var err error
			scene, err = render.NewScene(backend, flatConfig(), render.WithViewport(640, 480))
			Expect(err).NotTo(HaveOccurred())
		})

		It("uploads the vertex streams", func() {
			Expect(backend.Attribs).To(HaveLen(2))
			pos := backend.Attribs[0]
			Expect(pos.Size).To(Equal(3))
			Expect(backend.Buffer(pos.Buffer)).To(Equal(geometry.Triangle().Positions))
			col := backend.Attribs[1]
			Expect(backend.Buffer(col.Buffer)).To(Equal(geometry.Triangle().Colors))
		})

		It("sets up the backend state", func() {
			Expect(backend.DepthTest).To(BeTrue())
			Expect(backend.ViewportRect).To(Equal([4]int{0, 0, 640, 480}))
			Expect(backend.ClearRGBA).To(Equal(mgl32.Vec4{0.5, 0.5, 0.5, 0.9}))
			Expect(scene.VertexCount()).To(Equal(3))
			Expect(scene.Name()).To(Equal("flat"))
		})

		It("uploads the model matrix and draws in order", func() {
			backend.Reset()
			Expect(scene.Frame()).To(Succeed())

			Expect(backend.Calls).To(Equal([]string{"UniformMatrix4fv", "Clear", "DrawTriangles", "Err"}), backend.Dump())
			Expect(backend.Draws).To(Equal([]rendertest.Draw{{First: 0, Count: 3}}))
			Expect(backend.Matrices[render.UniformMatrix]).To(Equal(scene.Transform().Model))

			expected := mgl32.Translate3D(0.5, 0.3, 0).
				Mul4(mgl32.Scale3D(0.5, 0.5, 0.5)).
				Mul4(mgl32.HomogRotate3DY(0.1))
			Expect(scene.Transform().Model).To(Equal(expected))
			Expect(scene.Frames()).To(BeNumerically("==", 1))
		})

		It("fails the frame on a backend error", func() {
			backend.SetErr(errors.New("CONTEXT_LOST_WEBGL"))
			err := scene.Frame()
			Expect(err).To(HaveOccurred())
			Expect(errorx.IsOfType(err, render.BackendFailure)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("CONTEXT_LOST_WEBGL"))
			Expect(scene.Frames()).To(BeNumerically("==", 0))
		})

		It("runs under a driver", func() {
			sched := &rendertest.Scheduler{}
			driver := render.NewDriver(scene, sched)
			driver.Start(context.Background())
			sched.FireN(9)
			driver.Stop()
			sched.Fire()

			Expect(backend.Draws).To(HaveLen(10))
			Expect(scene.Frames()).To(BeNumerically("==", 10))
			Expect(driver.Err()).To(BeNil())
		})
	})

	Context("lit pipeline", func() {
		var scene *render.Scene

		BeforeEach(func() {
			var err error
			scene, err = render.NewScene(backend, litConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(scene.Frame()).To(Succeed())
		})

		It("uploads projection × view × model", func() {
			tr := scene.Transform()
			Expect(backend.Matrices[render.UniformMatrix]).To(Equal(tr.Projection.Mul4(tr.View.Mul4(tr.Model))))
		})

		It("uploads the normal matrix", func() {
			tr := scene.Transform()
			Expect(backend.Matrices[render.UniformNormalMatrix]).To(Equal(tr.View.Mul4(tr.Model).Inv().Transpose()))
		})

		It("draws all cube vertices", func() {
			Expect(backend.Draws).To(Equal([]rendertest.Draw{{First: 0, Count: 36}}))
		})

		It("binds the sampler to texture unit 0", func() {
			Expect(backend.ActiveUnit).To(Equal(0))
			Expect(backend.Ints["textureID"]).To(Equal(0))
		})

		It("uploads a mipmapped placeholder texture", func() {
			textures := backend.Textures()
			Expect(textures).To(HaveLen(1))
			Expect(backend.TextureImage(textures[0]).Bounds().Size()).To(Equal(image.Pt(64, 64)))
			Expect(backend.Mipmapped(textures[0])).To(BeTrue())
			Expect(backend.TextureParams(textures[0])).To(BeEmpty())
		})
	})

	Context("aspect changes", func() {
		It("uploads a reprojected matrix after SetAspect", func() {
			cfg := litConfig()
			cfg.Reproject = func(t *gfx.Transform, aspect float32) {
				t.Projection = mgl32.Perspective(mgl32.DegToRad(90), aspect, 1e-4, 1e4)
			}
			cfg.Animators = nil

			scene, err := render.NewScene(backend, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(scene.Frame()).To(Succeed())
			before := backend.Matrices[render.UniformMatrix]

			Expect(scene.SetAspect(0.5)).To(Succeed())
			Expect(scene.Frame()).To(Succeed())
			after := backend.Matrices[render.UniformMatrix]

			Expect(after).NotTo(Equal(before))
			tr := scene.Transform()
			Expect(tr.Projection).To(Equal(mgl32.Perspective(mgl32.DegToRad(90), 0.5, 1e-4, 1e4)))
			Expect(after).To(Equal(tr.Projection.Mul4(tr.View.Mul4(tr.Model))))
		})

		It("ignores aspect changes without a reprojection", func() {
			scene, err := render.NewScene(backend, flatConfig())
			Expect(err).NotTo(HaveOccurred())
			model := scene.Transform().Model

			Expect(scene.SetAspect(2)).To(Succeed())
			Expect(scene.Transform().Model).To(Equal(model))
			Expect(scene.Transform().Projection).To(Equal(mgl32.Ident4()))
		})

		It("rejects invalid aspect ratios", func() {
			scene, err := render.NewScene(backend, litConfig())
			Expect(err).NotTo(HaveOccurred())

			for _, aspect := range []float32{0, -1, float32(math.Inf(1)), float32(math.NaN())} {
				err := scene.SetAspect(aspect)
				Expect(errorx.IsOfType(err, errorx.IllegalArgument)).To(BeTrue(), "aspect %v", aspect)
			}
		})
	})

	Context("options", func() {
		It("sets the clear color", func() {
			_, err := render.NewScene(backend, flatConfig(), render.WithClearColor(mgl32.Vec4{0, 0, 0, 1}))
			Expect(err).NotTo(HaveOccurred())
			Expect(backend.ClearRGBA).To(Equal(mgl32.Vec4{0, 0, 0, 1}))
		})

		It("uploads the given texture image instead of the placeholder", func() {
			img := image.NewRGBA(image.Rect(0, 0, 32, 32))
			_, err := render.NewScene(backend, litConfig(), render.WithTextureImage(img))
			Expect(err).NotTo(HaveOccurred())

			textures := backend.Textures()
			Expect(textures).To(HaveLen(1))
			Expect(backend.TextureImage(textures[0])).To(BeIdenticalTo(img))
			Expect(backend.Mipmapped(textures[0])).To(BeTrue())
		})
	})

	Context("texture loading", func() {
		var (
			loader *rendertest.Loader
			tex    rendertest.ID
		)

		BeforeEach(func() {
			loader = &rendertest.Loader{}
			_, err := render.NewScene(backend, litConfig(),
				render.WithImageLoader(loader),
				render.WithTexture("cratetex.png"),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(loader.Pending("cratetex.png")).To(BeTrue())
			tex = backend.Textures()[0]
		})

		It("uploads the loaded image", func() {
			img := image.NewRGBA(image.Rect(0, 0, 256, 128))
			loader.Complete("cratetex.png", img, nil)

			Expect(backend.TextureImage(tex)).To(BeIdenticalTo(img))
			Expect(backend.Mipmapped(tex)).To(BeTrue())
		})

		It("clamps and filters non power of two images", func() {
			loader.Complete("cratetex.png", image.NewRGBA(image.Rect(0, 0, 300, 256)), nil)

			Expect(backend.Mipmapped(tex)).To(BeFalse())
			Expect(backend.TextureParams(tex)).To(Equal(map[render.TextureParam]render.TextureValue{
				render.TextureWrapS:     render.ClampToEdge,
				render.TextureWrapT:     render.ClampToEdge,
				render.TextureMagFilter: render.Linear,
				render.TextureMinFilter: render.Linear,
			}))
		})

		It("keeps the placeholder when loading fails", func() {
			placeholder := backend.TextureImage(tex)
			loader.Complete("cratetex.png", nil, errors.New("404"))

			Expect(backend.TextureImage(tex)).To(BeIdenticalTo(placeholder))
		})
	})

	Context("setup errors", func() {
		expectType := func(cfg render.SceneConfig, typ *errorx.Type, opts ...render.Option) {
			_, err := render.NewScene(backend, cfg, opts...)
			ExpectWithOffset(1, err).To(HaveOccurred())
			ExpectWithOffset(1, errorx.IsOfType(err, typ)).To(BeTrue(), err.Error())
		}

		It("reports shader compile errors with the log", func() {
			cfg := flatConfig()
			cfg.FragmentShader = "#error broken shader\n"
			_, err := render.NewScene(backend, cfg)
			Expect(errorx.IsOfType(err, render.ShaderCompile)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("broken shader"))
			Expect(err.Error()).To(ContainSubstring("fragment"))
		})

		It("reports link errors", func() {
			backend.FailLink = "varyings do not match"
			expectType(flatConfig(), render.ProgramLink)
		})

		It("reports missing attributes", func() {
			cfg := flatConfig()
			cfg.Attributes = append(cfg.Attributes, render.Attribute{Name: "normal", Stream: geometry.Positions})
			expectType(cfg, render.LocationNotFound)
		})

		It("reports missing uniforms", func() {
			cfg := litConfig()
			cfg.Sampler = "diffuse"
			expectType(cfg, render.LocationNotFound)
		})

		It("reports a lit pipeline without a normal matrix", func() {
			cfg := flatConfig()
			cfg.Pipeline = render.Lit
			expectType(cfg, render.LocationNotFound)
		})

		It("reports invalid meshes", func() {
			cfg := flatConfig()
			cfg.Mesh.Colors = cfg.Mesh.Colors[:6]
			expectType(cfg, render.InvalidGeometry)
		})

		It("reports attributes without mesh data", func() {
			cfg := flatConfig()
			cfg.Attributes[1].Stream = geometry.Normals
			expectType(cfg, render.InvalidGeometry)
		})

		It("requires a loader for texture URLs", func() {
			expectType(litConfig(), errorx.IllegalArgument, render.WithTexture("cratetex.png"))
		})

		It("rejects negative viewports", func() {
			expectType(flatConfig(), errorx.IllegalArgument, render.WithViewport(-1, 10))
		})
	})
})
