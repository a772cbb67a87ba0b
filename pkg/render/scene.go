package render

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/go-webgl-demos/pkg/geometry"
	"github.com/mgnsk/go-webgl-demos/pkg/gfx"
)

// Uniform names shared by the demo shaders.
const (
	UniformMatrix       = "matrix"
	UniformNormalMatrix = "normalMatrix"
)

// Pipeline selects which matrices are uploaded each frame.
type Pipeline int

// Pipelines.
const (
	// Flat uploads the model matrix as "matrix".
	Flat Pipeline = iota
	// Lit uploads projection × view × model as "matrix" and the inverse
	// transpose of view × model as "normalMatrix".
	Lit
)

// Attribute binds a mesh stream to a shader attribute.
type Attribute struct {
	Name   string
	Stream geometry.Stream
}

// SceneConfig describes a scene.
type SceneConfig struct {
	Name           string
	VertexShader   string
	FragmentShader string
	Mesh           geometry.Mesh
	Attributes     []Attribute
	Pipeline       Pipeline
	// Transform is the initial transform state. Identity when nil.
	Transform *gfx.Transform
	// Animators advance the transform each frame, in order.
	Animators []gfx.Animator
	// Sampler is the sampler uniform name of a textured scene.
	Sampler string
	// Reproject updates the projection for a new viewport aspect ratio.
	// Scenes without one ignore SetAspect.
	Reproject func(t *gfx.Transform, aspect float32)
}

type options struct {
	clearColor    mgl32.Vec4
	width, height int
	textureURL    string
	textureImage  Image
	loader        ImageLoader
}

// Option configures a scene.
type Option func(*options)

// WithClearColor sets the color the canvas is cleared to every frame.
func WithClearColor(c mgl32.Vec4) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithViewport sets the viewport size.
func WithViewport(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithTexture loads the texture of a textured scene from url
// using the image loader. A placeholder is shown until it loads.
func WithTexture(url string) Option {
	return func(o *options) {
		o.textureURL = url
	}
}

// WithTextureImage sets the texture image of a textured scene.
func WithTextureImage(img Image) Option {
	return func(o *options) {
		o.textureImage = img
	}
}

// WithImageLoader sets the loader used by WithTexture.
func WithImageLoader(l ImageLoader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// Scene owns the backend resources and transform state of one demo.
type Scene struct {
	name        string
	backend     Backend
	program     Program
	pipeline    Pipeline
	vertexCount int
	transform   *gfx.Transform
	animators   []gfx.Animator
	reproject   func(*gfx.Transform, float32)

	matrix       Uniform
	normalMatrix Uniform
	texture      Texture

	frames uint64
}

// NewScene creates the scene resources on the backend.
func NewScene(b Backend, cfg SceneConfig, opts ...Option) (*Scene, error) {
	o := options{
		clearColor: mgl32.Vec4{0.5, 0.5, 0.5, 0.9},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.width < 0 || o.height < 0 {
		return nil, errorx.IllegalArgument.New("invalid viewport %dx%d", o.width, o.height)
	}

	if o.textureURL != "" && o.loader == nil {
		return nil, errorx.IllegalArgument.New("texture %q requires an image loader", o.textureURL)
	}

	if err := cfg.Mesh.Validate(); err != nil {
		return nil, InvalidGeometry.Wrap(err, "scene %q", cfg.Name)
	}

	program, err := BuildProgram(b, cfg.VertexShader, cfg.FragmentShader)
	if err != nil {
		return nil, errorx.Decorate(err, "scene %q", cfg.Name)
	}

	s := &Scene{
		name:        cfg.Name,
		backend:     b,
		program:     program,
		pipeline:    cfg.Pipeline,
		vertexCount: cfg.Mesh.VertexCount(),
		transform:   cfg.Transform,
		animators:   cfg.Animators,
		reproject:   cfg.Reproject,
	}
	if s.transform == nil {
		s.transform = gfx.NewTransform()
	}

	if err := s.bindAttributes(cfg); err != nil {
		return nil, err
	}

	b.UseProgram(program)

	if s.matrix, err = LookupUniform(b, program, UniformMatrix); err != nil {
		return nil, errorx.Decorate(err, "scene %q", cfg.Name)
	}

	if cfg.Pipeline == Lit {
		if s.normalMatrix, err = LookupUniform(b, program, UniformNormalMatrix); err != nil {
			return nil, errorx.Decorate(err, "scene %q", cfg.Name)
		}
	}

	if cfg.Sampler != "" {
		if err := s.initTexture(cfg.Sampler, o); err != nil {
			return nil, errorx.Decorate(err, "scene %q", cfg.Name)
		}
	}

	b.EnableDepthTest()
	b.ClearColor(o.clearColor)
	if o.width > 0 && o.height > 0 {
		b.Viewport(0, 0, o.width, o.height)
	}

	s.transform.Update()

	if err := b.Err(); err != nil {
		return nil, BackendFailure.Wrap(err, "scene %q setup", cfg.Name)
	}

	Logger().Debug("scene created", "scene", cfg.Name, "vertices", s.vertexCount)

	return s, nil
}

func (s *Scene) bindAttributes(cfg SceneConfig) error {
	for _, attr := range cfg.Attributes {
		data := cfg.Mesh.Stream(attr.Stream)
		if len(data) == 0 {
			return InvalidGeometry.New("scene %q: attribute %q: mesh has no %s", cfg.Name, attr.Name, attr.Stream)
		}

		buf, err := s.backend.CreateBuffer(data)
		if err != nil {
			return errorx.Decorate(err, "scene %q: attribute %q", cfg.Name, attr.Name)
		}

		loc, err := LookupAttrib(s.backend, s.program, attr.Name)
		if err != nil {
			return errorx.Decorate(err, "scene %q", cfg.Name)
		}

		s.backend.VertexAttrib(loc, buf, attr.Stream.Size())
	}
	return nil
}

func (s *Scene) initTexture(sampler string, o options) error {
	u, err := LookupUniform(s.backend, s.program, sampler)
	if err != nil {
		return err
	}

	tex, err := s.backend.CreateTexture()
	if err != nil {
		return err
	}
	s.texture = tex

	s.backend.ActiveTexture(0)
	s.backend.BindTexture(tex)
	s.backend.Uniform1i(u, 0)

	img := o.textureImage
	if img == nil {
		img = Checkerboard(64, color.RGBA{R: 0xb0, G: 0x80, B: 0x40, A: 0xff}, color.RGBA{R: 0x60, G: 0x40, B: 0x20, A: 0xff})
	}
	if err := UploadTexture(s.backend, tex, img); err != nil {
		return err
	}

	if o.textureURL != "" {
		url := o.textureURL
		o.loader.LoadImage(url, func(img Image, err error) {
			if err != nil {
				Logger().Warn("error loading texture", "url", url, "error", err)
				return
			}
			if err := UploadTexture(s.backend, tex, img); err != nil {
				Logger().Warn("error uploading texture", "url", url, "error", err)
			}
		})
	}

	return nil
}

// Frame advances the animators, uploads the matrices and draws the mesh.
func (s *Scene) Frame() error {
	for _, a := range s.animators {
		a.Advance(s.transform)
	}
	s.transform.Update()

	switch s.pipeline {
	case Flat:
		s.backend.UniformMatrix4fv(s.matrix, s.transform.Model)
	case Lit:
		s.backend.UniformMatrix4fv(s.matrix, s.transform.MVP)
		s.backend.UniformMatrix4fv(s.normalMatrix, s.transform.Normal)
	}

	s.backend.Clear()
	s.backend.DrawTriangles(0, s.vertexCount)

	if err := s.backend.Err(); err != nil {
		return BackendFailure.Wrap(err, "scene %q: frame %d", s.name, s.frames)
	}
	s.frames++

	return nil
}

// SetAspect reprojects the scene for a viewport of the given aspect ratio.
// It takes effect on the next frame.
func (s *Scene) SetAspect(aspect float32) error {
	if !(aspect > 0) || math32.IsInf(aspect, 0) {
		return errorx.IllegalArgument.New("scene %q: invalid aspect ratio %v", s.name, aspect)
	}
	if s.reproject == nil {
		return nil
	}

	s.reproject(s.transform, aspect)
	s.transform.Update()

	Logger().Debug("scene reprojected", "scene", s.name, "aspect", aspect)

	return nil
}

// Name returns the scene name.
func (s *Scene) Name() string {
	return s.name
}

// Transform returns the transform state of the scene.
func (s *Scene) Transform() *gfx.Transform {
	return s.transform
}

// VertexCount returns the number of vertices drawn each frame.
func (s *Scene) VertexCount() int {
	return s.vertexCount
}

// Frames returns the number of frames drawn.
func (s *Scene) Frames() uint64 {
	return s.frames
}
