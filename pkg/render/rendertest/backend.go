// Package rendertest provides an in-memory render backend, scheduler and
// image loader for tests.
package rendertest

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
	"github.com/mgnsk/go-webgl-demos/pkg/render"
)

// ID is a handle to an object created by the Backend.
type ID uint32

type objectKind int

const (
	kindBuffer objectKind = iota
	kindShader
	kindProgram
	kindTexture
)

type object struct {
	kind   objectKind
	data   []float32
	source string

	// Program declarations.
	attribs  []string
	uniforms []string

	// Texture state.
	image     render.Image
	mipmapped bool
	params    map[render.TextureParam]render.TextureValue
}

// UniformLoc is the uniform location type returned by the Backend.
type UniformLoc struct {
	Program ID
	Name    string
}

// AttribBinding is the buffer bound to an enabled vertex attribute.
type AttribBinding struct {
	Buffer ID
	Size   int
}

// Draw is a recorded draw call.
type Draw struct {
	First int
	Count int
}

var (
	attribRe  = regexp.MustCompile(`(?m)^\s*attribute\s+\w+\s+(\w+)\s*;`)
	uniformRe = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
)

// Backend is a recording render.Backend.
//
// Shaders fail to compile when empty or when they contain an #error
// directive. Attribute and uniform locations are resolved from the
// declarations in the linked shader sources.
type Backend struct {
	// Calls is the ordered list of backend method names called.
	Calls []string
	// Draws holds every draw call.
	Draws []Draw
	// Matrices holds the last matrix uploaded per uniform name.
	Matrices map[string]mgl32.Mat4
	// Ints holds the last int uploaded per uniform name.
	Ints map[string]int
	// Attribs holds the enabled vertex attributes.
	Attribs map[render.Attrib]AttribBinding

	DepthTest    bool
	ClearRGBA    mgl32.Vec4
	ViewportRect [4]int
	ActiveUnit   int

	// FailLink makes CreateProgram fail with this info log.
	FailLink string

	objects *intmap.Map[ID, *object]
	nextID  ID
	bound   ID
	program ID
	err     error
}

// NewBackend creates a recording backend.
func NewBackend() *Backend {
	return &Backend{
		Matrices: make(map[string]mgl32.Mat4),
		Ints:     make(map[string]int),
		Attribs:  make(map[render.Attrib]AttribBinding),
		objects:  intmap.New[ID, *object](16),
	}
}

// SetErr sets the error returned by the next Err call.
func (b *Backend) SetErr(err error) {
	b.err = err
}

// Dump returns a readable dump of the recorded calls.
func (b *Backend) Dump() string {
	return spew.Sdump(b.Calls)
}

// Buffer returns the data uploaded into a buffer.
func (b *Backend) Buffer(id ID) []float32 {
	return b.get(id, kindBuffer).data
}

// TextureImage returns the image last uploaded into a texture.
func (b *Backend) TextureImage(id ID) render.Image {
	return b.get(id, kindTexture).image
}

// Mipmapped reports whether mipmaps were generated for a texture.
func (b *Backend) Mipmapped(id ID) bool {
	return b.get(id, kindTexture).mipmapped
}

// TextureParams returns the parameters set on a texture.
func (b *Backend) TextureParams(id ID) map[render.TextureParam]render.TextureValue {
	return b.get(id, kindTexture).params
}

// Textures returns the IDs of all textures.
func (b *Backend) Textures() []ID {
	var ids []ID
	for id := ID(1); id <= b.nextID; id++ {
		if o, ok := b.objects.Get(id); ok && o.kind == kindTexture {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns how many times method was called.
func (b *Backend) Count(method string) int {
	n := 0
	for _, c := range b.Calls {
		if c == method {
			n++
		}
	}
	return n
}

// Reset clears the recorded calls and draws.
func (b *Backend) Reset() {
	b.Calls = nil
	b.Draws = nil
}

func (b *Backend) record(method string) {
	b.Calls = append(b.Calls, method)
}

func (b *Backend) create(o *object) ID {
	b.nextID++
	b.objects.Put(b.nextID, o)
	return b.nextID
}

func (b *Backend) get(h interface{}, kind objectKind) *object {
	id, ok := h.(ID)
	if !ok {
		panic(fmt.Errorf("rendertest: invalid handle %#v", h))
	}
	o, ok := b.objects.Get(id)
	if !ok || o.kind != kind {
		panic(fmt.Errorf("rendertest: no object %d of kind %d", id, kind))
	}
	return o
}

// CreateBuffer implements render.Backend.
func (b *Backend) CreateBuffer(data []float32) (render.Buffer, error) {
	b.record("CreateBuffer")
	return b.create(&object{
		kind: kindBuffer,
		data: append([]float32(nil), data...),
	}), nil
}

// CreateShader implements render.Backend.
func (b *Backend) CreateShader(kind render.ShaderKind, source string) (render.Shader, error) {
	b.record("CreateShader")
	if strings.TrimSpace(source) == "" {
		return nil, render.ShaderCompile.New("%s shader: empty source", kind)
	}
	if i := strings.Index(source, "#error"); i >= 0 {
		msg := strings.TrimSpace(strings.SplitN(source[i+len("#error"):], "\n", 2)[0])
		return nil, render.ShaderCompile.New("%s shader: ERROR: 0:1: '#error' : %s", kind, msg)
	}
	return b.create(&object{
		kind:   kindShader,
		source: source,
	}), nil
}

// CreateProgram implements render.Backend.
func (b *Backend) CreateProgram(vs, fs render.Shader) (render.Program, error) {
	b.record("CreateProgram")
	if b.FailLink != "" {
		return nil, render.ProgramLink.New("%s", b.FailLink)
	}

	p := &object{kind: kindProgram}
	for _, sh := range []render.Shader{vs, fs} {
		src := b.get(sh, kindShader).source
		for _, m := range attribRe.FindAllStringSubmatch(src, -1) {
			p.attribs = append(p.attribs, m[1])
		}
		for _, m := range uniformRe.FindAllStringSubmatch(src, -1) {
			p.uniforms = append(p.uniforms, m[1])
		}
	}

	return b.create(p), nil
}

// UseProgram implements render.Backend.
func (b *Backend) UseProgram(p render.Program) {
	b.record("UseProgram")
	b.get(p, kindProgram)
	b.program = p.(ID)
}

// AttribLocation implements render.Backend.
func (b *Backend) AttribLocation(p render.Program, name string) render.Attrib {
	b.record("AttribLocation")
	for i, a := range b.get(p, kindProgram).attribs {
		if a == name {
			return render.Attrib(i)
		}
	}
	return -1
}

// VertexAttrib implements render.Backend.
func (b *Backend) VertexAttrib(loc render.Attrib, buf render.Buffer, size int) {
	b.record("VertexAttrib")
	b.get(buf, kindBuffer)
	b.Attribs[loc] = AttribBinding{
		Buffer: buf.(ID),
		Size:   size,
	}
}

// UniformLocation implements render.Backend.
func (b *Backend) UniformLocation(p render.Program, name string) (render.Uniform, bool) {
	b.record("UniformLocation")
	for _, u := range b.get(p, kindProgram).uniforms {
		if u == name {
			return UniformLoc{Program: p.(ID), Name: name}, true
		}
	}
	return nil, false
}

func (b *Backend) uniform(u render.Uniform) UniformLoc {
	loc, ok := u.(UniformLoc)
	if !ok {
		panic(fmt.Errorf("rendertest: invalid uniform %#v", u))
	}
	if loc.Program != b.program {
		panic(errors.New("rendertest: uniform set on a program that is not in use"))
	}
	return loc
}

// UniformMatrix4fv implements render.Backend.
func (b *Backend) UniformMatrix4fv(u render.Uniform, m mgl32.Mat4) {
	b.record("UniformMatrix4fv")
	b.Matrices[b.uniform(u).Name] = m
}

// Uniform1i implements render.Backend.
func (b *Backend) Uniform1i(u render.Uniform, v int) {
	b.record("Uniform1i")
	b.Ints[b.uniform(u).Name] = v
}

// CreateTexture implements render.Backend.
func (b *Backend) CreateTexture() (render.Texture, error) {
	b.record("CreateTexture")
	return b.create(&object{
		kind:   kindTexture,
		params: make(map[render.TextureParam]render.TextureValue),
	}), nil
}

// ActiveTexture implements render.Backend.
func (b *Backend) ActiveTexture(unit int) {
	b.record("ActiveTexture")
	b.ActiveUnit = unit
}

// BindTexture implements render.Backend.
func (b *Backend) BindTexture(t render.Texture) {
	b.record("BindTexture")
	b.get(t, kindTexture)
	b.bound = t.(ID)
}

func (b *Backend) boundTexture() *object {
	if b.bound == 0 {
		panic(errors.New("rendertest: no texture bound"))
	}
	return b.get(b.bound, kindTexture)
}

// TexImage2D implements render.Backend.
func (b *Backend) TexImage2D(img render.Image) error {
	b.record("TexImage2D")
	if img.Bounds().Empty() {
		return render.BackendFailure.New("texImage2D: empty image")
	}
	t := b.boundTexture()
	t.image = img
	t.mipmapped = false
	return nil
}

// GenerateMipmap implements render.Backend.
func (b *Backend) GenerateMipmap() {
	b.record("GenerateMipmap")
	b.boundTexture().mipmapped = true
}

// TexParameter implements render.Backend.
func (b *Backend) TexParameter(param render.TextureParam, value render.TextureValue) {
	b.record("TexParameter")
	b.boundTexture().params[param] = value
}

// EnableDepthTest implements render.Backend.
func (b *Backend) EnableDepthTest() {
	b.record("EnableDepthTest")
	b.DepthTest = true
}

// Viewport implements render.Backend.
func (b *Backend) Viewport(x, y, width, height int) {
	b.record("Viewport")
	b.ViewportRect = [4]int{x, y, width, height}
}

// ClearColor implements render.Backend.
func (b *Backend) ClearColor(c mgl32.Vec4) {
	b.record("ClearColor")
	b.ClearRGBA = c
}

// Clear implements render.Backend.
func (b *Backend) Clear() {
	b.record("Clear")
}

// DrawTriangles implements render.Backend.
func (b *Backend) DrawTriangles(first, count int) {
	b.record("DrawTriangles")
	b.Draws = append(b.Draws, Draw{First: first, Count: count})
}

// Err implements render.Backend.
func (b *Backend) Err() error {
	b.record("Err")
	err := b.err
	b.err = nil
	return err
}
