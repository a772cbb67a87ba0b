// Package render drives per-frame transform updates and draw calls
// against an abstract graphics backend.
package render

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// ShaderKind is the pipeline stage of a shader.
type ShaderKind int

// Shader kinds.
const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	if k == VertexShader {
		return "vertex"
	}
	return "fragment"
}

// TextureParam is a texture parameter name.
type TextureParam int

// Texture parameters.
const (
	TextureWrapS TextureParam = iota
	TextureWrapT
	TextureMagFilter
	TextureMinFilter
)

// TextureValue is a texture parameter value.
type TextureValue int

// Texture parameter values.
const (
	ClampToEdge TextureValue = iota
	Linear
)

// Opaque backend resource handles.
type (
	Buffer  interface{}
	Shader  interface{}
	Program interface{}
	Texture interface{}
	Uniform interface{}
)

// Attrib is a vertex attribute location. Negative values mean not found.
type Attrib int

// Image is a texture source. Backends accept image.Image values
// and may accept their own native image types.
type Image interface {
	Bounds() image.Rectangle
}

// Backend is the graphics API capability set used by a scene.
//
// Calls that create resources return an error carrying the backend
// diagnostic. Lookups return the backend's raw result; the caller checks them.
// Per-frame calls do not return errors; the backend error flag is read with Err.
type Backend interface {
	// CreateBuffer creates a vertex buffer and uploads data into it.
	CreateBuffer(data []float32) (Buffer, error)
	// CreateShader creates and compiles a shader.
	CreateShader(kind ShaderKind, source string) (Shader, error)
	// CreateProgram creates a program from compiled shaders and links it.
	CreateProgram(vs, fs Shader) (Program, error)
	UseProgram(p Program)

	// AttribLocation returns the location of an attribute or -1.
	AttribLocation(p Program, name string) Attrib
	// VertexAttrib enables the attribute and points it at buf with size
	// float components per vertex.
	VertexAttrib(loc Attrib, buf Buffer, size int)
	// UniformLocation returns the location of a uniform and whether it exists.
	UniformLocation(p Program, name string) (Uniform, bool)
	UniformMatrix4fv(u Uniform, m mgl32.Mat4)
	Uniform1i(u Uniform, v int)

	CreateTexture() (Texture, error)
	ActiveTexture(unit int)
	BindTexture(t Texture)
	// TexImage2D uploads an RGBA image into the bound texture.
	TexImage2D(img Image) error
	GenerateMipmap()
	TexParameter(param TextureParam, value TextureValue)

	EnableDepthTest()
	Viewport(x, y, width, height int)
	ClearColor(c mgl32.Vec4)
	Clear()
	// DrawTriangles draws count vertices starting at first as a triangle list.
	DrawTriangles(first, count int)

	// Err returns the pending backend error, if any, and resets it.
	Err() error
}
