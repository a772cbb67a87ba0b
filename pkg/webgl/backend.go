//go:build js && wasm
// +build js,wasm

package webgl

import (
	"fmt"
	"image"
	"syscall/js"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/go-webgl-demos/pkg/array"
	"github.com/mgnsk/go-webgl-demos/pkg/render"
)

var errorNames = map[int]string{
	0x0500: "INVALID_ENUM",
	0x0501: "INVALID_VALUE",
	0x0502: "INVALID_OPERATION",
	0x0505: "OUT_OF_MEMORY",
	0x0506: "INVALID_FRAMEBUFFER_OPERATION",
	0x9242: "CONTEXT_LOST_WEBGL",
}

// Backend implements render.Backend on a WebGL context.
// Resource handles are the js.Value objects returned by WebGL.
type Backend struct {
	gl *GL

	// Scratch storage for matrix uploads.
	mat      mgl32.Mat4
	matArray array.TypedArray
	matBytes js.Value
}

var _ render.Backend = (*Backend)(nil)

// NewBackend creates a backend drawing into gl.
func NewBackend(gl *GL) *Backend {
	b := &Backend{gl: gl}
	b.matArray = array.NewFromSlice(b.mat[:])
	b.matBytes = array.NewUint8Array(b.matArray.ArrayBuffer()).Value
	return b
}

func (b *Backend) call(method string, args ...interface{}) js.Value {
	return b.gl.ctx.Call(method, args...)
}

func (b *Backend) value(h interface{}) js.Value {
	v, ok := h.(js.Value)
	if !ok {
		panic(fmt.Errorf("webgl: invalid handle %T", h))
	}
	return v
}

// CreateBuffer implements render.Backend.
func (b *Backend) CreateBuffer(data []float32) (render.Buffer, error) {
	t := b.gl.Types

	buffer := b.call("createBuffer")
	if !buffer.Truthy() {
		return nil, render.BackendFailure.New("createBuffer failed")
	}

	b.call("bindBuffer", t.ArrayBuffer.JSValue(), buffer)
	b.call("bufferData", t.ArrayBuffer.JSValue(), array.NewFromSlice(data).JSValue(), t.StaticDraw.JSValue())
	b.call("bindBuffer", t.ArrayBuffer.JSValue(), nil)

	return buffer, nil
}

// CreateShader implements render.Backend.
func (b *Backend) CreateShader(kind render.ShaderKind, source string) (render.Shader, error) {
	typ := b.gl.Types.VertexShader
	if kind == render.FragmentShader {
		typ = b.gl.Types.FragmentShader
	}

	shader := b.call("createShader", typ.JSValue())
	if !shader.Truthy() {
		return nil, render.ShaderCompile.New("%s shader: createShader failed", kind)
	}

	b.call("shaderSource", shader, source)
	b.call("compileShader", shader)

	if !b.call("getShaderParameter", shader, b.gl.Types.CompileStatus.JSValue()).Bool() {
		log := b.call("getShaderInfoLog", shader).String()
		b.call("deleteShader", shader)
		return nil, render.ShaderCompile.New("%s shader: %s", kind, log)
	}

	return shader, nil
}

// CreateProgram implements render.Backend.
func (b *Backend) CreateProgram(vs, fs render.Shader) (render.Program, error) {
	program := b.call("createProgram")
	if !program.Truthy() {
		return nil, render.ProgramLink.New("createProgram failed")
	}

	b.call("attachShader", program, b.value(vs))
	b.call("attachShader", program, b.value(fs))
	b.call("linkProgram", program)

	if !b.call("getProgramParameter", program, b.gl.Types.LinkStatus.JSValue()).Bool() {
		log := b.call("getProgramInfoLog", program).String()
		b.call("deleteProgram", program)
		return nil, render.ProgramLink.New("%s", log)
	}

	return program, nil
}

// UseProgram implements render.Backend.
func (b *Backend) UseProgram(p render.Program) {
	b.call("useProgram", b.value(p))
}

// AttribLocation implements render.Backend.
func (b *Backend) AttribLocation(p render.Program, name string) render.Attrib {
	return render.Attrib(b.call("getAttribLocation", b.value(p), name).Int())
}

// VertexAttrib implements render.Backend.
func (b *Backend) VertexAttrib(loc render.Attrib, buf render.Buffer, size int) {
	t := b.gl.Types
	b.call("bindBuffer", t.ArrayBuffer.JSValue(), b.value(buf))
	b.call("vertexAttribPointer", int(loc), size, t.Float.JSValue(), false, 0, 0)
	b.call("enableVertexAttribArray", int(loc))
}

// UniformLocation implements render.Backend.
func (b *Backend) UniformLocation(p render.Program, name string) (render.Uniform, bool) {
	u := b.call("getUniformLocation", b.value(p), name)
	if u.IsNull() || u.IsUndefined() {
		return nil, false
	}
	return u, true
}

// UniformMatrix4fv implements render.Backend.
func (b *Backend) UniformMatrix4fv(u render.Uniform, m mgl32.Mat4) {
	b.mat = m
	js.CopyBytesToJS(b.matBytes, array.Encode(b.mat[:]))
	b.call("uniformMatrix4fv", b.value(u), false, b.matArray.JSValue())
}

// Uniform1i implements render.Backend.
func (b *Backend) Uniform1i(u render.Uniform, v int) {
	b.call("uniform1i", b.value(u), v)
}

// CreateTexture implements render.Backend.
func (b *Backend) CreateTexture() (render.Texture, error) {
	tex := b.call("createTexture")
	if !tex.Truthy() {
		return nil, render.BackendFailure.New("createTexture failed")
	}
	return tex, nil
}

// ActiveTexture implements render.Backend.
func (b *Backend) ActiveTexture(unit int) {
	b.call("activeTexture", int(b.gl.Types.Texture0)+unit)
}

// BindTexture implements render.Backend.
func (b *Backend) BindTexture(t render.Texture) {
	b.call("bindTexture", b.gl.Types.Texture2D.JSValue(), b.value(t))
}

// TexImage2D implements render.Backend. It accepts *HTMLImage elements
// and any image.Image, which is uploaded as RGBA pixels.
func (b *Backend) TexImage2D(img render.Image) error {
	t := b.gl.Types

	switch img := img.(type) {
	case *HTMLImage:
		if img.Bounds().Empty() {
			return render.BackendFailure.New("texImage2D: image %q is not loaded", img.Get("src").String())
		}
		b.call("texImage2D", t.Texture2D.JSValue(), 0, t.RGBA.JSValue(), t.RGBA.JSValue(), t.UnsignedByte.JSValue(), img.Value)

	case image.Image:
		size := img.Bounds().Size()
		if size.X == 0 || size.Y == 0 {
			return render.BackendFailure.New("texImage2D: empty image")
		}
		pix := render.ToRGBA(img).Pix
		b.call("texImage2D", t.Texture2D.JSValue(), 0, t.RGBA.JSValue(), size.X, size.Y, 0, t.RGBA.JSValue(), t.UnsignedByte.JSValue(), array.NewFromSlice(pix).JSValue())

	default:
		return errorx.IllegalArgument.New("texImage2D: unsupported image type %T", img)
	}

	return nil
}

// GenerateMipmap implements render.Backend.
func (b *Backend) GenerateMipmap() {
	b.call("generateMipmap", b.gl.Types.Texture2D.JSValue())
}

// TexParameter implements render.Backend.
func (b *Backend) TexParameter(param render.TextureParam, value render.TextureValue) {
	t := b.gl.Types

	var p GLType
	switch param {
	case render.TextureWrapS:
		p = t.TextureWrapS
	case render.TextureWrapT:
		p = t.TextureWrapT
	case render.TextureMagFilter:
		p = t.TextureMagFilter
	case render.TextureMinFilter:
		p = t.TextureMinFilter
	default:
		panic(fmt.Errorf("webgl: invalid texture parameter %d", param))
	}

	var v GLType
	switch value {
	case render.ClampToEdge:
		v = t.ClampToEdge
	case render.Linear:
		v = t.Linear
	default:
		panic(fmt.Errorf("webgl: invalid texture parameter value %d", value))
	}

	b.call("texParameteri", t.Texture2D.JSValue(), p.JSValue(), v.JSValue())
}

// EnableDepthTest implements render.Backend.
func (b *Backend) EnableDepthTest() {
	b.call("enable", b.gl.Types.DepthTest.JSValue())
	b.call("depthFunc", b.gl.Types.LEqual.JSValue())
	b.call("clearDepth", 1.0)
}

// Viewport implements render.Backend.
func (b *Backend) Viewport(x, y, width, height int) {
	b.call("viewport", x, y, width, height)
}

// ClearColor implements render.Backend.
func (b *Backend) ClearColor(c mgl32.Vec4) {
	b.call("clearColor", c[0], c[1], c[2], c[3])
}

// Clear implements render.Backend.
func (b *Backend) Clear() {
	b.call("clear", int(b.gl.Types.ColorBufferBit|b.gl.Types.DepthBufferBit))
}

// DrawTriangles implements render.Backend.
func (b *Backend) DrawTriangles(first, count int) {
	b.call("drawArrays", b.gl.Types.Triangles.JSValue(), first, count)
}

// Err implements render.Backend.
func (b *Backend) Err() error {
	code := b.call("getError").Int()
	if GLType(code) == b.gl.Types.NoError {
		return nil
	}

	name, ok := errorNames[code]
	if !ok {
		name = "UNKNOWN"
	}

	return render.BackendFailure.New("WebGL error 0x%04x %s", code, name)
}
