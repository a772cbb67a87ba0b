//go:build js && wasm
// +build js,wasm

// Package webgl implements the render backend on a browser WebGL context.
package webgl

import (
	"syscall/js"

	"github.com/mgnsk/go-webgl-demos/pkg/render"
)

// GLType is a WebGL enum value.
type GLType int

// JSValue returns the enum as a JS number.
func (t GLType) JSValue() js.Value {
	return js.ValueOf(int(t))
}

// Types holds the WebGL enums used by the backend,
// read from the context at creation.
type Types struct {
	ArrayBuffer GLType
	StaticDraw  GLType
	Float       GLType

	VertexShader   GLType
	FragmentShader GLType
	CompileStatus  GLType
	LinkStatus     GLType

	Texture2D        GLType
	Texture0         GLType
	RGBA             GLType
	UnsignedByte     GLType
	TextureWrapS     GLType
	TextureWrapT     GLType
	TextureMagFilter GLType
	TextureMinFilter GLType
	ClampToEdge      GLType
	Linear           GLType

	DepthTest      GLType
	LEqual         GLType
	ColorBufferBit GLType
	DepthBufferBit GLType
	Triangles      GLType

	NoError                GLType
	ShadingLanguageVersion GLType
}

func newTypes(ctx js.Value) Types {
	get := func(name string) GLType {
		return GLType(ctx.Get(name).Int())
	}

	return Types{
		ArrayBuffer: get("ARRAY_BUFFER"),
		StaticDraw:  get("STATIC_DRAW"),
		Float:       get("FLOAT"),

		VertexShader:   get("VERTEX_SHADER"),
		FragmentShader: get("FRAGMENT_SHADER"),
		CompileStatus:  get("COMPILE_STATUS"),
		LinkStatus:     get("LINK_STATUS"),

		Texture2D:        get("TEXTURE_2D"),
		Texture0:         get("TEXTURE0"),
		RGBA:             get("RGBA"),
		UnsignedByte:     get("UNSIGNED_BYTE"),
		TextureWrapS:     get("TEXTURE_WRAP_S"),
		TextureWrapT:     get("TEXTURE_WRAP_T"),
		TextureMagFilter: get("TEXTURE_MAG_FILTER"),
		TextureMinFilter: get("TEXTURE_MIN_FILTER"),
		ClampToEdge:      get("CLAMP_TO_EDGE"),
		Linear:           get("LINEAR"),

		DepthTest:      get("DEPTH_TEST"),
		LEqual:         get("LEQUAL"),
		ColorBufferBit: get("COLOR_BUFFER_BIT"),
		DepthBufferBit: get("DEPTH_BUFFER_BIT"),
		Triangles:      get("TRIANGLES"),

		NoError:                get("NO_ERROR"),
		ShadingLanguageVersion: get("SHADING_LANGUAGE_VERSION"),
	}
}

// GL is a WebGL rendering context.
type GL struct {
	ctx   js.Value
	Types Types
}

// NewGL acquires a WebGL context from canvas, falling back to
// experimental-webgl on older browsers.
func NewGL(canvas js.Value) (*GL, error) {
	if !canvas.Truthy() {
		return nil, render.ContextUnavailable.New("canvas not found")
	}

	var ctx js.Value
	for _, name := range []string{"webgl", "experimental-webgl"} {
		ctx = canvas.Call("getContext", name)
		if ctx.Truthy() {
			break
		}
		render.Logger().Debug("context type unavailable", "type", name)
	}
	if !ctx.Truthy() {
		return nil, render.ContextUnavailable.New("WebGL not supported")
	}

	gl := &GL{
		ctx:   ctx,
		Types: newTypes(ctx),
	}

	render.Logger().Info("WebGL context created",
		"version", ctx.Call("getParameter", gl.Types.ShadingLanguageVersion.JSValue()).String(),
	)

	return gl, nil
}

// Ctx returns the underlying context.
func (gl *GL) Ctx() js.Value {
	return gl.ctx
}
