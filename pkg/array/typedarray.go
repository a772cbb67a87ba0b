//go:build js && wasm
// +build js,wasm

package array

import (
	"fmt"
	"io"
	"syscall/js"
)

// Type is the constructor name of a TypedArray.
type Type string

// TypedArray types.
const (
	Int8Array      Type = "Int8Array"
	Int16Array     Type = "Int16Array"
	Int32Array     Type = "Int32Array"
	BigInt64Array  Type = "BigInt64Array"
	Uint8Array     Type = "Uint8Array"
	Uint16Array    Type = "Uint16Array"
	Uint32Array    Type = "Uint32Array"
	BigUint64Array Type = "BigUint64Array"
	Float32Array   Type = "Float32Array"
	Float64Array   Type = "Float64Array"
)

func (t Type) newView(ab js.Value) TypedArray {
	return TypedArray{js.Global().Get(string(t)).New(ab)}
}

// TypedArray is a JS TypedArray.
type TypedArray struct {
	js.Value
}

// NewInt8Array creates a new Int8Array view over the buffer.
func NewInt8Array(ab js.Value) TypedArray {
	return Int8Array.newView(ab)
}

// NewInt16Array creates a new Int16Array view over the buffer.
func NewInt16Array(ab js.Value) TypedArray {
	return Int16Array.newView(ab)
}

// NewInt32Array creates a new Int32Array view over the buffer.
func NewInt32Array(ab js.Value) TypedArray {
	return Int32Array.newView(ab)
}

// NewBigInt64Array creates a new BigInt64Array view over the buffer.
func NewBigInt64Array(ab js.Value) TypedArray {
	return BigInt64Array.newView(ab)
}

// NewUint8Array creates a new Uint8Array view over the buffer.
func NewUint8Array(ab js.Value) TypedArray {
	return Uint8Array.newView(ab)
}

// NewUint16Array creates a new Uint16Array view over the buffer.
func NewUint16Array(ab js.Value) TypedArray {
	return Uint16Array.newView(ab)
}

// NewUint32Array creates a new Uint32Array view over the buffer.
func NewUint32Array(ab js.Value) TypedArray {
	return Uint32Array.newView(ab)
}

// NewBigUint64Array creates a new BigUint64Array view over the buffer.
func NewBigUint64Array(ab js.Value) TypedArray {
	return BigUint64Array.newView(ab)
}

// NewFloat32Array creates a new Float32Array view over the buffer.
func NewFloat32Array(ab js.Value) TypedArray {
	return Float32Array.newView(ab)
}

// NewFloat64Array creates a new Float64Array view over the buffer.
func NewFloat64Array(ab js.Value) TypedArray {
	return Float64Array.newView(ab)
}

// NewFromSlice creates a new read-only TypedArray.
func NewFromSlice[E Number](s []E) TypedArray {
	b := Encode(s)
	ab := js.Global().Get("ArrayBuffer").New(len(b))
	view := NewUint8Array(ab)

	if n := js.CopyBytesToJS(view.Value, b); n != len(b) {
		panic(fmt.Errorf("NewFromSlice: copied: %d, expected: %d", n, len(b)))
	}

	switch any(E(0)).(type) {
	case int8:
		return NewInt8Array(ab)
	case int16:
		return NewInt16Array(ab)
	case int32:
		return NewInt32Array(ab)
	case int64:
		return NewBigInt64Array(ab)
	case uint8:
		return view
	case uint16:
		return NewUint16Array(ab)
	case uint32:
		return NewUint32Array(ab)
	case uint64:
		return NewBigUint64Array(ab)
	case float32:
		return NewFloat32Array(ab)
	case float64:
		return NewFloat64Array(ab)
	default:
		panic(fmt.Errorf("NewFromSlice: invalid type '%T'", s))
	}
}

// ArrayBuffer returns the underlying ArrayBuffer.
func (a TypedArray) ArrayBuffer() js.Value {
	return a.Get("buffer")
}

// Bytes copies bytes from the underlying ArrayBuffer.
func (a TypedArray) Bytes() []byte {
	view := NewUint8Array(a.ArrayBuffer())
	b := make([]byte, view.Len())

	n := js.CopyBytesToGo(b, view.Value)
	if n != len(b) {
		panic(io.ErrShortWrite)
	}

	return b
}

// Len returns the length of the array.
func (a TypedArray) Len() int {
	return a.Get("length").Int()
}

// Type returns the type of the array.
func (a TypedArray) Type() Type {
	return Type(a.Get("constructor").Get("name").String())
}

// JSValue returns the underlying JS value.
func (a TypedArray) JSValue() js.Value {
	return a.Value
}
