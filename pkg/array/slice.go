package array

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is an element type that can back a TypedArray.
type Number interface {
	constraints.Integer | constraints.Float
}

// Encode returns the bytes of a numeric slice in host byte order.
// The result shares memory with s.
func Encode[E Number](s []E) []byte {
	if len(s) == 0 {
		return []byte{}
	}
	var zero E
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// Decode returns b as a numeric slice. The result shares memory with b
// and trailing bytes that do not fill a whole element are dropped.
func Decode[E Number](b []byte) []E {
	var zero E
	n := len(b) / int(unsafe.Sizeof(zero))
	if n == 0 {
		return []E{}
	}
	return unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(b))), n)
}
