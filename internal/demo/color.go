package demo

import (
	"encoding/hex"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
)

// ParseColor parses a #rrggbb or #rrggbbaa color. The leading # is optional.
func ParseColor(s string) (mgl32.Vec4, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil {
		return mgl32.Vec4{}, errorx.IllegalFormat.Wrap(err, "color %q", s)
	}

	switch len(b) {
	case 3:
		b = append(b, 0xff)
	case 4:
	default:
		return mgl32.Vec4{}, errorx.IllegalFormat.New("color %q: want 6 or 8 hex digits", s)
	}

	var c mgl32.Vec4
	for i, v := range b {
		c[i] = float32(v) / 255
	}
	return c, nil
}
