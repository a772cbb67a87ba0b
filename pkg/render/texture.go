package render

import (
	"image"
	"image/color"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"

	"github.com/joomcode/errorx"
	_ "golang.org/x/image/bmp"  // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

// ImageLoader loads texture images asynchronously.
type ImageLoader interface {
	// LoadImage starts loading url and calls done exactly once
	// with the image or an error.
	LoadImage(url string, done func(Image, error))
}

// IsPowerOfTwo reports whether v is an exact power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// UploadTexture uploads img into tex. Mipmaps are generated when both
// dimensions are powers of two, otherwise the texture is clamped and
// linearly filtered.
func UploadTexture(b Backend, tex Texture, img Image) error {
	b.BindTexture(tex)
	if err := b.TexImage2D(img); err != nil {
		return err
	}

	size := img.Bounds().Size()
	if IsPowerOfTwo(size.X) && IsPowerOfTwo(size.Y) {
		b.GenerateMipmap()
	} else {
		b.TexParameter(TextureWrapS, ClampToEdge)
		b.TexParameter(TextureWrapT, ClampToEdge)
		b.TexParameter(TextureMagFilter, Linear)
		b.TexParameter(TextureMinFilter, Linear)
	}

	Logger().Debug("texture uploaded", "width", size.X, "height", size.Y)

	return nil
}

// DecodeImage decodes a PNG, JPEG, GIF, BMP or WebP image into RGBA.
func DecodeImage(r io.Reader) (*image.RGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, errorx.Decorate(err, "error decoding image")
	}

	Logger().Debug("image decoded", "format", format)

	return ToRGBA(src), nil
}

// ToRGBA converts img to RGBA with its origin at zero.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Checkerboard returns a size×size checkerboard with 8×8 cells.
func Checkerboard(size int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / 8
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}
