package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/mgnsk/go-webgl-demos/pkg/render"
	"github.com/mgnsk/go-webgl-demos/pkg/render/rendertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Textures", func() {
	DescribeTable("IsPowerOfTwo",
		func(v int, expected bool) {
			Expect(render.IsPowerOfTwo(v)).To(Equal(expected))
		},
		Entry("0", 0, false),
		Entry("1", 1, true),
		Entry("2", 2, true),
		Entry("3", 3, false),
		Entry("6", 6, false),
		Entry("64", 64, true),
		Entry("100", 100, false),
		Entry("512", 512, true),
		Entry("1023", 1023, false),
		Entry("-4", -4, false),
	)

	DescribeTable("UploadTexture",
		func(w, h int, mipmapped bool) {
			b := rendertest.NewBackend()
			tex, err := b.CreateTexture()
			Expect(err).NotTo(HaveOccurred())

			Expect(render.UploadTexture(b, tex, image.NewRGBA(image.Rect(0, 0, w, h)))).To(Succeed())

			id := tex.(rendertest.ID)
			Expect(b.Mipmapped(id)).To(Equal(mipmapped))
			if mipmapped {
				Expect(b.TextureParams(id)).To(BeEmpty())
			} else {
				Expect(b.TextureParams(id)).To(HaveLen(4))
				Expect(b.TextureParams(id)[render.TextureWrapS]).To(Equal(render.ClampToEdge))
				Expect(b.TextureParams(id)[render.TextureMinFilter]).To(Equal(render.Linear))
			}
		},
		Entry("both powers of two", 256, 64, true),
		Entry("width not a power of two", 300, 64, false),
		Entry("height not a power of two", 256, 100, false),
		Entry("neither", 3, 5, false),
	)

	It("fails on an empty image", func() {
		b := rendertest.NewBackend()
		tex, _ := b.CreateTexture()
		Expect(render.UploadTexture(b, tex, image.NewRGBA(image.Rect(0, 0, 0, 0)))).NotTo(Succeed())
	})

	It("decodes images into RGBA", func() {
		src := render.Checkerboard(32, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255})

		var buf bytes.Buffer
		Expect(png.Encode(&buf, src)).To(Succeed())

		img, err := render.DecodeImage(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds()).To(Equal(src.Bounds()))
		Expect(img.RGBAAt(0, 0)).To(Equal(color.RGBA{R: 255, A: 255}))
		Expect(img.RGBAAt(4, 0)).To(Equal(color.RGBA{B: 255, A: 255}))
	})

	It("fails on garbage", func() {
		_, err := render.DecodeImage(strings.NewReader("not an image"))
		Expect(err).To(HaveOccurred())
	})

	It("moves the image origin to zero", func() {
		src := image.NewGray(image.Rect(10, 10, 20, 15))
		src.Pix[0] = 200
		img := render.ToRGBA(src)
		Expect(img.Bounds()).To(Equal(image.Rect(0, 0, 10, 5)))
		Expect(img.RGBAAt(0, 0)).To(Equal(color.RGBA{R: 200, G: 200, B: 200, A: 255}))
	})
})
