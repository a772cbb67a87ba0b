//go:build js && wasm
// +build js,wasm

package main

import (
	"context"
	"image/color"

	"github.com/mgnsk/go-webgl-demos/internal/demo"
	"github.com/mgnsk/go-webgl-demos/pkg/jsutil"
	"github.com/mgnsk/go-webgl-demos/pkg/render"
	"github.com/mgnsk/go-webgl-demos/pkg/scene"
	"github.com/mgnsk/go-webgl-demos/pkg/webgl"
)

const defaultTexture = "cratetex.png"

var (
	checkerLight = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	checkerDark  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	render.SetLogger(demo.Logger())

	var opts []render.Option

	switch texture := jsutil.QueryParam("texture"); texture {
	case "checker":
		opts = append(opts, render.WithTextureImage(render.Checkerboard(256, checkerLight, checkerDark)))
	case "":
		texture = defaultTexture
		fallthrough
	default:
		// ?loader=fetch decodes the image in Go instead of the browser.
		var loader render.ImageLoader = webgl.ElementLoader{}
		if jsutil.QueryParam("loader") == "fetch" {
			loader = webgl.FetchLoader{}
		}
		opts = append(opts, render.WithImageLoader(loader), render.WithTexture(texture))
	}

	check(demo.Run(context.Background(), scene.TexturedCube, opts...))
}
