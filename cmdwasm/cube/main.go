//go:build js && wasm
// +build js,wasm

package main

import (
	"context"

	"github.com/mgnsk/go-webgl-demos/internal/demo"
	"github.com/mgnsk/go-webgl-demos/pkg/render"
	"github.com/mgnsk/go-webgl-demos/pkg/scene"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	render.SetLogger(demo.Logger())

	check(demo.Run(context.Background(), scene.ColorCube))
}
