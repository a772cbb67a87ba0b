//go:build js && wasm
// +build js,wasm

// Package demo runs a scene on the page canvas.
package demo

import (
	"context"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/joomcode/errorx"
	"github.com/mgnsk/go-webgl-demos/pkg/jsutil"
	"github.com/mgnsk/go-webgl-demos/pkg/render"
	"github.com/mgnsk/go-webgl-demos/pkg/webgl"
)

// CanvasID is the id of the canvas element the demos draw into.
const CanvasID = "gocanvas"

// Logger returns a text logger writing to the browser console.
// The level is read from the "log" query parameter and defaults to info.
func Logger() *slog.Logger {
	level := slog.LevelInfo
	if v := jsutil.QueryParam("log"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level = slog.LevelInfo
		}
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// Run draws the scene returned by newConfig until ctx is done or
// a frame fails. The canvas is kept at its displayed size and the
// scene is reprojected when its aspect ratio changes.
//
// The "clear" query parameter sets the clear color as #rrggbb or #rrggbbaa.
func Run(ctx context.Context, newConfig func(aspect float32) render.SceneConfig, opts ...render.Option) error {
	canvas := jsutil.Element(CanvasID)

	gl, err := webgl.NewGL(canvas)
	if err != nil {
		jsutil.Alert(err.Error())
		return err
	}

	width, height, _ := jsutil.FitCanvas(canvas)
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}

	backend := webgl.NewBackend(gl)

	cfg := newConfig(aspect)
	opts = append([]render.Option{render.WithViewport(width, height)}, opts...)

	if v := jsutil.QueryParam("clear"); v != "" {
		c, err := ParseColor(v)
		if err != nil {
			return errorx.Decorate(err, "invalid clear parameter")
		}
		opts = append(opts, render.WithClearColor(c))
	}

	scene, err := render.NewScene(backend, cfg, opts...)
	if err != nil {
		jsutil.Alert(err.Error())
		return errorx.Decorate(err, "error creating scene")
	}

	if jsutil.QueryParam("dump") != "" {
		jsutil.Dump(cfg.Transform)
	}

	sched := webgl.NewRAFScheduler()
	defer sched.Release()

	driver := render.NewDriver(&fitFramer{
		scene:   scene,
		backend: backend,
		canvas:  canvas,
	}, sched)
	driver.Start(ctx)

	if err := driver.Wait(); err != nil {
		jsutil.Alert(err.Error())
		return err
	}

	return nil
}

// fitFramer resizes the canvas and viewport before drawing a frame.
type fitFramer struct {
	scene   *render.Scene
	backend render.Backend
	canvas  js.Value
}

func (f *fitFramer) Frame() error {
	if width, height, changed := jsutil.FitCanvas(f.canvas); changed {
		f.backend.Viewport(0, 0, width, height)
		render.Logger().Debug("canvas resized", "width", width, "height", height)

		if width > 0 && height > 0 {
			if err := f.scene.SetAspect(float32(width) / float32(height)); err != nil {
				return err
			}
		}
	}
	return f.scene.Frame()
}
