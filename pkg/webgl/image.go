//go:build js && wasm
// +build js,wasm

package webgl

import (
	"bytes"
	"image"
	"syscall/js"

	"github.com/mgnsk/go-webgl-demos/pkg/array"
	"github.com/mgnsk/go-webgl-demos/pkg/render"
)

// HTMLImage is a loaded <img> element. The backend uploads it directly.
type HTMLImage struct {
	js.Value
}

// Bounds returns the natural size of the image.
func (img *HTMLImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Get("naturalWidth").Int(), img.Get("naturalHeight").Int())
}

// ElementLoader loads images through <img> elements and lets the
// browser decode them.
type ElementLoader struct{}

// LoadImage implements render.ImageLoader.
func (ElementLoader) LoadImage(url string, done func(render.Image, error)) {
	el := js.Global().Get("Image").New()

	var onload, onerror js.Func
	release := func() {
		el.Set("onload", js.Null())
		el.Set("onerror", js.Null())
		onload.Release()
		onerror.Release()
	}

	onload = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		release()
		done(&HTMLImage{el}, nil)
		return nil
	})

	onerror = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		release()
		done(nil, render.ImageLoad.New("error loading %q", url))
		return nil
	})

	el.Set("onload", onload)
	el.Set("onerror", onerror)
	el.Set("src", url)
}

// FetchLoader downloads images with fetch and decodes them in Go.
type FetchLoader struct{}

// LoadImage implements render.ImageLoader.
func (FetchLoader) LoadImage(url string, done func(render.Image, error)) {
	go func() {
		img, err := fetchImage(url)
		done(img, err)
	}()
}

func fetchImage(url string) (render.Image, error) {
	resp, err := await(js.Global().Call("fetch", url))
	if err != nil {
		return nil, render.ImageLoad.Wrap(err, "error fetching %q", url)
	}

	if !resp.Get("ok").Bool() {
		return nil, render.ImageLoad.New("error fetching %q: %d %s", url, resp.Get("status").Int(), resp.Get("statusText").String())
	}

	buf, err := await(resp.Call("arrayBuffer"))
	if err != nil {
		return nil, render.ImageLoad.Wrap(err, "error reading %q", url)
	}

	data := array.NewUint8Array(buf).Bytes()

	img, err := render.DecodeImage(bytes.NewReader(data))
	if err != nil {
		return nil, render.ImageLoad.Wrap(err, "error decoding %q", url)
	}

	return img, nil
}

// await blocks the calling goroutine until the promise settles.
// It must not be called from a JS callback.
func await(promise js.Value) (js.Value, error) {
	type result struct {
		value js.Value
		err   error
	}

	ch := make(chan result, 1)

	onResolve := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- result{value: args[0]}
		return nil
	})
	defer onResolve.Release()

	onReject := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		msg := "promise rejected"
		if len(args) > 0 && args[0].Truthy() {
			msg = args[0].Call("toString").String()
		}
		ch <- result{err: render.ImageLoad.New("%s", msg)}
		return nil
	})
	defer onReject.Release()

	promise.Call("then", onResolve, onReject)

	r := <-ch
	return r.value, r.err
}
