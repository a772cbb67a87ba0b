//go:build js && wasm
// +build js,wasm

// Package jsutil provides general functionality for any application running on wasm.
package jsutil

import (
	"syscall/js"

	"github.com/davecgh/go-spew/spew"
)

// IsWorker returns whether the program is running in a webworker.
func IsWorker() bool {
	return js.Global().Get("WorkerGlobalScope").Type() != js.TypeUndefined
}

// ConsoleLog console.log
func ConsoleLog(args ...interface{}) {
	js.Global().Get("console").Call("log", args...)
}

// Dump logs a spew dump of values to the console.
func Dump(values ...interface{}) {
	ConsoleLog(spew.Sdump(values...))
}

// Alert shows a browser alert. It is a no-op in a worker.
func Alert(msg string) {
	if IsWorker() {
		return
	}
	js.Global().Call("alert", msg)
}

// QueryParam returns a query parameter of the page URL or "" if unset.
func QueryParam(name string) string {
	params := js.Global().Get("URLSearchParams").New(js.Global().Get("location").Get("search"))
	v := params.Call("get", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

// Element returns the document element with id.
func Element(id string) js.Value {
	return js.Global().Get("document").Call("getElementById", id)
}

// FitCanvas resizes the canvas drawing buffer to its displayed size
// and reports whether it changed.
func FitCanvas(canvas js.Value) (width, height int, changed bool) {
	width = canvas.Get("clientWidth").Int()
	height = canvas.Get("clientHeight").Int()

	if canvas.Get("width").Int() != width || canvas.Get("height").Int() != height {
		canvas.Set("width", width)
		canvas.Set("height", height)
		changed = true
	}

	return width, height, changed
}
