package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// newHandler serves dir with caching disabled and the wasm MIME type set.
func newHandler(dir string, logger *slog.Logger) http.Handler {
	fs := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		start := time.Now()

		resp.Header().Add("Cache-Control", "no-cache")
		if strings.HasSuffix(req.URL.Path, ".wasm") {
			resp.Header().Set("Content-Type", "application/wasm")
		}

		rec := &statusRecorder{ResponseWriter: resp, status: http.StatusOK}
		fs.ServeHTTP(rec, req)

		logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
