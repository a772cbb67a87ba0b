package render

import (
	"github.com/joomcode/errorx"
)

// Errors is the error namespace of the render package.
var Errors = errorx.NewNamespace("render")

// Error types.
var (
	// ContextUnavailable is returned when no rendering context can be acquired.
	ContextUnavailable = Errors.NewType("context_unavailable")
	ShaderCompile      = Errors.NewType("shader_compile")
	ProgramLink        = Errors.NewType("program_link")
	LocationNotFound   = Errors.NewType("location_not_found", errorx.NotFound())
	InvalidGeometry    = Errors.NewType("invalid_geometry")
	ImageLoad          = Errors.NewType("image_load")
	// BackendFailure wraps errors reported by the backend while drawing.
	BackendFailure = Errors.NewType("backend")
)
