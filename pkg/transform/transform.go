// Package transform is the public entry point, grounded on esbuild's
// pkg/api.Transform shape: a single function taking source text and
// options and returning a result-or-diagnostics value.
package transform

import (
	"github.com/solidgo/dom-expressions-go/internal/config"
	"github.com/solidgo/dom-expressions-go/internal/driver"
	"github.com/solidgo/dom-expressions-go/internal/jsxparse"
	"github.com/solidgo/dom-expressions-go/internal/logger"
)

// Result is the host-facing output of a transform.
type Result struct {
	Code        string
	Diagnostics []logger.Msg
	OK          bool
}

// Options is re-exported so callers need only import this package for
// the common case.
type Options = config.Options

// SolidDefaults is re-exported from internal/config for convenience.
func SolidDefaults() Options { return config.SolidDefaults() }

// Transform parses source and lowers every JSX expression it finds
// according to opts, returning either transformed code or the
// diagnostics that aborted it. filename is handed to the parser, which
// parses .jsx and .tsx sources the same way.
func Transform(source, filename string, opts Options) Result {
	program, parseErr := jsxparse.Parse(source, filename, opts.StaticMarker)
	if parseErr != nil {
		log := logger.NewLog()
		log.AddError(logger.Loc{Start: int32(parseErr.Offset)}, parseErr.Error())
		return Result{Diagnostics: log.Msgs(), OK: false}
	}
	if len(program) == 0 {
		return Result{Code: source, OK: true}
	}

	r := driver.Transform(program, opts)
	return Result{Code: r.Code, Diagnostics: r.Diagnostics, OK: r.OK}
}
