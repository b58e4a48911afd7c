package lower

import (
	"github.com/solidgo/dom-expressions-go/internal/blockctx"
	"github.com/solidgo/dom-expressions-go/internal/classifier"
	"github.com/solidgo/dom-expressions-go/internal/config"
	"github.com/solidgo/dom-expressions-go/internal/ir"
	"github.com/solidgo/dom-expressions-go/internal/jsxast"
	"github.com/solidgo/dom-expressions-go/internal/logger"
)

// Engine bundles the single-threaded state a compilation unit's
// lowering shares: the Block Context, the fixed Options, the
// diagnostics log, and a precomputed known-constants set for the
// is-dynamic rule. One Engine is created per compilation.
type Engine struct {
	Ctx  *blockctx.Context
	Opts config.Options
	Log  *logger.Log

	// RenderInline materializes an already-lowered TransformResult into
	// the inline JS expression text that stands in for it at the call
	// site — the same clone-and-wrap step the Driver runs for a
	// top-level JSX expression, reused here for JSX discovered nested
	// inside a callback body (see spliceEmbeddedJSX). Supplied by the
	// Driver at construction time since only it knows which backend
	// Options.Generate selects.
	RenderInline func(ir.TransformResult) string

	knownConstants map[string]struct{}
}

func NewEngine(ctx *blockctx.Context, opts config.Options, log *logger.Log, renderInline func(ir.TransformResult) string) *Engine {
	known := make(map[string]struct{}, len(opts.KnownConstants))
	for _, name := range opts.KnownConstants {
		known[name] = struct{}{}
	}
	return &Engine{Ctx: ctx, Opts: opts, Log: log, RenderInline: renderInline, knownConstants: known}
}

func (e *Engine) isDynamic(expr jsxast.Expr) bool {
	return classifier.IsDynamic(expr, e.knownConstants)
}

// LowerNode dispatches a JSX node to Element or Component lowering,
// classifying the tag first. It is also used recursively for nested
// element/component children.
func (e *Engine) LowerNode(node jsxast.Node, info Info) ir.TransformResult {
	switch n := node.(type) {
	case *jsxast.Element:
		if classifier.IsComponent(n.TagName, n.TagIsDynamicExpr) {
			return e.LowerComponent(n, info)
		}
		return e.LowerElement(n, info)
	case *jsxast.Fragment:
		return e.LowerFragment(n, info)
	default:
		return ir.TransformResult{}
	}
}
