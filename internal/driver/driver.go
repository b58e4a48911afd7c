// Package driver walks the program's top-level JSX expressions, invokes
// Element/Component lowering on each, and materializes the shared IR
// through whichever backend Options.Generate selects, then prepends the
// helper import, template declarations, and delegation-registration
// call once the whole program has been lowered.
package driver

import (
	"strings"

	"github.com/solidgo/dom-expressions-go/internal/backend/dom"
	"github.com/solidgo/dom-expressions-go/internal/backend/ssr"
	"github.com/solidgo/dom-expressions-go/internal/blockctx"
	"github.com/solidgo/dom-expressions-go/internal/config"
	"github.com/solidgo/dom-expressions-go/internal/ir"
	"github.com/solidgo/dom-expressions-go/internal/jsexpr"
	"github.com/solidgo/dom-expressions-go/internal/jsxast"
	"github.com/solidgo/dom-expressions-go/internal/logger"
	"github.com/solidgo/dom-expressions-go/internal/lower"
)

// Result is the Driver's output: either transformed code, or — if any
// fatal error occurred — no code and the accumulated diagnostics.
type Result struct {
	Code        string
	Diagnostics []logger.Msg
	OK          bool
}

// Transform runs the full pipeline over a parsed program.
func Transform(program []jsxast.TopLevelExpr, opts config.Options) Result {
	log := logger.NewLog()
	ctx := blockctx.New()
	engine := lower.NewEngine(ctx, opts, log, func(r ir.TransformResult) string {
		return renderInline(r, ctx, opts)
	})

	var body strings.Builder
	for _, te := range program {
		body.WriteString(te.Before)
		result := engine.LowerNode(te.Root, lower.Info{TopLevel: true})
		body.WriteString(renderInline(result, ctx, opts))
		body.WriteString(te.After)
	}

	if log.HasErrors() {
		return Result{Diagnostics: log.Msgs(), OK: false}
	}

	return Result{Code: prelude(ctx, opts) + body.String(), Diagnostics: log.Msgs(), OK: true}
}

// renderInline materializes one already-lowered TransformResult into
// the inline JS expression text that stands in for it — a component
// instantiation's createComponent(...) call is already that value, in
// either generate mode; otherwise the selected backend clones the
// registered template and wraps the binding statements into a
// self-contained expression. Used both for each top-level JSX
// expression and, via Engine.RenderInline, for JSX the lowering engine
// discovers nested inside a callback body.
func renderInline(r ir.TransformResult, ctx *blockctx.Context, opts config.Options) string {
	switch {
	case r.ValueExpr != nil:
		return r.ValueExpr.Print()
	case opts.Generate == config.GenerateSSR:
		return ssr.Materialize(r, ctx, opts).Print()
	default:
		stmts, rootName := dom.Materialize(r, ctx, opts)
		return dom.Wrap(stmts, rootName)
	}
}

// prelude emits, once the whole program has been lowered: the helper
// import, template declarations in registration order, and (outside SSR
// mode, which drops event delegation) a single delegation call.
func prelude(ctx *blockctx.Context, opts config.Options) string {
	var b strings.Builder

	if helpers := ctx.Helpers(); len(helpers) > 0 {
		b.WriteString(jsexpr.Import{Names: helpers, Module: opts.ModuleName}.PrintStmt())
		b.WriteByte('\n')
	}

	for _, t := range ctx.Templates() {
		init := jsexpr.Call{
			Callee: jsexpr.Ident("template"),
			Args:   []jsexpr.Node{jsexpr.Str(t.HTML), jsexpr.Bool(t.Hydratable)},
		}
		b.WriteString(jsexpr.ConstDecl{Name: t.ID, Init: init}.PrintStmt())
		b.WriteByte('\n')
	}

	if delegates := ctx.Delegates(); len(delegates) > 0 && opts.Generate != config.GenerateSSR {
		items := make([]jsexpr.Node, len(delegates))
		for i, d := range delegates {
			items[i] = jsexpr.Str(d)
		}
		b.WriteString(jsexpr.ExprStmt{Expr: jsexpr.Call{
			Callee: jsexpr.Ident("delegateEvents"),
			Args:   []jsexpr.Node{jsexpr.Array{Items: items}},
		}}.PrintStmt())
		b.WriteByte('\n')
	}

	return b.String()
}
