// Package ssr implements the server-rendering backend: the same IR
// serialized as a tagged template literal against the `ssr` helper,
// with dynamic values wrapped in `escape(value, is_attr)` and events,
// refs, directives, and delegation dropped (server has no DOM).
package ssr

import (
	"strings"

	"github.com/solidgo/dom-expressions-go/internal/blockctx"
	"github.com/solidgo/dom-expressions-go/internal/config"
	"github.com/solidgo/dom-expressions-go/internal/ir"
	"github.com/solidgo/dom-expressions-go/internal/jsexpr"
)

// Materialize turns one TransformResult into a single `ssr` tagged
// template literal expression.
//
// Attribute-level DynamicBindings on the result's own root are spliced
// immediately before that root tag's closing '>' (the exact, not
// approximate, reinsertion point: Element Lowering never writes
// dynamic-attribute text into the template at all, so the root's
// attribute list is contiguous static text followed directly by '>').
// DynamicBindings owned by a recursively-merged nested element are
// appended as trailing interpolations after the main content instead
// of at their own tag's position, since the flat Template string does
// not preserve per-nested-tag offsets; this is a scoping simplification
// recorded in DESIGN.md, not a silent gap.
func Materialize(r ir.TransformResult, ctx *blockctx.Context, opts config.Options) jsexpr.Node {
	ctx.RegisterHelper("ssr")
	ctx.RegisterHelper("escape")

	tmpl := r.TemplateWithClosingTags

	var before, after string
	rootAttrs, nestedAttrs := splitDynamics(r)
	if idx := strings.Index(tmpl, ">"); idx >= 0 && len(rootAttrs) > 0 {
		before, after = tmpl[:idx], tmpl[idx:]
	} else {
		after = tmpl
	}

	quasis := []string{before}
	exprs := []jsexpr.Node{}
	if len(rootAttrs) > 0 {
		exprs = append(exprs, attrInterpolation(ctx, rootAttrs))
		quasis = append(quasis, "")
	}

	remaining := after
	childInserts := collectChildInserts(r)
	for _, ins := range childInserts {
		marker := strings.Index(remaining, "<!>")
		var piece string
		if marker >= 0 {
			piece, remaining = remaining[:marker], remaining[marker+len("<!>"):]
		} else {
			piece, remaining = remaining, ""
		}
		quasis[len(quasis)-1] += piece
		exprs = append(exprs, jsexpr.Call{Callee: jsexpr.Ident("escape"), Args: []jsexpr.Node{ins, jsexpr.Bool(false)}})
		quasis = append(quasis, "")
	}
	quasis[len(quasis)-1] += remaining

	if len(nestedAttrs) > 0 {
		exprs = append(exprs, attrInterpolation(ctx, nestedAttrs))
		quasis = append(quasis, "")
	}

	return jsexpr.TaggedTemplate{Tag: jsexpr.Ident("ssr"), Quasis: quasis, Exprs: exprs}
}

func splitDynamics(r ir.TransformResult) (root, nested []ir.DynamicBinding) {
	for _, d := range r.Dynamics {
		if d.OwnerNodeID == r.ID || d.OwnerNodeID == "" {
			root = append(root, d)
		} else {
			nested = append(nested, d)
		}
	}
	return root, nested
}

// attrInterpolation builds one expression combining every dynamic
// attribute of a node into the `ssrAttribute`/`ssrStyle`/`ssrClassList`
// calls the runtime contract provides, concatenated with `+` so they
// fit a single template-literal interpolation slot.
func attrInterpolation(ctx *blockctx.Context, attrs []ir.DynamicBinding) jsexpr.Node {
	parts := make([]string, 0, len(attrs))
	for _, d := range attrs {
		switch {
		case strings.HasPrefix(d.AttributeKey, "style:"):
			ctx.RegisterHelper("ssrStyle")
			sub := strings.TrimPrefix(d.AttributeKey, "style:")
			parts = append(parts, jsexpr.Call{Callee: jsexpr.Ident("ssrStyle"), Args: []jsexpr.Node{jsexpr.Str(sub), d.Value}}.Print())
		case strings.HasPrefix(d.AttributeKey, "class:"):
			ctx.RegisterHelper("ssrClassList")
			sub := strings.TrimPrefix(d.AttributeKey, "class:")
			parts = append(parts, jsexpr.Call{Callee: jsexpr.Ident("ssrClassList"), Args: []jsexpr.Node{jsexpr.Str(sub), d.Value}}.Print())
		default:
			ctx.RegisterHelper("ssrAttribute")
			parts = append(parts, jsexpr.Call{Callee: jsexpr.Ident("ssrAttribute"), Args: []jsexpr.Node{jsexpr.Str(d.AttributeKey), d.Value, jsexpr.Bool(true)}}.Print())
		}
	}
	return jsexpr.Raw(strings.Join(parts, " + "))
}

// collectChildInserts extracts the raw child expressions out of the
// `insert(parent, () => expr, marker?)` calls Child Lowering produced,
// in source order, for reinterpolation as SSR does not clone/insert —
// it renders once.
func collectChildInserts(r ir.TransformResult) []jsexpr.Node {
	var out []jsexpr.Node
	for _, ex := range r.Expressions {
		stmt, ok := ex.Stmt.(jsexpr.ExprStmt)
		if !ok {
			continue
		}
		call, ok := stmt.Expr.(jsexpr.Call)
		if !ok {
			continue
		}
		callee, ok := call.Callee.(jsexpr.Ident)
		if !ok || string(callee) != "insert" || len(call.Args) < 2 {
			continue
		}
		var body jsexpr.Node
		switch v := call.Args[1].(type) {
		case jsexpr.Arrow:
			body = v.Body
		case jsexpr.Call:
			// insert(parent, memo(() => expr)) from a memo-wrapped conditional.
			if len(v.Args) == 1 {
				if arrow, ok := v.Args[0].(jsexpr.Arrow); ok {
					body = arrow.Body
				}
			}
		}
		if body == nil {
			continue
		}
		out = append(out, body)
	}
	return out
}
