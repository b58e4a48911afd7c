// Package dom implements the client-rendering backend: clone the
// registered template, walk it per Declaration to bind local names, run
// the collected Expressions, wrap each reactive DynamicBinding in the
// configured effect wrapper, and — when ContextToCustomElements is set —
// assign the reactive owner onto every custom element node it finds.
package dom

import (
	"strings"

	"github.com/solidgo/dom-expressions-go/internal/blockctx"
	"github.com/solidgo/dom-expressions-go/internal/classifier"
	"github.com/solidgo/dom-expressions-go/internal/config"
	"github.com/solidgo/dom-expressions-go/internal/ir"
	"github.com/solidgo/dom-expressions-go/internal/jsexpr"
)

// Materialize turns one top-level TransformResult into client code: it
// registers the template, emits the clone and
// walk-path declarations, appends the collected expressions, and
// returns the binding statements plus the name of the variable holding
// the root clone (the "yield the root node as the expression's
// replacement value" step).
func Materialize(r ir.TransformResult, ctx *blockctx.Context, opts config.Options) (stmts []jsexpr.Stmt, rootName string) {
	ctx.RegisterHelper("template")
	tmplID := ctx.RegisterTemplate(r.Template, opts.Hydratable)

	rootName = r.ID
	if rootName == "" {
		rootName = ctx.GenerateUID("_el$")
	}
	stmts = append(stmts, jsexpr.ConstDecl{Name: rootName, Init: jsexpr.Call{Callee: jsexpr.Ident(tmplID)}})
	if opts.ContextToCustomElements && r.HasCustomElement {
		stmts = append(stmts, contextToCustomElement(ctx, rootName))
	}

	for _, d := range r.Declarations {
		stmts = append(stmts, jsexpr.ConstDecl{Name: d.ID, Init: walkPath(rootName, d.Path)})
		if opts.ContextToCustomElements && d.IsCustomElement {
			stmts = append(stmts, contextToCustomElement(ctx, d.ID))
		}
	}

	for _, ex := range r.Expressions {
		stmts = append(stmts, ex.Stmt)
	}

	for _, d := range r.Dynamics {
		stmts = append(stmts, bindDynamic(ctx, opts, d, rootName))
	}

	return stmts, rootName
}

// Wrap assembles stmts into a self-contained expression yielding
// rootName, the stand-in for the out-of-scope downstream code
// generator's statement-hoisting step.
func Wrap(stmts []jsexpr.Stmt, rootName string) string {
	var b strings.Builder
	b.WriteString("(() => {\n")
	for _, s := range stmts {
		b.WriteString("  ")
		b.WriteString(s.PrintStmt())
		b.WriteByte('\n')
	}
	b.WriteString("  return " + rootName + ";\n})()")
	return b.String()
}

func walkPath(rootName string, path []ir.WalkStep) jsexpr.Node {
	var node jsexpr.Node = jsexpr.Ident(rootName)
	for _, step := range path {
		prop := "firstChild"
		if step == ir.WalkNextSibling {
			prop = "nextSibling"
		}
		node = jsexpr.Member{Obj: node, Prop: prop}
	}
	return node
}

// bindDynamic implements the property-vs-attribute, style:/class:
// namespace, and forced prop:/attr: rules for the DOM backend, wrapping
// the call in the configured effect wrapper when the binding is
// Reactive. rootName is the materialized name of r's own root clone,
// substituted for a DynamicBinding that carries no OwnerNodeID of its
// own (a binding on the fragment's own root, rather than a nested
// element reached by a walk-path declaration).
func bindDynamic(ctx *blockctx.Context, opts config.Options, d ir.DynamicBinding, rootName string) jsexpr.Stmt {
	node := refIdent(d.OwnerNodeID, rootName)
	var call jsexpr.Node

	switch {
	case strings.HasPrefix(d.AttributeKey, "style:"):
		ctx.RegisterHelper("style")
		sub := strings.TrimPrefix(d.AttributeKey, "style:")
		call = jsexpr.Call{Callee: jsexpr.Ident("style"), Args: []jsexpr.Node{node, jsexpr.Str(sub), d.Value}}

	case strings.HasPrefix(d.AttributeKey, "class:"):
		ctx.RegisterHelper("classList")
		sub := strings.TrimPrefix(d.AttributeKey, "class:")
		call = jsexpr.Call{Callee: jsexpr.Ident("classList"), Args: []jsexpr.Node{
			node, jsexpr.Object{Props: []jsexpr.Prop{{Kind: jsexpr.PropField, Key: sub, Value: d.Value}}},
		}}

	case d.Forced == "prop":
		call = jsexpr.Assign{Target: jsexpr.Member{Obj: node, Prop: d.AttributeKey}, Value: d.Value}

	case d.Forced == "attr":
		ctx.RegisterHelper("setAttribute")
		call = jsexpr.Call{Callee: jsexpr.Ident("setAttribute"), Args: []jsexpr.Node{node, jsexpr.Str(d.AttributeKey), d.Value}}

	case d.AttributeKey == "class":
		ctx.RegisterHelper("className")
		call = jsexpr.Call{Callee: jsexpr.Ident("className"), Args: []jsexpr.Node{node, d.Value}}

	case classifier.PropertyVsAttribute(d.AttributeKey, d.TagName) && !d.IsSVG:
		call = jsexpr.Assign{Target: jsexpr.Member{Obj: node, Prop: d.AttributeKey}, Value: d.Value}

	default:
		ctx.RegisterHelper("setAttribute")
		call = jsexpr.Call{Callee: jsexpr.Ident("setAttribute"), Args: []jsexpr.Node{node, jsexpr.Str(d.AttributeKey), d.Value}}
	}

	if !d.Reactive {
		return jsexpr.ExprStmt{Expr: call}
	}

	wrapper := opts.EffectWrapper
	if wrapper == "" {
		wrapper = "effect"
	}
	ctx.RegisterHelper(wrapper)
	return jsexpr.ExprStmt{Expr: jsexpr.Call{
		Callee: jsexpr.Ident(wrapper),
		Args:   []jsexpr.Node{jsexpr.Arrow{Body: call}},
	}}
}

// contextToCustomElement assigns the enclosing reactive owner onto a
// custom element node, so a <my-widget> that reads context inside its
// own (possibly Shadow DOM) subtree still sees the owner it was
// instantiated under rather than none at all.
func contextToCustomElement(ctx *blockctx.Context, nodeName string) jsexpr.Stmt {
	ctx.RegisterHelper("getOwner")
	return jsexpr.ExprStmt{Expr: jsexpr.Assign{
		Target: jsexpr.Member{Obj: jsexpr.Ident(nodeName), Prop: "_$owner"},
		Value:  jsexpr.Call{Callee: jsexpr.Ident("getOwner")},
	}}
}

func refIdent(id, rootName string) jsexpr.Node {
	if id == "" {
		return jsexpr.Ident(rootName)
	}
	return jsexpr.Ident(id)
}
