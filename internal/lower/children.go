// Child lowering: whitespace normalization, fragment splicing, text
// escaping, and the <!> marker rule for dynamic expression containers
// sitting between static siblings.
package lower

import (
	"github.com/solidgo/dom-expressions-go/internal/classifier"
	"github.com/solidgo/dom-expressions-go/internal/ir"
	"github.com/solidgo/dom-expressions-go/internal/jsexpr"
	"github.com/solidgo/dom-expressions-go/internal/jsxast"
)

// flattenChildren splices a nested Fragment's children in place (no
// template wrapper node is produced for a Fragment) and drops
// whitespace-only text that spans a line break and empty expression
// containers, leaving a flat ordered list of children that actually
// participate in lowering.
func flattenChildren(children []jsxast.Child) []jsxast.Child {
	out := make([]jsxast.Child, 0, len(children))
	for _, c := range children {
		switch c.Kind {
		case jsxast.ChildFragment:
			out = append(out, flattenChildren(c.Fragment.Children)...)
		case jsxast.ChildText:
			trimmed, ok := classifier.TrimWhitespace(c.Text)
			if !ok || trimmed == "" {
				continue
			}
			c.Text = trimmed
			out = append(out, c)
		case jsxast.ChildExprContainer:
			if c.ExprContainer == nil {
				continue
			}
			out = append(out, c)
		default:
			out = append(out, c)
		}
	}
	return out
}

// lowerChildren lowers el's children into result, which is el's own
// in-progress TransformResult (so merges need no rebasing except for
// the one genuinely recursive case, ChildElement, whose sub-result
// carries paths relative to its own root). markUsed is called — marking
// the parent's own root id as actually referenced — exactly when a
// child needs to address that parent node directly (a dynamic/component
// child's insert() call, a spread child's insert() call); a child that
// only needs its own freshly-walked id never touches markUsed.
func (e *Engine) lowerChildren(children []jsxast.Child, markUsed func() string, isSVG bool, result *ir.TransformResult) {
	flat := flattenChildren(children)

	// templatePosition tracks the walk-path position among children that
	// actually occupy a slot in the cloned template (text, elements, and
	// <!> markers) — dynamic containers that are leading/trailing use
	// firstChild/lastChild traversal instead and consume no slot.
	templatePosition := -1
	pathForNextSlot := func() []ir.WalkStep {
		templatePosition++
		if templatePosition == 0 {
			return []ir.WalkStep{ir.WalkFirstChild}
		}
		path := make([]ir.WalkStep, templatePosition+1)
		path[0] = ir.WalkFirstChild
		for i := 1; i <= templatePosition; i++ {
			path[i] = ir.WalkNextSibling
		}
		return path
	}

	for i, child := range flat {
		switch child.Kind {
		case jsxast.ChildText:
			result.Template += classifier.EscapeHTML(child.Text, false)
			pathForNextSlot()

		case jsxast.ChildElement:
			childResult := e.LowerNode(child.Element, Info{})
			if childResult.ValueExpr != nil {
				// A component has no clonable template of its own — its
				// instantiation is a runtime value, so it occupies the
				// child position the same way a dynamic expression does.
				// A component call is never a ternary/short-circuit, so it
				// never qualifies for memo-wrapping.
				e.insertDynamicValue(childResult.ValueExpr, false, markUsed, i, len(flat), pathForNextSlot, result)
				result.Expressions = append(result.Expressions, childResult.Expressions...)
				result.Dynamics = append(result.Dynamics, childResult.Dynamics...)
				continue
			}
			path := pathForNextSlot()
			e.mergeNestedResult(result, childResult, path)
			result.Template += childResult.Template

		case jsxast.ChildExprContainer:
			e.lowerDynamicChild(*child.ExprContainer, markUsed, i, len(flat), pathForNextSlot, result)

		case jsxast.ChildSpread:
			e.Ctx.RegisterHelper("insert")
			result.Expressions = append(result.Expressions, ir.Expr{Stmt: jsexpr.ExprStmt{Expr: jsexpr.Call{
				Callee: jsexpr.Ident("insert"),
				Args:   []jsexpr.Node{refNode(markUsed()), jsexpr.Arrow{Body: jsexpr.Raw(child.Spread.Raw)}},
			}}})
		}
	}
}

// mergeNestedResult rebases child (a fully-lowered, independently
// recursed TransformResult) onto result at the walk-path position
// childPath: the child's own root becomes reachable from the parent as
// a declaration at that path, and every declaration inside the child is
// reprefixed by childPath so it stays correct relative to the parent's
// root clone.
func (e *Engine) mergeNestedResult(result *ir.TransformResult, child ir.TransformResult, childPath []ir.WalkStep) {
	if child.ID != "" {
		result.Declarations = append(result.Declarations, ir.Declaration{ID: child.ID, Path: childPath, IsCustomElement: child.HasCustomElement})
	}
	for _, d := range child.Declarations {
		rebased := append(append([]ir.WalkStep{}, childPath...), d.Path...)
		result.Declarations = append(result.Declarations, ir.Declaration{ID: d.ID, Path: rebased, IsCustomElement: d.IsCustomElement})
	}
	result.Expressions = append(result.Expressions, child.Expressions...)
	result.Dynamics = append(result.Dynamics, child.Dynamics...)
}

// lowerDynamicChild handles one `{expr}` child: a static literal
// container renders straight into the template text; everything else
// becomes an insert() expression, with a <!> marker synthesized (and
// declared) when the container needs its own anchor point. A genuinely
// dynamic ternary or logical short-circuit is additionally wrapped in
// the memo wrapper when WrapConditionals is set, so a signal read by
// only one branch doesn't re-run the other branch's side effects on
// every dependency change. JSX nested inside the expression (a ternary
// branch, a .map() callback body) is found and lowered in its own right
// by spliceEmbeddedJSX before the expression's text is spliced in.
func (e *Engine) lowerDynamicChild(expr jsxast.Expr, markUsed func() string, index, total int, pathForNextSlot func() []ir.WalkStep, result *ir.TransformResult) {
	if !e.isDynamic(expr) && expr.Kind == jsxast.ExprLiteral {
		result.Template += classifier.EscapeHTML(literalText(expr.Raw), false)
		pathForNextSlot()
		return
	}
	wrapMemo := e.Opts.WrapConditionals && e.isDynamic(expr) && classifier.IsConditionalExpr(expr.Raw)
	value := e.spliceEmbeddedJSX(expr.Raw)
	e.insertDynamicValue(jsexpr.Raw(value), wrapMemo, markUsed, index, total, pathForNextSlot, result)
}

// insertDynamicValue records an insert(parent, value, marker?) call for
// a child position that has no static template presence: a dynamic
// expression container or a nested component instantiation. A <!> marker
// is declared and spliced into the template whenever the position has no
// static sibling to anchor firstChild/lastChild traversal on — either
// it's the only child (total == 1) or it sits strictly between two other
// kept siblings. markUsed is called to obtain the parent's ref, marking
// the parent element's own root id as used so its TransformResult.ID
// actually gets set. wrapMemo wraps value in the configured memo helper
// — itself already a getter, so it is passed to insert() directly — in
// place of the usual bare `() => value` arrow.
func (e *Engine) insertDynamicValue(value jsexpr.Node, wrapMemo bool, markUsed func() string, index, total int, pathForNextSlot func() []ir.WalkStep, result *ir.TransformResult) {
	e.Ctx.RegisterHelper("insert")

	isLeading := index == 0
	isTrailing := index == total-1
	needsMarker := total == 1 || (!isLeading && !isTrailing)

	var markerArg jsexpr.Node
	if needsMarker {
		markerID := e.Ctx.GenerateUID("mark$")
		result.Template += "<!>"
		result.Declarations = append(result.Declarations, ir.Declaration{ID: markerID, Path: pathForNextSlot()})
		markerArg = refNode(markerID)
	}

	var valueArg jsexpr.Node
	if wrapMemo {
		wrapper := e.Opts.MemoWrapper
		if wrapper == "" {
			wrapper = "memo"
		}
		e.Ctx.RegisterHelper(wrapper)
		valueArg = jsexpr.Call{Callee: jsexpr.Ident(wrapper), Args: []jsexpr.Node{jsexpr.Arrow{Body: value}}}
	} else {
		valueArg = jsexpr.Arrow{Body: value}
	}

	args := []jsexpr.Node{refNode(markUsed()), valueArg}
	if markerArg != nil {
		args = append(args, markerArg)
	}
	result.Expressions = append(result.Expressions, ir.Expr{Stmt: jsexpr.ExprStmt{Expr: jsexpr.Call{
		Callee: jsexpr.Ident("insert"),
		Args:   args,
	}}})
}
