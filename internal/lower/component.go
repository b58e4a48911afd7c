// Component Lowering: user components and built-ins.
package lower

import (
	"github.com/solidgo/dom-expressions-go/internal/ir"
	"github.com/solidgo/dom-expressions-go/internal/jsexpr"
	"github.com/solidgo/dom-expressions-go/internal/jsxast"
)

// builtinSpec describes a built-in's recognized prop set and helper
// name.
type builtinSpec struct {
	helper         string
	recognizedProp map[string]struct{}
}

var builtinSpecs = map[string]builtinSpec{
	"For":           {helper: "For", recognizedProp: propSet("each", "fallback")},
	"Index":         {helper: "Index", recognizedProp: propSet("each", "fallback")},
	"Show":          {helper: "Show", recognizedProp: propSet("when", "fallback", "keyed")},
	"Switch":        {helper: "Switch", recognizedProp: propSet("fallback")},
	"Match":         {helper: "Match", recognizedProp: propSet("when", "keyed")},
	"Suspense":      {helper: "Suspense", recognizedProp: propSet("fallback")},
	"Portal":        {helper: "Portal", recognizedProp: propSet("mount", "useShadow", "ref")},
	"Dynamic":       {helper: "Dynamic", recognizedProp: propSet("component")},
	"ErrorBoundary": {helper: "ErrorBoundary", recognizedProp: propSet("fallback")},
}

func propSet(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// LowerComponent dispatches to the fixed built-in helper when the tag
// names one, otherwise to the generic user-component prop/children
// lowering.
func (e *Engine) LowerComponent(el *jsxast.Element, info Info) ir.TransformResult {
	if spec, ok := builtinSpecs[el.TagName]; ok && !el.TagIsDynamicExpr {
		return e.lowerBuiltin(el, spec)
	}
	return e.lowerUserComponent(el, info)
}

// lowerBuiltin lowers a call to one of the fixed built-in helpers,
// warning on unrecognized props (falling back to treating them as a
// user-component prop) and checking that every <Switch> child is a
// <Match>.
func (e *Engine) lowerBuiltin(el *jsxast.Element, spec builtinSpec) ir.TransformResult {
	e.Ctx.RegisterHelper(spec.helper)
	e.Ctx.RegisterHelper("createComponent")

	if el.TagName == "Switch" {
		for _, c := range el.Children {
			if c.Kind != jsxast.ChildElement {
				continue
			}
			if c.Element.TagName != "Match" {
				e.Log.AddErrorf(c.Element.Loc, "children of <Switch> must all be <Match> elements, found <%s>", c.Element.TagName)
			}
		}
	}

	result := ir.TransformResult{}
	props := make([]jsexpr.Prop, 0, len(el.Attributes))
	var spreads []jsxast.Expr

	for _, a := range dedupeLastWins(el.Attributes) {
		if a.Spread != nil {
			spreads = append(spreads, a.Spread.Expr)
			continue
		}
		attr := a.Attribute
		key := attr.Name.String()
		if _, recognized := spec.recognizedProp[key]; !recognized && el.TagName != "Dynamic" {
			e.Log.AddWarningf(attr.Loc, "unrecognized prop %q on built-in <%s>; treated as a user-component prop", key, el.TagName)
		}
		props = append(props, e.lowerComponentProp(key, attr.Value))
	}

	if childrenProp, ok := e.lowerComponentChildren(el); ok {
		props = append(props, childrenProp)
	}

	descriptor := e.applySpreads(spreads, props)
	result.ValueExpr = jsexpr.Call{
		Callee: jsexpr.Ident("createComponent"),
		Args:   []jsexpr.Node{jsexpr.Ident(el.TagName), descriptor},
	}
	return result
}

// lowerUserComponent lowers a call to a user-defined component: static
// values become plain properties, dynamic values become lazy getters,
// spreads wrap the descriptor in merge_props, and children become a
// `get children()` descriptor.
func (e *Engine) lowerUserComponent(el *jsxast.Element, info Info) ir.TransformResult {
	e.Ctx.RegisterHelper("createComponent")

	result := ir.TransformResult{}
	props := make([]jsexpr.Prop, 0, len(el.Attributes))
	var spreads []jsxast.Expr

	for _, a := range dedupeLastWins(el.Attributes) {
		if a.Spread != nil {
			spreads = append(spreads, a.Spread.Expr)
			continue
		}
		attr := a.Attribute
		props = append(props, e.lowerComponentProp(attr.Name.String(), attr.Value))
	}

	if childrenProp, ok := e.lowerComponentChildren(el); ok {
		props = append(props, childrenProp)
	}

	descriptor := e.applySpreads(spreads, props)

	var tag jsexpr.Node = jsexpr.Ident(el.TagName)
	if el.TagIsDynamicExpr {
		tag = jsexpr.Raw(el.TagName)
	}

	result.ValueExpr = jsexpr.Call{
		Callee: jsexpr.Ident("createComponent"),
		Args:   []jsexpr.Node{tag, descriptor},
	}
	return result
}

// lowerComponentProp implements "Static values... become plain
// properties; dynamic values become lazy getters".
func (e *Engine) lowerComponentProp(key string, value jsxast.AttrValue) jsexpr.Prop {
	switch value.Kind {
	case jsxast.AttrValueAbsent:
		return jsexpr.Prop{Kind: jsexpr.PropShorthandBool, Key: key}
	case jsxast.AttrValueString:
		return jsexpr.Prop{Kind: jsexpr.PropField, Key: key, Value: jsexpr.Str(value.String)}
	default:
		expr := value.Expr
		if !e.isDynamic(expr) {
			if expr.Kind == jsxast.ExprLiteral {
				return jsexpr.Prop{Kind: jsexpr.PropField, Key: key, Value: jsexpr.Raw(literalText(expr.Raw))}
			}
			return jsexpr.Prop{Kind: jsexpr.PropField, Key: key, Value: jsexpr.Raw(expr.Raw)}
		}
		return jsexpr.Prop{Kind: jsexpr.PropGetter, Key: key, Value: jsexpr.Raw(expr.Raw)}
	}
}

// lowerComponentChildren implements "Children, if present, become a
// get children() descriptor. If a single JSX child exists, its value
// is that child's lowered expression; if multiple, an array expression
// in source order. An empty children set omits the property."
func (e *Engine) lowerComponentChildren(el *jsxast.Element) (jsexpr.Prop, bool) {
	flat := flattenChildren(el.Children)
	if len(flat) == 0 {
		return jsexpr.Prop{}, false
	}

	values := make([]jsexpr.Node, 0, len(flat))
	for _, c := range flat {
		values = append(values, e.lowerChildExpr(c))
	}

	var body jsexpr.Node
	if len(values) == 1 {
		body = values[0]
	} else {
		body = jsexpr.Array{Items: values}
	}
	return jsexpr.Prop{Kind: jsexpr.PropGetter, Key: "children", Value: body}, true
}

// lowerChildExpr renders one flattened child as the JS expression that
// belongs inside a children descriptor: a nested element/component
// recurses through the full lowering and contributes whatever helpers
// and dynamics it needs globally via e.Ctx/e.Log side effects, text is
// a string literal, and an expression container is re-scanned for JSX
// nested inside it (a render prop's callback body, e.g. `item => <li>
// {item}</li>` passed as a <For>'s only child) via spliceEmbeddedJSX
// before its source is spliced through.
func (e *Engine) lowerChildExpr(c jsxast.Child) jsexpr.Node {
	switch c.Kind {
	case jsxast.ChildText:
		return jsexpr.Str(c.Text)
	case jsxast.ChildElement:
		childResult := e.LowerNode(c.Element, Info{ComponentChild: true})
		return e.renderInlineElement(childResult)
	case jsxast.ChildExprContainer:
		return jsexpr.Raw(e.spliceEmbeddedJSX(c.ExprContainer.Raw))
	case jsxast.ChildSpread:
		return jsexpr.Raw(c.Spread.Raw)
	default:
		return jsexpr.Undefined()
	}
}

// renderInlineElement renders a JSX child that was itself recursed
// through full lowering: a component child's value is the
// createComponent(...) call directly, while an element child is
// materialized through e.RenderInline — its template registered and its
// clone-and-bind statements wrapped into one expression — the same way
// the Driver renders a top-level JSX expression.
func (e *Engine) renderInlineElement(r ir.TransformResult) jsexpr.Node {
	if r.ValueExpr != nil {
		return r.ValueExpr
	}
	return jsexpr.Raw(e.RenderInline(r))
}

// applySpreads implements "Spread attributes cause the descriptor to
// be wrapped in a merge: merge_props(spread, { ...descriptor }). Order
// is preserved; later spreads override earlier static properties."
func (e *Engine) applySpreads(spreads []jsxast.Expr, props []jsexpr.Prop) jsexpr.Node {
	descriptor := jsexpr.Object{Props: props}
	if len(spreads) == 0 {
		return descriptor
	}
	e.Ctx.RegisterHelper("mergeProps")
	args := make([]jsexpr.Node, 0, len(spreads)+1)
	for _, s := range spreads {
		args = append(args, jsexpr.Raw(s.Raw))
	}
	args = append(args, descriptor)
	return jsexpr.Call{Callee: jsexpr.Ident("mergeProps"), Args: args}
}
