// Element Lowering: native host elements — tag classification, the
// per-attribute dispatch (events, refs, directives, namespaces, plain
// attributes), and recursing into children.
package lower

import (
	"fmt"
	"strings"

	"github.com/solidgo/dom-expressions-go/internal/classifier"
	"github.com/solidgo/dom-expressions-go/internal/config"
	"github.com/solidgo/dom-expressions-go/internal/ir"
	"github.com/solidgo/dom-expressions-go/internal/jsexpr"
	"github.com/solidgo/dom-expressions-go/internal/jsxast"
)

// LowerElement lowers a single native host element end to end: tag
// open, attributes, children, tag close.
func (e *Engine) LowerElement(el *jsxast.Element, info Info) ir.TransformResult {
	isSVG := classifier.IsSVGElement(el.TagName)
	isVoid := classifier.IsVoidElement(el.TagName)
	isCustomElement := classifier.IsCustomElement(el.TagName)

	result := ir.TransformResult{
		TagName:          el.TagName,
		IsSVG:            isSVG,
		HasCustomElement: isCustomElement,
		IsVoid:           isVoid,
	}

	// Step 2: allocate an id unless the caller passed skip_id.
	var elemID string
	if !info.SkipID {
		elemID = e.Ctx.GenerateUID("el$")
	}

	// Step 3: open the tag.
	result.Template = "<" + el.TagName
	result.TemplateWithClosingTags = result.Template

	// Step 4: attributes, in source order, with later duplicate wins.
	attrs := dedupeLastWins(el.Attributes)

	ownExprs := make([]ir.Expr, 0, len(attrs))
	ownDynamics := make([]ir.DynamicBinding, 0, len(attrs))
	elemIDUsed := false
	markUsed := func() string {
		elemIDUsed = true
		if elemID == "" {
			// skip_id was requested but something needs a reference to this
			// node anyway; the Driver addresses the root by its own
			// materialized identifier, so an empty owner id is valid and is
			// resolved by the Driver/backend to that identifier.
			return ""
		}
		return elemID
	}

	for _, a := range attrs {
		if a.Spread != nil {
			e.Ctx.RegisterHelper("spread")
			id := markUsed()
			ownExprs = append(ownExprs, ir.Expr{Stmt: jsexpr.ExprStmt{Expr: jsexpr.Call{
				Callee: jsexpr.Ident("spread"),
				Args: []jsexpr.Node{
					refNode(id),
					jsexpr.Raw(a.Spread.Expr.Raw),
					jsexpr.Bool(isSVG),
					jsexpr.Bool(len(el.Children) > 0),
				},
			}}})
			continue
		}

		attr := a.Attribute
		key := attr.Name.String()

		switch {
		case key == "ref":
			e.Ctx.RegisterHelper("use")
			id := markUsed()
			if attr.Value.Kind == jsxast.AttrValueExpr {
				ownExprs = append(ownExprs, ir.Expr{Stmt: jsexpr.ExprStmt{Expr: jsexpr.Call{
					Callee: jsexpr.Ident("use"),
					Args:   []jsexpr.Node{jsexpr.Raw(attr.Value.Expr.Raw), refNode(id)},
				}}})
			}

		case attr.Name.Namespace == "" && hasCaseInsensitivePrefix(key, "on"):
			ex := e.lowerEvent(attr, key, &elemID, markUsed, false, false)
			ownExprs = append(ownExprs, ex)

		case attr.Name.Namespace == "on":
			ex := e.lowerEvent(attr, attr.Name.Name, &elemID, markUsed, true, false)
			ownExprs = append(ownExprs, ex)

		case attr.Name.Namespace == "oncapture":
			ex := e.lowerEvent(attr, attr.Name.Name, &elemID, markUsed, true, true)
			ownExprs = append(ownExprs, ex)

		case attr.Name.Namespace == "use":
			e.Ctx.RegisterHelper("use")
			id := markUsed()
			var valueExpr jsexpr.Node = jsexpr.Undefined()
			if attr.Value.Kind == jsxast.AttrValueExpr {
				valueExpr = jsexpr.Raw(attr.Value.Expr.Raw)
			}
			ownExprs = append(ownExprs, ir.Expr{Stmt: jsexpr.ExprStmt{Expr: jsexpr.Call{
				Callee: jsexpr.Ident("use"),
				Args: []jsexpr.Node{
					jsexpr.Ident(attr.Name.Name),
					refNode(id),
					jsexpr.Arrow{Body: valueExpr},
				},
			}}})

		case attr.Name.Namespace == "style":
			id := markUsed()
			if attr.Value.Kind == jsxast.AttrValueExpr {
				binding := ir.DynamicBinding{
					OwnerNodeID:  id,
					AttributeKey: "style:" + attr.Name.Name,
					Value:        jsexpr.Raw(attr.Value.Expr.Raw),
					IsSVG:        isSVG, IsCustomElement: isCustomElement, TagName: el.TagName,
					Reactive: e.isDynamic(attr.Value.Expr),
				}
				ownDynamics = append(ownDynamics, binding)
			}

		case attr.Name.Namespace == "class":
			id := markUsed()
			if attr.Value.Kind == jsxast.AttrValueExpr {
				binding := ir.DynamicBinding{
					OwnerNodeID:  id,
					AttributeKey: "class:" + attr.Name.Name,
					Value:        jsexpr.Raw(attr.Value.Expr.Raw),
					IsSVG:        isSVG, IsCustomElement: isCustomElement, TagName: el.TagName,
					Reactive: e.isDynamic(attr.Value.Expr),
				}
				ownDynamics = append(ownDynamics, binding)
			}

		case attr.Name.Namespace == "prop" || attr.Name.Namespace == "attr":
			id := markUsed()
			forced := attr.Name.Namespace
			if attr.Value.Kind == jsxast.AttrValueExpr {
				ownDynamics = append(ownDynamics, ir.DynamicBinding{
					OwnerNodeID:  id,
					AttributeKey: attr.Name.Name,
					Value:        jsexpr.Raw(attr.Value.Expr.Raw),
					IsSVG:        isSVG, IsCustomElement: isCustomElement, TagName: el.TagName,
					Reactive: e.isDynamic(attr.Value.Expr),
					Forced:   forced,
				})
			} else if attr.Value.Kind == jsxast.AttrValueString {
				// A literal value with a forced prop:/attr: namespace still
				// has to go through the runtime call, since the template
				// string can't express "set via property" vs "set via
				// setAttribute".
				ownDynamics = append(ownDynamics, ir.DynamicBinding{
					OwnerNodeID:  id,
					AttributeKey: attr.Name.Name,
					Value:        jsexpr.Str(attr.Value.String),
					IsSVG:        isSVG, IsCustomElement: isCustomElement, TagName: el.TagName,
					Reactive: false,
					Forced:   forced,
				})
			}

		case attr.Name.Namespace != "" && !classifier.RecognizedNamespace(attr.Name.Namespace):
			// An unrecognized namespace prefix is emitted verbatim as static
			// template text if literal, or as a dynamic binding otherwise.
			e.lowerPlainAttribute(attr, key, isSVG, true, &result, &ownDynamics, markUsed)

		default:
			e.lowerPlainAttribute(attr, key, isSVG, attr.Name.Namespace == "xlink" || attr.Name.Namespace == "xmlns", &result, &ownDynamics, markUsed)
		}
	}

	// Step 5: close the opening tag.
	result.Template += ">"
	result.TemplateWithClosingTags += ">"

	// Step 6: children (void elements never get children in the IR).
	// markUsed is threaded through so a child that inserts or spreads
	// against this element's own node (not one of its attributes) still
	// marks the root id used — otherwise an element whose only reference
	// comes from its children (e.g. <div><Foo/></div>, <div>{x()}</div>)
	// would never get result.ID set and its children would have nothing
	// to address.
	if len(el.Children) > 0 && isVoid {
		e.Log.AddErrorf(el.Loc, "void element <%s> must not have children", el.TagName)
	}
	if !isVoid {
		e.lowerChildren(el.Children, markUsed, isSVG, &result)
		// Template omits closing tags in SSR/streaming mode; DOM mode needs
		// well-formed HTML to feed the cloneable <template> literal, so it
		// keeps them.
		if e.Opts.Generate != config.GenerateSSR {
			result.Template += "</" + el.TagName + ">"
		}
	}
	result.TemplateWithClosingTags += "</" + el.TagName + ">"

	if elemIDUsed {
		result.ID = elemID
	}

	result.Expressions = append(ownExprs, result.Expressions...)
	result.Dynamics = append(ownDynamics, result.Dynamics...)

	return result
}

// lowerEvent dispatches one `on*`/`on:`/`oncapture:` attribute to a
// delegated or a direct addEventListener binding.
func (e *Engine) lowerEvent(attr *jsxast.Attribute, key string, elemID *string, markUsed func() string, forcedNonDelegated, capture bool) ir.Expr {
	eventName := classifier.ToEventName(key)
	var handler jsexpr.Node = jsexpr.Undefined()
	if attr.Value.Kind == jsxast.AttrValueExpr {
		handler = jsexpr.Raw(attr.Value.Expr.Raw)
	}

	delegated := !forcedNonDelegated && e.Opts.DelegateEvents &&
		(classifier.IsDelegatedEvent(eventName) || contains(e.Opts.DelegatedEvents, eventName))

	id := markUsed()

	if delegated {
		e.Ctx.RegisterDelegate(eventName)
		return ir.Expr{Stmt: jsexpr.ExprStmt{Expr: jsexpr.Assign{
			Target: jsexpr.Member{Obj: refNode(id), Prop: "$$" + eventName},
			Value:  handler,
		}}}
	}

	e.Ctx.RegisterHelper("addEventListener")
	args := []jsexpr.Node{refNode(id), jsexpr.Str(eventName), handler}
	if capture {
		args = append(args, jsexpr.Bool(true))
	}
	return ir.Expr{Stmt: jsexpr.ExprStmt{Expr: jsexpr.Call{Callee: jsexpr.Ident("addEventListener"), Args: args}}}
}

// lowerPlainAttribute lowers a regular attribute, or a namespaced one
// with no dedicated rule (xlink:, xmlns:, or an unrecognized prefix):
// absent/string render straight into the template text, an expression
// container is either dynamic, a pre-renderable literal, or a static
// value that still needs a one-time runtime binding.
func (e *Engine) lowerPlainAttribute(attr *jsxast.Attribute, key string, isSVG, suppressAlias bool, result *ir.TransformResult, ownDynamics *[]ir.DynamicBinding, markUsed func() string) {
	aliasedKey := key
	if !suppressAlias {
		aliasedKey = classifier.AttributeAlias(key, isSVG)
	}

	switch attr.Value.Kind {
	case jsxast.AttrValueAbsent:
		result.Template += " " + key

	case jsxast.AttrValueString:
		escaped := classifier.EscapeHTML(attr.Value.String, true)
		result.Template += fmt.Sprintf(" %s=\"%s\"", aliasedKey, escaped)

	case jsxast.AttrValueExpr:
		expr := attr.Value.Expr
		if e.isDynamic(expr) {
			id := markUsed()
			*ownDynamics = append(*ownDynamics, ir.DynamicBinding{
				OwnerNodeID:  id,
				AttributeKey: key,
				Value:        jsexpr.Raw(expr.Raw),
				IsSVG:        result.IsSVG, IsCustomElement: result.HasCustomElement, TagName: result.TagName,
				Reactive: true,
			})
			return
		}
		if expr.Kind == jsxast.ExprLiteral {
			rendered := classifier.EscapeHTML(literalText(expr.Raw), true)
			result.Template += fmt.Sprintf(" %s=\"%s\"", aliasedKey, rendered)
			return
		}
		// Static, but not a literal we can pre-render (a known-immutable
		// identifier, or a "@once"-annotated expression): emitted as a
		// one-time, non-reactive binding rather than inlined template text,
		// since the engine never evaluates user expressions. See DESIGN.md
		// for this Open Question resolution.
		id := markUsed()
		*ownDynamics = append(*ownDynamics, ir.DynamicBinding{
			OwnerNodeID:  id,
			AttributeKey: key,
			Value:        jsexpr.Raw(expr.Raw),
			IsSVG:        result.IsSVG, IsCustomElement: result.HasCustomElement, TagName: result.TagName,
			Reactive: false,
		})
	}
}

func dedupeLastWins(attrs []jsxast.AttrOrSpread) []jsxast.AttrOrSpread {
	lastIndex := map[string]int{}
	for i, a := range attrs {
		if a.Attribute != nil {
			lastIndex[a.Attribute.Name.String()] = i
		}
	}
	out := make([]jsxast.AttrOrSpread, 0, len(attrs))
	for i, a := range attrs {
		if a.Attribute != nil {
			if lastIndex[a.Attribute.Name.String()] != i {
				continue // an earlier occurrence: drop it, side effects and all
			}
		}
		out = append(out, a)
	}
	return out
}

func hasCaseInsensitivePrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func contains(list []string, v string) bool {
	for _, it := range list {
		if it == v {
			return true
		}
	}
	return false
}

// literalText strips surrounding quotes from a literal's raw source
// text when present, leaving numeric/boolean literals untouched.
func literalText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) >= 2 {
		if (trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"') || (trimmed[0] == '\'' && trimmed[len(trimmed)-1] == '\'') {
			return trimmed[1 : len(trimmed)-1]
		}
	}
	return trimmed
}

func refNode(id string) jsexpr.Node {
	if id == "" {
		return jsexpr.Ident(ir.RootSentinel)
	}
	return jsexpr.Ident(id)
}
