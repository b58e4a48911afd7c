// Package jsxast is the typed JSX AST the lowering engine consumes, the
// shape a JSX parser's output takes before lowering ever sees it,
// modeled on esbuild's js_ast.EJSXElement shape.
package jsxast

import "github.com/solidgo/dom-expressions-go/internal/logger"

// ExprKind classifies a user JavaScript expression embedded in JSX
// (an attribute value or a child expression container) for the
// is-dynamic classifier. The engine never parses the expression itself
// — expressions are opaque source text — but the parser that produced
// this AST has already classified literals, identifiers, and the
// "@once" annotation, since that requires lexical knowledge this
// package does not have.
type ExprKind uint8

const (
	// ExprOther is any expression not covered by the other kinds:
	// member access, calls, binary/logical expressions, JSX itself,
	// arrow functions, etc. Always dynamic unless annotated static.
	ExprOther ExprKind = iota
	// ExprLiteral is a string/number/boolean literal.
	ExprLiteral
	// ExprIdentifier is a bare identifier reference.
	ExprIdentifier
)

// Expr is a single opaque user expression: the source text plus enough
// classification metadata for the Classifier to apply its is-dynamic
// rule without re-parsing JavaScript.
type Expr struct {
	Loc logger.Loc
	// Raw is the source text of the expression, spliced verbatim into
	// emitted code; the engine never evaluates or rewrites it.
	Raw string
	Kind ExprKind
	// StaticallyAnnotated is true when the expression was immediately
	// preceded by the configured static marker comment (default
	// "/* @once */").
	StaticallyAnnotated bool
}

// AttrName is either a plain identifier or a namespaced name like
// "xlink:href", "on:custom", "use:clickOutside".
type AttrName struct {
	// Namespace is empty for a plain attribute name.
	Namespace string
	Name      string
}

func (n AttrName) String() string {
	if n.Namespace == "" {
		return n.Name
	}
	return n.Namespace + ":" + n.Name
}

// AttrValue is the value of a JSX attribute: absent (boolean shorthand),
// a string literal, or an expression container.
type AttrValueKind uint8

const (
	AttrValueAbsent AttrValueKind = iota
	AttrValueString
	AttrValueExpr
)

type AttrValue struct {
	Kind   AttrValueKind
	String string // valid when Kind == AttrValueString
	Expr   Expr   // valid when Kind == AttrValueExpr
}

// Attribute is one JSX attribute, e.g. `class="hello"` or `onClick={fn}`.
type Attribute struct {
	Loc   logger.Loc
	Name  AttrName
	Value AttrValue
}

// SpreadAttribute is a `{...expr}` attribute.
type SpreadAttribute struct {
	Loc  logger.Loc
	Expr Expr
}

// AttrOrSpread is either an Attribute or a SpreadAttribute, in source
// order; attribute lowering processes them in this order.
type AttrOrSpread struct {
	Attribute *Attribute
	Spread    *SpreadAttribute
}

// ChildKind discriminates the kinds of JSX children child lowering
// handles.
type ChildKind uint8

const (
	ChildText ChildKind = iota
	ChildElement
	ChildFragment
	ChildExprContainer
	ChildSpread
)

// Child is one JSX child node.
type Child struct {
	Kind ChildKind

	Text string // ChildText: raw, unnormalized text

	Element *Element // ChildElement
	Fragment *Fragment // ChildFragment

	ExprContainer *Expr // ChildExprContainer: nil if {/* empty */}

	Spread *Expr // ChildSpread
}

// Element is a single JSX element `<tag attrs>children</tag>`.
type Element struct {
	Loc logger.Loc

	// TagName is the literal source text of the tag: "div", "For",
	// "Ctx.Provider", or the raw text of a dynamic tag expression.
	TagName string

	// TagIsDynamicExpr is true when the tag itself was a `{expr}`
	// dynamic expression rather than a plain name — always a component,
	// never a host element.
	TagIsDynamicExpr bool

	Attributes []AttrOrSpread
	Children   []Child

	SelfClosing bool
}

// Fragment is a JSX fragment `<>children</>`.
type Fragment struct {
	Loc      logger.Loc
	Children []Child
}

// TopLevelExpr identifies one JSX expression appearing directly in an
// expression position of the host program, the unit the Driver operates
// on. It records enough to splice the lowered replacement back into the
// surrounding source: the raw text immediately before and after the
// JSX expression.
type TopLevelExpr struct {
	Before string
	Root   Node // *Element or *Fragment
	After  string
}

// Node is implemented by *Element and *Fragment.
type Node interface {
	isNode()
}

func (*Element) isNode()  {}
func (*Fragment) isNode() {}
