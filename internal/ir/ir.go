// Package ir defines the carrier types lowering produces and merges:
// TransformResult, DynamicBinding, Declaration, Expr. Values of these
// types are produced bottom-up and consumed by the parent lowering or
// by the Driver; none escape past the end of one compilation.
package ir

import "github.com/solidgo/dom-expressions-go/internal/jsexpr"

// RootSentinel is the placeholder identifier Child Lowering falls back
// to when it bakes an insert()/spread call against a parent that has no
// addressable id at all — currently only a Fragment's direct children,
// since a Fragment has no root node of its own to assign one to. It is
// the only such sentinel in the pipeline; a DynamicBinding with no
// OwnerNodeID is resolved instead against the backend's own
// materialized root name, which is always known by the time a binding
// is emitted.
const RootSentinel = "$root"

// WalkStep is one step of a walk path: the sequence of
// firstChild/nextSibling traversals from a template's root that
// locates a descendant node.
type WalkStep uint8

const (
	WalkFirstChild WalkStep = iota
	WalkNextSibling
)

// Declaration is one local binding introduced while walking a cloned
// template to locate a node the lowering needs a reference to. Path is
// relative to the enclosing TransformResult's root clone.
type Declaration struct {
	ID   string
	Path []WalkStep

	// IsCustomElement marks a declared node as the root of a nested
	// custom element (tag name contains a hyphen), so the DOM backend
	// can inject reactive context onto it when ContextToCustomElements
	// is set — a plain walk-path declaration otherwise carries no
	// classification of what it points at.
	IsCustomElement bool
}

// Expr is one statement to execute after the template clone: an event
// binding, insert, spread, or directive call.
type Expr struct {
	Stmt jsexpr.Stmt
}

// DynamicBinding pairs a node identifier with an attribute to be
// updated reactively.
type DynamicBinding struct {
	OwnerNodeID     string
	AttributeKey    string
	Value           jsexpr.Node
	IsSVG           bool
	IsCustomElement bool
	TagName         string

	// Reactive is true for a genuinely dynamic binding, which the DOM
	// backend wraps in a call to the configured effect wrapper. It is false for a binding that is
	// classified static but could not be pre-rendered into the template
	// string (a known-immutable identifier, or a "@once"-annotated
	// expression) — see DESIGN.md's resolution of this Open Question.
	// The DOM backend emits false bindings as a single unwrapped call at
	// clone time; the SSR backend treats Reactive and non-Reactive
	// bindings identically, since SSR only ever renders once.
	Reactive bool

	// Forced is "prop" or "attr" when a `prop:`/`attr:` namespace forced
	// the property-vs-attribute decision, empty otherwise (consult
	// classifier.PropertyVsAttribute).
	Forced string
}

// TransformResult is the IR produced by lowering any JSX node.
type TransformResult struct {
	// ID optionally names the root node of this fragment.
	ID string

	// Template is the HTML string contributed by this subtree, without
	// closing tags appended for streaming use.
	Template string
	// TemplateWithClosingTags is the same string with closing tags
	// appended.
	TemplateWithClosingTags string

	TagName          string
	IsSVG            bool
	HasCustomElement bool
	IsVoid           bool

	// Declarations is ordered as a pre-order traversal of the template.
	Declarations []Declaration
	Expressions  []Expr
	Dynamics     []DynamicBinding

	// Text is true iff this fragment is exactly a text node.
	Text bool

	// ValueExpr is set instead of Template/Declarations for results that
	// have no clonable template at all — a component instantiation is
	// just a createComponent(...) call, not a node to clone and walk.
	// When set, a parent merging this result in (mergeNestedResult, the
	// Driver's top-level dispatch) must treat it as a dynamic child/value
	// rather than a walk-path declaration.
	ValueExpr jsexpr.Node
}
