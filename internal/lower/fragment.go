package lower

import (
	"github.com/solidgo/dom-expressions-go/internal/ir"
	"github.com/solidgo/dom-expressions-go/internal/jsxast"
)

// LowerFragment splices children in place, producing no template
// wrapper node of its own. The result has
// no ID, no TagName, and no opening/closing tag text — it is pure
// accumulated template/declarations/expressions/dynamics from its
// children, to be merged into whatever parent is assembling them. A
// Fragment has no root node of its own to address, so any child that
// needs to insert directly against it falls back to ir.RootSentinel —
// a known limitation, since a Fragment's real insertion point is
// whatever the Fragment is itself spliced into (see DESIGN.md).
func (e *Engine) LowerFragment(fr *jsxast.Fragment, info Info) ir.TransformResult {
	result := ir.TransformResult{}
	noParent := func() string { return "" }
	e.lowerChildren(fr.Children, noParent, false, &result)
	return result
}
