package lower

import (
	"strings"

	"github.com/solidgo/dom-expressions-go/internal/jsxparse"
)

// spliceEmbeddedJSX re-scans raw — the source text of a `{...}` child
// expression container — for JSX nested inside it, the way a render
// prop passes one: `item => <li>{item}</li>`. The hand-rolled child
// parser captures everything between the outer braces as one opaque
// blob, since a nested brace looks identical to the container's own
// closing brace; it never recurses into that text looking for JSX. Any
// JSX found here is fully lowered (registering its own template and
// helpers into the same Block Context as everything else) and its
// materialized form substituted back in place, so `raw` ends up
// carrying real emitted code instead of an unlowered JSX literal.
// Text with no JSX in it is returned unchanged.
func (e *Engine) spliceEmbeddedJSX(raw string) string {
	program, parseErr := jsxparse.Parse(raw, "", e.Opts.StaticMarker)
	if parseErr != nil || len(program) == 0 {
		return raw
	}

	var out strings.Builder
	for _, te := range program {
		out.WriteString(te.Before)
		nested := e.LowerNode(te.Root, Info{})
		out.WriteString(e.RenderInline(nested))
	}
	out.WriteString(program[len(program)-1].After)
	return out.String()
}
