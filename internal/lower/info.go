// Package lower implements the recursive descent at the heart of the
// engine: Element Lowering and Component Lowering, dispatched by tag
// classification and composed through child lowering. Lowering
// functions here are pure with respect to their inputs except for the
// single threaded *blockctx.Context and *logger.Log, mirroring how
// esbuild's js_parser visits *js_ast.EJSXElement nodes and mutates
// per-file registries (p.importRecordsForCurrentPart, symbol tables)
// while returning a new expression.
package lower

// Info carries hints threaded through a lowering call about the
// position of the node being lowered.
type Info struct {
	TopLevel       bool
	LastElement    bool
	SkipID         bool
	ComponentChild bool
	FragmentChild  bool
}
