package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidgo/dom-expressions-go/internal/config"
	"github.com/solidgo/dom-expressions-go/pkg/transform"
)

func TestStaticElementProducesZeroDynamics(t *testing.T) {
	result := transform.Transform(`<div class="hello">world</div>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, `<div class=\"hello\">world</div>`)
	assert.Contains(t, result.Code, "template(")
	assert.NotContains(t, result.Code, "effect(")
}

func TestDynamicClassAndTextChild(t *testing.T) {
	result := transform.Transform(`<div class={style()}>{count()}</div>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "<!>")
	assert.Contains(t, result.Code, "insert(")
	assert.Contains(t, result.Code, "effect(")
	assert.Contains(t, result.Code, "className(")
}

func TestUserComponentWithStaticAndChildrenProps(t *testing.T) {
	result := transform.Transform(`<Button onClick={handler}>Click me</Button>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "createComponent(Button")
	assert.Contains(t, result.Code, "onClick")
	// handler is a bare identifier; the conservative is-dynamic rule
	// (when in doubt, treat as dynamic) makes it a getter rather than a
	// plain field.
	assert.Contains(t, result.Code, `get children() { return "Click me"; }`)
}

func TestVoidElementWithNoChildren(t *testing.T) {
	result := transform.Transform(`<input disabled/>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)
	assert.Contains(t, result.Code, "<input disabled>")
}

func TestVoidElementWithChildrenIsAnError(t *testing.T) {
	result := transform.Transform(`<input disabled>{oops}</input>`, "app.jsx", config.SolidDefaults())
	assert.False(t, result.OK)
	require.NotEmpty(t, result.Diagnostics)
}

func TestSVGNamespacedAttributePreservesVerbatim(t *testing.T) {
	result := transform.Transform(`<svg><use xlink:href="#id"/></svg>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)
	assert.Contains(t, result.Code, `xlink:href=\"#id\"`)
}

func TestSSRBackendEmitsTaggedTemplate(t *testing.T) {
	opts := config.SolidDefaults()
	opts.Generate = config.GenerateSSR
	result := transform.Transform(`<div class={style()}>{count()}</div>`, "app.jsx", opts)
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	// The helper import comes first; the ssr tagged template follows it.
	assert.True(t, strings.HasPrefix(result.Code, "import {"))
	assert.Contains(t, result.Code, "\nssr`")
	assert.Contains(t, result.Code, "escape(")
	assert.NotContains(t, result.Code, "effect(")
}

func TestTopLevelComponentReturnsComponentValueDirectly(t *testing.T) {
	result := transform.Transform(`<Foo/>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "createComponent(Foo")
	// A component has no template of its own: there must be no clone of
	// an empty-string template standing in for it.
	assert.NotContains(t, result.Code, `template("")`)
	assert.NotContains(t, result.Code, "tmpl$")
}

func TestComponentNestedInsideNativeElementIsInserted(t *testing.T) {
	result := transform.Transform(`<div><Foo/></div>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "createComponent(Foo")
	// insert() must target the div's own root clone variable, not an
	// undefined placeholder — the div has no dynamic attribute of its
	// own, so its root id is only ever demanded by this child.
	assert.Contains(t, result.Code, "const el$0 = tmpl$")
	assert.Contains(t, result.Code, "insert(el$0, ")
	assert.NotContains(t, result.Code, "$root")
	// A lone dynamic/component child needs its own <!> marker since it
	// has no static sibling to anchor firstChild/lastChild traversal on.
	assert.Contains(t, result.Code, "<!>")
}

func TestDynamicTextChildOfElementWithNoAttributesTargetsRealRoot(t *testing.T) {
	result := transform.Transform(`<div>{count()}</div>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "const el$0 = tmpl$")
	assert.Contains(t, result.Code, "insert(el$0, ")
	assert.NotContains(t, result.Code, "$root")
}

func TestComponentAsLeadingChildAmongStaticSiblingsNeedsNoMarker(t *testing.T) {
	result := transform.Transform(`<div><Foo/> world</div>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "createComponent(Foo")
	assert.Contains(t, result.Code, "insert(el$0, ")
	assert.NotContains(t, result.Code, "<!>")
	assert.NotContains(t, result.Code, "$root")
}

func TestForBuiltinLowersToHelperCall(t *testing.T) {
	result := transform.Transform(`<For each={items()}>{item => <li>{item}</li>}</For>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "createComponent(For")
	assert.Contains(t, result.Code, "get each() { return items(); }")
}

func TestShowBuiltinUnrecognizedPropWarnsButSucceeds(t *testing.T) {
	result := transform.Transform(`<Show when={ready()} surprise="x">hi</Show>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)
	assert.Contains(t, result.Code, "createComponent(Show")
	assert.NotEmpty(t, result.Diagnostics, "an unrecognized built-in prop should produce a diagnostic")
}

func TestSwitchWithNonMatchChildIsAnError(t *testing.T) {
	result := transform.Transform(`<Switch><div/></Switch>`, "app.jsx", config.SolidDefaults())
	assert.False(t, result.OK)
	require.NotEmpty(t, result.Diagnostics)
}

func TestUserComponentSpreadWrapsDescriptorInMergeProps(t *testing.T) {
	result := transform.Transform(`<Button {...rest} label="ok"/>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "mergeProps(rest,")
	assert.Contains(t, result.Code, `label: "ok"`)
}

func TestConditionalDynamicChildIsMemoWrapped(t *testing.T) {
	result := transform.Transform(`<div>{ready() ? <Yes/> : <No/>}</div>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "insert(el$0, memo(() =>")
	assert.Contains(t, result.Code, "createComponent(Yes")
	assert.Contains(t, result.Code, "createComponent(No")
}

func TestNonConditionalDynamicChildIsNotMemoWrapped(t *testing.T) {
	result := transform.Transform(`<div>{count()}</div>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.NotContains(t, result.Code, "memo(")
	assert.Contains(t, result.Code, "insert(el$0, () => count()")
}

func TestWrapConditionalsDisabledLeavesConditionalUnwrapped(t *testing.T) {
	opts := config.SolidDefaults()
	opts.WrapConditionals = false
	result := transform.Transform(`<div>{ready() ? <Yes/> : <No/>}</div>`, "app.jsx", opts)
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.NotContains(t, result.Code, "memo(")
}

func TestCustomStaticMarkerControlsStaticClassification(t *testing.T) {
	opts := config.SolidDefaults()
	opts.StaticMarker = "frozen"
	result := transform.Transform("<Button value={/* frozen */ count()}/>", "app.jsx", opts)
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	// Annotated with the configured marker: a plain field, not a lazy
	// getter.
	assert.Contains(t, result.Code, "value: count()")
	assert.NotContains(t, result.Code, "get value()")
}

func TestUnconfiguredMarkerTextIsNotTreatedAsStatic(t *testing.T) {
	opts := config.SolidDefaults()
	opts.StaticMarker = "frozen"
	result := transform.Transform("<Button value={/* @once */ count()}/>", "app.jsx", opts)
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	// "@once" is not the configured marker here, so the expression stays
	// dynamic.
	assert.Contains(t, result.Code, "get value()")
}

func TestDefaultStaticMarkerStillAppliesWhenUnconfigured(t *testing.T) {
	result := transform.Transform("<Button value={/* @once */ count()}/>", "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)
	assert.Contains(t, result.Code, "value: count()")
}

func TestContextToCustomElementsAssignsOwnerOnCustomElementRoot(t *testing.T) {
	result := transform.Transform(`<my-widget label="hi"/>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "_$owner = getOwner()")
}

func TestContextToCustomElementsDisabledEmitsNoOwnerAssignment(t *testing.T) {
	opts := config.SolidDefaults()
	opts.ContextToCustomElements = false
	result := transform.Transform(`<my-widget label="hi"/>`, "app.jsx", opts)
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.NotContains(t, result.Code, "_$owner")
}

func TestContextToCustomElementsAppliesToNestedCustomElement(t *testing.T) {
	// The nested custom element needs a dynamic attribute of its own so
	// it actually gets a declared id to walk to (a purely static custom
	// element with no one addressing it directly is spliced as inert
	// template text with no declaration at all).
	result := transform.Transform(`<div><my-widget value={x()}/></div>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	assert.Contains(t, result.Code, "_$owner = getOwner()")
}

func TestNestedJSXInsideForCallbackChildIsLowered(t *testing.T) {
	result := transform.Transform(`<For each={items()}>{item => <li>{item}</li>}</For>`, "app.jsx", config.SolidDefaults())
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)

	// The inner <li> must get its own template and dynamic-text insert,
	// not be spliced through as unlowered JSX source.
	assert.Contains(t, result.Code, "<li>")
	assert.Contains(t, result.Code, "insert(")
	assert.NotContains(t, result.Code, "<li>{item}</li>")
}

func TestSourceWithoutJSXIsPassedThroughUnchanged(t *testing.T) {
	src := "const x = 1 + 2;\n"
	result := transform.Transform(src, "app.ts", config.SolidDefaults())
	require.True(t, result.OK)
	assert.Equal(t, src, result.Code)
}
