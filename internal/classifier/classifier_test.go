package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidgo/dom-expressions-go/internal/classifier"
	"github.com/solidgo/dom-expressions-go/internal/jsxast"
)

func TestIsComponent(t *testing.T) {
	assert.True(t, classifier.IsComponent("Button", false))
	assert.True(t, classifier.IsComponent("Ctx.Provider", false))
	assert.True(t, classifier.IsComponent("div", true))
	assert.False(t, classifier.IsComponent("div", false))
	assert.False(t, classifier.IsComponent("input", false))
}

func TestIsBuiltIn(t *testing.T) {
	assert.True(t, classifier.IsBuiltIn("For"))
	assert.True(t, classifier.IsBuiltIn("Show"))
	assert.False(t, classifier.IsBuiltIn("Button"))
}

func TestIsVoidElement(t *testing.T) {
	assert.True(t, classifier.IsVoidElement("input"))
	assert.True(t, classifier.IsVoidElement("br"))
	assert.False(t, classifier.IsVoidElement("div"))
}

func TestIsCustomElement(t *testing.T) {
	assert.True(t, classifier.IsCustomElement("my-widget"))
	assert.False(t, classifier.IsCustomElement("div"))
}

func TestAttributeAliasSuppressedForSVG(t *testing.T) {
	assert.Equal(t, "class", classifier.AttributeAlias("className", false))
	assert.Equal(t, "className", classifier.AttributeAlias("className", true))
	assert.Equal(t, "for", classifier.AttributeAlias("htmlFor", false))
}

func TestPropertyVsAttribute(t *testing.T) {
	assert.True(t, classifier.PropertyVsAttribute("value", "input"))
	assert.True(t, classifier.PropertyVsAttribute("selected", "option"))
	assert.False(t, classifier.PropertyVsAttribute("selected", "div"))
	assert.False(t, classifier.PropertyVsAttribute("data-x", "div"))
}

func TestToEventName(t *testing.T) {
	assert.Equal(t, "click", classifier.ToEventName("onClick"))
	assert.Equal(t, "pointerdown", classifier.ToEventName("onPointerDown"))
}

func TestIsDelegatedEvent(t *testing.T) {
	assert.True(t, classifier.IsDelegatedEvent("click"))
	assert.False(t, classifier.IsDelegatedEvent("wheel"))
}

func TestIsDynamic(t *testing.T) {
	lit := jsxast.Expr{Kind: jsxast.ExprLiteral, Raw: `"hello"`}
	assert.False(t, classifier.IsDynamic(lit, nil))

	ident := jsxast.Expr{Kind: jsxast.ExprIdentifier, Raw: "count"}
	assert.True(t, classifier.IsDynamic(ident, nil))

	known := map[string]struct{}{"PI": {}}
	knownIdent := jsxast.Expr{Kind: jsxast.ExprIdentifier, Raw: "PI"}
	assert.False(t, classifier.IsDynamic(knownIdent, known))

	call := jsxast.Expr{Kind: jsxast.ExprOther, Raw: "count()"}
	assert.True(t, classifier.IsDynamic(call, nil))

	annotated := jsxast.Expr{Kind: jsxast.ExprOther, Raw: "count()", StaticallyAnnotated: true}
	assert.False(t, classifier.IsDynamic(annotated, nil))
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;tag&gt;", classifier.EscapeHTML("a & b <tag>", false))
	assert.Equal(t, "say &quot;hi&quot;", classifier.EscapeHTML(`say "hi"`, true))
	assert.Equal(t, `say "hi"`, classifier.EscapeHTML(`say "hi"`, false))
}

func TestTrimWhitespace(t *testing.T) {
	result, ok := classifier.TrimWhitespace("  \n  \t ")
	assert.False(t, ok)
	assert.Equal(t, "", result)

	result, ok = classifier.TrimWhitespace("hello   world")
	assert.True(t, ok)
	assert.Equal(t, "hello world", result)

	result, ok = classifier.TrimWhitespace("  hi  ")
	assert.True(t, ok)
	assert.Equal(t, " hi ", result)
}
