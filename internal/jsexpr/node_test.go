package jsexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidgo/dom-expressions-go/internal/jsexpr"
)

func TestObjectPrint(t *testing.T) {
	obj := jsexpr.Object{Props: []jsexpr.Prop{
		{Kind: jsexpr.PropField, Key: "onClick", Value: jsexpr.Ident("handler")},
		{Kind: jsexpr.PropGetter, Key: "children", Value: jsexpr.Str("Click me")},
	}}
	assert.Equal(t, `{ onClick: handler, get children() { return "Click me"; } }`, obj.Print())
	assert.Equal(t, "{}", jsexpr.Object{}.Print())
}

func TestCallPrint(t *testing.T) {
	call := jsexpr.Call{Callee: jsexpr.Ident("insert"), Args: []jsexpr.Node{jsexpr.Ident("el$1"), jsexpr.Arrow{Body: jsexpr.Raw("count()")}}}
	assert.Equal(t, "insert(el$1, () => count())", call.Print())
}

func TestTaggedTemplatePrint(t *testing.T) {
	tt := jsexpr.TaggedTemplate{
		Tag:    jsexpr.Ident("ssr"),
		Quasis: []string{"<div>", "</div>"},
		Exprs:  []jsexpr.Node{jsexpr.Call{Callee: jsexpr.Ident("escape"), Args: []jsexpr.Node{jsexpr.Ident("count"), jsexpr.Bool(false)}}},
	}
	assert.Equal(t, "ssr`<div>${escape(count, false)}</div>`", tt.Print())
}

func TestStrEscaping(t *testing.T) {
	assert.Equal(t, `"say \"hi\""`, jsexpr.Str(`say "hi"`).Print())
}
