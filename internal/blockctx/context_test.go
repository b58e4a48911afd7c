package blockctx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidgo/dom-expressions-go/internal/blockctx"
)

func TestRegisterHelperIsIdempotentAndOrdered(t *testing.T) {
	ctx := blockctx.New()
	ctx.RegisterHelper("template")
	ctx.RegisterHelper("insert")
	ctx.RegisterHelper("template")

	assert.Equal(t, []string{"template", "insert"}, ctx.Helpers())
}

func TestRegisterDelegateIsIdempotentAndOrdered(t *testing.T) {
	ctx := blockctx.New()
	ctx.RegisterDelegate("click")
	ctx.RegisterDelegate("input")
	ctx.RegisterDelegate("click")

	assert.Equal(t, []string{"click", "input"}, ctx.Delegates())
}

func TestRegisterTemplateDeduplicatesByHTML(t *testing.T) {
	ctx := blockctx.New()
	id1 := ctx.RegisterTemplate("<div></div>", false)
	id2 := ctx.RegisterTemplate("<span></span>", false)
	id3 := ctx.RegisterTemplate("<div></div>", false)

	assert.Equal(t, id1, id3)
	assert.NotEqual(t, id1, id2)
	assert.Len(t, ctx.Templates(), 2)
}

func TestGenerateUIDIsMonotonic(t *testing.T) {
	ctx := blockctx.New()
	a := ctx.GenerateUID("el$")
	b := ctx.GenerateUID("el$")
	assert.NotEqual(t, a, b)
}
