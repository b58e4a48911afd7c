// Package blockctx implements the per-compilation-unit mutable registry
// of requested runtime helpers, event delegations, and synthesized
// templates, plus the fresh identifier counter. It is single-threaded
// per compilation unit and append-only: nothing ever removes an entry
// once registered.
package blockctx

// Template is one synthesized template literal with its stable,
// registration-order identifier.
type Template struct {
	ID         string
	HTML       string
	Hydratable bool
}

// Context is one Block Context, owned by exactly one compilation.
type Context struct {
	helperOrder []string
	helperSet   map[string]struct{}

	delegateOrder []string
	delegateSet   map[string]struct{}

	templates   []Template
	templateIDs map[string]string // html -> id, for de-duplication

	counter int
}

func New() *Context {
	return &Context{
		helperSet:   map[string]struct{}{},
		delegateSet: map[string]struct{}{},
		templateIDs: map[string]string{},
	}
}

// RegisterHelper idempotently records that the emitted code needs
// `name` imported from the runtime module.
func (c *Context) RegisterHelper(name string) {
	if _, ok := c.helperSet[name]; ok {
		return
	}
	c.helperSet[name] = struct{}{}
	c.helperOrder = append(c.helperOrder, name)
}

// Helpers returns the registered helper names in first-encounter order,
// so emitted output is deterministic across runs of the same input.
func (c *Context) Helpers() []string {
	return append([]string(nil), c.helperOrder...)
}

// RegisterDelegate idempotently records that `event` needs a
// document-level delegated listener.
func (c *Context) RegisterDelegate(event string) {
	if _, ok := c.delegateSet[event]; ok {
		return
	}
	c.delegateSet[event] = struct{}{}
	c.delegateOrder = append(c.delegateOrder, event)
}

// Delegates returns the registered delegated event names in
// first-encounter order.
func (c *Context) Delegates() []string {
	return append([]string(nil), c.delegateOrder...)
}

// RegisterTemplate returns a stable identifier for html; equal strings
// return equal ids, so two elements with identical static markup share
// one clone source.
func (c *Context) RegisterTemplate(html string, hydratable bool) string {
	if id, ok := c.templateIDs[html]; ok {
		return id
	}
	id := c.GenerateUID("tmpl$")
	c.templateIDs[html] = id
	c.templates = append(c.templates, Template{ID: id, HTML: html, Hydratable: hydratable})
	return id
}

// Templates returns the synthesized templates in registration order.
func (c *Context) Templates() []Template {
	return append([]Template(nil), c.templates...)
}

// GenerateUID returns "<prefix><n>" where n is the next value of the
// monotonically increasing counter.
func (c *Context) GenerateUID(prefix string) string {
	id := prefix + itoa(c.counter)
	c.counter++
	return id
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
