// Package classifier implements the pure, stateless predicates that
// decide how a JSX tag or attribute should lower: tag classification,
// attribute aliasing, event-name extraction, HTML escaping, and
// whitespace normalization. None of these functions touch the Block
// Context or Options beyond what is passed explicitly; they are safe to
// call in any order and any number of times.
package classifier

import (
	"strings"
	"unicode"

	"github.com/solidgo/dom-expressions-go/internal/jsxast"
)

// IsComponent reports whether tagName should be lowered as a component
// reference rather than a host element: true iff the first character is
// uppercase, the tag contains a dot (member expression), or the tag is
// itself a dynamic expression.
func IsComponent(tagName string, tagIsDynamicExpr bool) bool {
	if tagIsDynamicExpr {
		return true
	}
	if strings.ContainsRune(tagName, '.') {
		return true
	}
	r, ok := firstRune(tagName)
	return ok && unicode.IsUpper(r)
}

// IsBuiltIn reports whether tagName names one of the fixed control-flow
// components (For, Show, Switch, ...).
func IsBuiltIn(tagName string) bool {
	_, ok := builtins[tagName]
	return ok
}

// IsSVGElement reports membership in the recognized SVG tag set.
func IsSVGElement(tagName string) bool {
	_, ok := svgElements[tagName]
	return ok
}

// IsVoidElement reports membership in the HTML void-element set.
func IsVoidElement(tagName string) bool {
	_, ok := voidElements[tagName]
	return ok
}

// IsCustomElement reports whether tagName contains a hyphen, the
// definition used wherever lowering needs to know it's targeting a
// custom element.
func IsCustomElement(tagName string) bool {
	return strings.ContainsRune(tagName, '-')
}

// IsNamespacedAttr reports whether name carries a namespace prefix
// (on:, style:, and so on).
func IsNamespacedAttr(name jsxast.AttrName) bool {
	return name.Namespace != ""
}

// RecognizedNamespace reports whether a namespace prefix is one of the
// prefixes given special handling during attribute lowering (on,
// oncapture, use, prop, attr, class, style, xlink, xmlns). Attributes
// with any other namespace are emitted verbatim.
func RecognizedNamespace(ns string) bool {
	_, ok := namespacedAttrPrefixes[ns]
	return ok
}

// AttributeAlias maps a JSX attribute key to its DOM attribute name.
// isSVG suppresses aliasing entirely, since SVG attribute names are
// already case-sensitive and don't follow the HTML aliasing table.
func AttributeAlias(key string, isSVG bool) string {
	if isSVG {
		return key
	}
	if alias, ok := aliases[key]; ok {
		return alias
	}
	return key
}

// PropertyVsAttribute decides whether a dynamic value for `key` on `tag`
// should be bound via DOM property assignment (true) or setAttribute
// (false).
func PropertyVsAttribute(key, tagName string) bool {
	if _, ok := globalProperties[key]; ok {
		return true
	}
	if props, ok := childProperties[tagName]; ok {
		if _, ok := props[key]; ok {
			return true
		}
	}
	return false
}

// ToEventName strips a leading "on" (case-insensitively) and lowercases
// the remainder, turning an attribute key like "onClick" into "click".
func ToEventName(key string) string {
	if len(key) < 2 {
		return strings.ToLower(key)
	}
	if (key[0] == 'o' || key[0] == 'O') && (key[1] == 'n' || key[1] == 'N') {
		return strings.ToLower(key[2:])
	}
	return strings.ToLower(key)
}

// IsDelegatedEvent reports membership in the built-in delegated event
// set, independent of user-supplied additions (those are checked by the
// caller against Options.DelegatedEvents).
func IsDelegatedEvent(eventName string) bool {
	_, ok := delegatedEvents[eventName]
	return ok
}

// IsDynamic conservatively classifies an expression as static or
// dynamic: literals are static, a statically-annotated expression is
// static, a bare identifier is static only if listed in knownConstants,
// and everything else is dynamic. The marker itself (default "@once",
// configurable via Options.StaticMarker) is already resolved into
// expr.StaticallyAnnotated by the parser, which is the only place that
// knows the configured marker text — this function just reads the
// result. knownConstants is the set of identifiers the caller has
// determined are known-immutable module-scope bindings.
func IsDynamic(expr jsxast.Expr, knownConstants map[string]struct{}) bool {
	if expr.StaticallyAnnotated {
		return false
	}
	switch expr.Kind {
	case jsxast.ExprLiteral:
		return false
	case jsxast.ExprIdentifier:
		if knownConstants != nil {
			if _, ok := knownConstants[strings.TrimSpace(expr.Raw)]; ok {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// IsConditionalExpr reports whether raw's top-level form is a ternary
// (`cond ? a : b`) or a logical short-circuit (`a && b`, `a || b`) —
// the shapes a wrap_conditionals option memoizes before handing to
// insert(), since re-evaluating the whole expression on every dependent
// signal change would otherwise re-run both branches' side effects.
// Operators nested inside parens, brackets, braces, or string/template
// literals don't count — only ones at the expression's own depth do.
func IsConditionalExpr(raw string) bool {
	depth := 0
	var inString rune
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if inString != 0 {
			if r == '\\' {
				i++
			} else if r == inString {
				inString = 0
			}
			continue
		}
		switch r {
		case '"', '\'', '`':
			inString = r
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '?':
			if depth == 0 && !(i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '?')) {
				return true
			}
		case '&':
			if depth == 0 && i+1 < len(runes) && runes[i+1] == '&' {
				return true
			}
		case '|':
			if depth == 0 && i+1 < len(runes) && runes[i+1] == '|' {
				return true
			}
		}
	}
	return false
}

// EscapeHTML replaces &, <, > always, and additionally " when isAttr is
// true. No other characters are escaped.
func EscapeHTML(text string, isAttr bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			if isAttr {
				b.WriteString("&quot;")
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrimWhitespace collapses runs of ASCII whitespace to a single space,
// and reports ok=false (meaning "drop this text node") when the input
// is whitespace-only AND spans a line break, matching how JSX itself
// treats pure-formatting whitespace between tags.
func TrimWhitespace(text string) (result string, ok bool) {
	spansLineBreak := strings.ContainsAny(text, "\n\r")
	isWhitespaceOnly := strings.TrimFunc(text, isASCIISpace) == ""

	if isWhitespaceOnly && spansLineBreak {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(text))
	prevWasSpace := false
	for _, r := range text {
		if isASCIISpace(r) {
			if !prevWasSpace {
				b.WriteRune(' ')
				prevWasSpace = true
			}
		} else {
			b.WriteRune(r)
			prevWasSpace = false
		}
	}
	return b.String(), true
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
