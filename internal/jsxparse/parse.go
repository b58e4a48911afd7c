// Package jsxparse is a small JSX tokenizer/recursive-descent parser
// that turns JSX source text into the typed jsxast tree the lowering
// engine consumes. It exists so end-to-end scenarios can be written as
// plain JSX source strings instead of hand-built jsxast trees; it is
// not part of the lowering engine itself. Byte-scanning style is
// grounded on esbuild's internal/js_lexer approach to single-pass,
// allocation-light tokenizing.
package jsxparse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/solidgo/dom-expressions-go/internal/jsxast"
	"github.com/solidgo/dom-expressions-go/internal/logger"
)

// ParseError reports a malformed JSX region with its byte offset.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string { return e.Msg }

// Parse scans source for every top-level JSX element or fragment and
// returns the program as an ordered list of TopLevelExpr. filename is
// accepted for interface symmetry with a host's TSX/JSX mode selection
// but does not change parsing behavior here. staticMarker is the
// comment (e.g. "/* @once */") that forces a JSX expression static; an
// empty string falls back to the default.
func Parse(source, filename, staticMarker string) ([]jsxast.TopLevelExpr, *ParseError) {
	if staticMarker == "" {
		staticMarker = defaultStaticMarker
	}
	var out []jsxast.TopLevelExpr
	pos := 0
	lastEnd := 0

	for pos < len(source) {
		start := findCandidateStart(source, pos)
		if start < 0 {
			break
		}
		p := &parser{src: source, pos: start, staticMarker: staticMarker}
		node, err := p.parseElementOrFragment()
		if err != nil {
			pos = start + 1
			continue
		}
		out = append(out, jsxast.TopLevelExpr{
			Before: source[lastEnd:start],
			Root:   node,
			After:  "",
		})
		lastEnd = p.pos
		pos = p.pos
	}

	if len(out) > 0 {
		out[len(out)-1].After = source[lastEnd:]
	}

	return out, nil
}

// findCandidateStart locates the next '<' that looks like it opens a
// JSX expression rather than a comparison operator: the nearest
// preceding non-whitespace byte (if any) must be one of the characters
// that precede an expression position.
func findCandidateStart(src string, from int) int {
	for i := from; i < len(src); i++ {
		if src[i] != '<' {
			continue
		}
		j := i - 1
		for j >= 0 && isSpaceByte(src[j]) {
			j--
		}
		if j < 0 {
			return i
		}
		switch src[j] {
		case '(', '=', ',', '[', '{', ':', '?', '&', '|', '!':
			return i
		case '>':
			// An arrow function's expression body: "item => <li>...".
			if j > 0 && src[j-1] == '=' {
				return i
			}
		}
		if k := nextAfterLetter(src, j, i); k >= 0 {
			return k
		}
	}
	return -1
}

func nextAfterLetter(src string, j, candidate int) int {
	// Handles "return <JSX/>"; "=> <JSX/>" is recognized by
	// findCandidateStart itself.
	end := j + 1
	startWord := end
	for startWord > 0 && (isIdentByte(src[startWord-1])) {
		startWord--
	}
	word := src[startWord:end]
	if word == "return" {
		return candidate
	}
	return -1
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

type parser struct {
	src          string
	pos          int
	staticMarker string
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peekByte() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpaceByte(p.peekByte()) {
		p.pos++
	}
}

func (p *parser) fail(msg string) error {
	return fmt.Errorf("%s at offset %d", msg, p.pos)
}

// parseElementOrFragment expects the current byte to be '<'.
func (p *parser) parseElementOrFragment() (jsxast.Node, error) {
	loc := logger.Loc{Start: int32(p.pos)}
	if p.peekByte() != '<' {
		return nil, p.fail("expected '<'")
	}
	p.pos++

	if p.peekByte() == '>' {
		p.pos++
		children, err := p.parseChildren("")
		if err != nil {
			return nil, err
		}
		return &jsxast.Fragment{Loc: loc, Children: children}, nil
	}

	tagName, dynamic, err := p.parseTagName()
	if err != nil {
		return nil, err
	}

	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.peekByte() == '/' {
		p.pos++
		if p.peekByte() != '>' {
			return nil, p.fail("expected '/>'")
		}
		p.pos++
		return &jsxast.Element{Loc: loc, TagName: tagName, TagIsDynamicExpr: dynamic, Attributes: attrs, SelfClosing: true}, nil
	}
	if p.peekByte() != '>' {
		return nil, p.fail("expected '>'")
	}
	p.pos++

	children, err := p.parseChildren(tagName)
	if err != nil {
		return nil, err
	}
	return &jsxast.Element{Loc: loc, TagName: tagName, TagIsDynamicExpr: dynamic, Attributes: attrs, Children: children}, nil
}

func (p *parser) parseTagName() (string, bool, error) {
	if p.peekByte() == '{' {
		raw, err := p.parseBraced()
		if err != nil {
			return "", false, err
		}
		return strings.TrimSpace(raw), true, nil
	}
	start := p.pos
	for !p.eof() {
		b := p.peekByte()
		if isIdentByte(b) || b == '.' || b == '-' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", false, p.fail("expected tag name")
	}
	return p.src[start:p.pos], false, nil
}

func (p *parser) parseAttributes() ([]jsxast.AttrOrSpread, error) {
	var attrs []jsxast.AttrOrSpread
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.fail("unterminated tag")
		}
		b := p.peekByte()
		if b == '/' || b == '>' {
			return attrs, nil
		}
		if b == '{' {
			loc := logger.Loc{Start: int32(p.pos)}
			raw, err := p.parseBraced()
			if err != nil {
				return nil, err
			}
			trimmed := strings.TrimSpace(raw)
			if strings.HasPrefix(trimmed, "...") {
				inner := strings.TrimSpace(strings.TrimPrefix(trimmed, "..."))
				attrs = append(attrs, jsxast.AttrOrSpread{Spread: &jsxast.SpreadAttribute{
					Loc: loc, Expr: p.classify(inner, loc),
				}})
				continue
			}
			return nil, p.fail("unexpected '{' in attribute position")
		}

		name, err := p.parseAttrName()
		if err != nil {
			return nil, err
		}
		loc := logger.Loc{Start: int32(p.pos)}

		p.skipSpace()
		if p.peekByte() != '=' {
			attrs = append(attrs, jsxast.AttrOrSpread{Attribute: &jsxast.Attribute{
				Loc: loc, Name: name, Value: jsxast.AttrValue{Kind: jsxast.AttrValueAbsent},
			}})
			continue
		}
		p.pos++
		p.skipSpace()

		switch p.peekByte() {
		case '"', '\'':
			str, err := p.parseQuoted()
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, jsxast.AttrOrSpread{Attribute: &jsxast.Attribute{
				Loc: loc, Name: name, Value: jsxast.AttrValue{Kind: jsxast.AttrValueString, String: str},
			}})
		case '{':
			raw, err := p.parseBraced()
			if err != nil {
				return nil, err
			}
			exprLoc := logger.Loc{Start: int32(p.pos)}
			attrs = append(attrs, jsxast.AttrOrSpread{Attribute: &jsxast.Attribute{
				Loc: loc, Name: name,
				Value: jsxast.AttrValue{Kind: jsxast.AttrValueExpr, Expr: p.classify(strings.TrimSpace(raw), exprLoc)},
			}})
		default:
			return nil, p.fail("expected attribute value")
		}
	}
}

func (p *parser) parseAttrName() (jsxast.AttrName, error) {
	start := p.pos
	for !p.eof() && (isIdentByte(p.peekByte()) || p.peekByte() == '-') {
		p.pos++
	}
	if p.pos == start {
		return jsxast.AttrName{}, p.fail("expected attribute name")
	}
	first := p.src[start:p.pos]
	if p.peekByte() == ':' {
		p.pos++
		nameStart := p.pos
		for !p.eof() && (isIdentByte(p.peekByte()) || p.peekByte() == '-') {
			p.pos++
		}
		return jsxast.AttrName{Namespace: first, Name: p.src[nameStart:p.pos]}, nil
	}
	return jsxast.AttrName{Name: first}, nil
}

func (p *parser) parseQuoted() (string, error) {
	quote := p.peekByte()
	p.pos++
	start := p.pos
	for !p.eof() && p.peekByte() != quote {
		p.pos++
	}
	if p.eof() {
		return "", p.fail("unterminated string")
	}
	s := p.src[start:p.pos]
	p.pos++
	return s, nil
}

// parseBraced consumes a balanced `{ ... }` region, returning its inner
// text, tolerant of nested braces/strings/template literals.
func (p *parser) parseBraced() (string, error) {
	if p.peekByte() != '{' {
		return "", p.fail("expected '{'")
	}
	p.pos++
	start := p.pos
	depth := 1
	for !p.eof() && depth > 0 {
		b := p.peekByte()
		switch b {
		case '{':
			depth++
			p.pos++
		case '}':
			depth--
			p.pos++
		case '"', '\'', '`':
			if _, err := p.parseQuoted(); err != nil {
				return "", err
			}
		default:
			p.pos++
		}
	}
	if depth != 0 {
		return "", p.fail("unterminated '{'")
	}
	return p.src[start : p.pos-1], nil
}

func (p *parser) parseChildren(tagName string) ([]jsxast.Child, error) {
	var children []jsxast.Child
	textStart := p.pos

	flushText := func(end int) {
		if end > textStart {
			children = append(children, jsxast.Child{Kind: jsxast.ChildText, Text: p.src[textStart:end]})
		}
	}

	for {
		if p.eof() {
			return nil, p.fail("unterminated element, missing closing tag")
		}
		if p.peekByte() == '<' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/' {
			flushText(p.pos)
			p.pos += 2
			for !p.eof() && p.peekByte() != '>' {
				p.pos++
			}
			if p.eof() {
				return nil, p.fail("unterminated closing tag")
			}
			p.pos++
			return children, nil
		}
		if p.peekByte() == '<' {
			flushText(p.pos)
			node, err := p.parseElementOrFragment()
			if err != nil {
				return nil, err
			}
			switch n := node.(type) {
			case *jsxast.Element:
				children = append(children, jsxast.Child{Kind: jsxast.ChildElement, Element: n})
			case *jsxast.Fragment:
				children = append(children, jsxast.Child{Kind: jsxast.ChildFragment, Fragment: n})
			}
			textStart = p.pos
			continue
		}
		if p.peekByte() == '{' {
			flushText(p.pos)
			loc := logger.Loc{Start: int32(p.pos)}
			raw, err := p.parseBraced()
			if err != nil {
				return nil, err
			}
			trimmed := strings.TrimSpace(raw)
			switch {
			case trimmed == "" || (strings.HasPrefix(trimmed, "/*") && strings.Index(trimmed, "*/") == len(trimmed)-2):
				children = append(children, jsxast.Child{Kind: jsxast.ChildExprContainer, ExprContainer: nil})
			case strings.HasPrefix(trimmed, "..."):
				expr := p.classify(strings.TrimSpace(strings.TrimPrefix(trimmed, "...")), loc)
				children = append(children, jsxast.Child{Kind: jsxast.ChildSpread, Spread: &expr})
			default:
				expr := p.classify(trimmed, loc)
				children = append(children, jsxast.Child{Kind: jsxast.ChildExprContainer, ExprContainer: &expr})
			}
			textStart = p.pos
			continue
		}
		p.pos++
	}
}

// defaultStaticMarker matches config.SolidDefaults' StaticMarker: the
// bare marker name, without the surrounding comment delimiters a caller
// never has to supply.
const defaultStaticMarker = "@once"

// classify implements the upstream-collaborator classification step
// jsxast.Expr documents: literal / identifier / other, plus detection
// of the configured static-marker comment (p.staticMarker, wrapped in
// "/* ... */" the way Options.StaticMarker is always given bare).
func (p *parser) classify(raw string, loc logger.Loc) jsxast.Expr {
	bareMarker := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(p.staticMarker), "/*"), "*/"))
	marker := "/* " + strings.TrimSpace(bareMarker) + " */"
	trimmed := strings.TrimSpace(raw)
	annotated := false
	if strings.HasPrefix(trimmed, marker) {
		annotated = true
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
	}

	kind := jsxast.ExprOther
	switch {
	case isQuotedLiteral(trimmed) || isNumericLiteral(trimmed) || trimmed == "true" || trimmed == "false":
		kind = jsxast.ExprLiteral
	case isBareIdentifier(trimmed):
		kind = jsxast.ExprIdentifier
	}

	return jsxast.Expr{Loc: loc, Raw: trimmed, Kind: kind, StaticallyAnnotated: annotated}
}

func isQuotedLiteral(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')
}

func isNumericLiteral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != '-' {
			return false
		}
	}
	return true
}

func isBareIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' && r != '$' {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return false
		}
	}
	return true
}
