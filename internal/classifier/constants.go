// Constant tables behind the Classifier predicates: the reserved
// built-in tag names, element classification sets, and the attribute
// name/property tables a DOM runtime needs to bind things correctly.
package classifier

// builtins is the set of reserved component tags with special lowering.
var builtins = set(
	"For", "Show", "Switch", "Match", "Index", "Suspense", "Portal", "Dynamic", "ErrorBoundary",
)

// voidElements is the HTML void-element set.
var voidElements = set(
	"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr",
)

// svgElements is a representative ~80-entry SVG tag name set.
var svgElements = set(
	"svg", "altGlyph", "altGlyphDef", "altGlyphItem", "animate", "animateColor", "animateMotion",
	"animateTransform", "circle", "clipPath", "color-profile", "cursor", "defs", "desc", "ellipse",
	"feBlend", "feColorMatrix", "feComponentTransfer", "feComposite", "feConvolveMatrix",
	"feDiffuseLighting", "feDisplacementMap", "feDistantLight", "feDropShadow", "feFlood", "feFuncA",
	"feFuncB", "feFuncG", "feFuncR", "feGaussianBlur", "feImage", "feMerge", "feMergeNode",
	"feMorphology", "feOffset", "fePointLight", "feSpecularLighting", "feSpotLight", "feTile",
	"feTurbulence", "filter", "font", "font-face", "font-face-format", "font-face-name",
	"font-face-src", "font-face-uri", "foreignObject", "g", "glyph", "glyphRef", "hkern", "image",
	"line", "linearGradient", "marker", "mask", "metadata", "missing-glyph", "mpath", "path",
	"pattern", "polygon", "polyline", "radialGradient", "rect", "set", "stop", "switch", "symbol",
	"text", "textPath", "tref", "tspan", "use", "view", "vkern",
)

// aliases maps source attribute names to HTML attribute names. Not
// consulted for SVG elements.
var aliases = map[string]string{
	"className":         "class",
	"htmlFor":           "for",
	"crossOrigin":       "crossorigin",
	"formNoValidate":    "formnovalidate",
	"contentEditable":   "contenteditable",
	"noValidate":        "novalidate",
	"readOnly":          "readonly",
	"colSpan":           "colspan",
	"rowSpan":           "rowspan",
	"autoPlay":          "autoplay",
	"allowFullScreen":   "allowfullscreen",
	"allowTransparency": "allowtransparency",
	"isMap":             "ismap",
	"itemID":            "itemid",
	"itemRef":           "itemref",
	"itemProp":          "itemprop",
	"itemScope":         "itemscope",
	"itemType":          "itemtype",
}

// globalProperties is the set of attribute keys that should be bound
// via DOM property assignment rather than setAttribute when dynamic.
var globalProperties = set(
	"value", "checked", "textContent", "innerText", "innerHTML", "className", "id",
)

// childProperties maps a tag name to attribute keys that are
// per-tag property bindings (e.g. <option>.selected).
var childProperties = map[string]map[string]struct{}{
	"option": set("selected"),
	"input":  set("value", "checked", "indeterminate"),
	"select": set("value"),
}

// delegatedEvents is the exact built-in delegated event set.
var delegatedEvents = set(
	"beforeinput", "click", "dblclick", "contextmenu", "focusin", "focusout", "input", "keydown",
	"keyup", "mousedown", "mousemove", "mouseout", "mouseover", "mouseup", "pointerdown",
	"pointermove", "pointerout", "pointerover", "pointerup", "touchend", "touchmove", "touchstart",
)

// namespacedAttrPrefixes is the recognized set of `prefix:` shapes.
var namespacedAttrPrefixes = set(
	"on", "oncapture", "use", "prop", "attr", "class", "style", "xlink", "xmlns",
)

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}
