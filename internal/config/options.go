// Package config holds the per-compilation transform options record,
// modeled on esbuild's internal/config.JSXOptions field-by-field shape.
package config

// Generate selects the backend that serializes the shared IR.
type Generate uint8

const (
	GenerateDOM Generate = iota
	GenerateSSR
	GenerateUniversal
)

func ParseGenerate(s string) (Generate, bool) {
	switch s {
	case "", "dom":
		return GenerateDOM, true
	case "ssr":
		return GenerateSSR, true
	case "universal":
		return GenerateUniversal, true
	default:
		return GenerateDOM, false
	}
}

// Options is the transform options record. It is fixed for the
// duration of one compilation.
type Options struct {
	// ModuleName is the identifier the emitted imports target.
	ModuleName string

	// Generate selects dom, ssr, or universal lowering rules.
	Generate Generate

	// Hydratable is passed as the second argument of every emitted
	// template(...) call. Inserts and SSR output carry no hydration
	// markers of their own.
	Hydratable bool

	// DelegateEvents, when true, delegates events in the built-in and
	// user-supplied delegation sets globally instead of attaching
	// listeners per node.
	DelegateEvents bool

	// DelegatedEvents is the user-supplied addition to the built-in
	// delegated event set.
	DelegatedEvents []string

	// WrapConditionals, when true, wraps ternaries and short-circuits in
	// dynamic child positions in a memoizing call.
	WrapConditionals bool

	// ContextToCustomElements, when true, makes custom elements receive
	// the reactive context via a known property.
	ContextToCustomElements bool

	// StaticMarker is the opt-in comment that forces a JSX expression to
	// be treated as static ("@once" by default).
	StaticMarker string

	// EffectWrapper names the reactivity primitive the DOM backend wraps
	// each reactive DynamicBinding in. MemoWrapper names the one Child
	// Lowering wraps a conditional dynamic child in when WrapConditionals
	// is set.
	EffectWrapper string
	MemoWrapper   string

	// KnownConstants lists identifiers that are known-immutable
	// module-scope bindings, letting the is-dynamic classifier treat a
	// bare identifier reference as static. A full implementation would
	// derive this from scope analysis performed by the parser/binder;
	// callers that have that information populate it here.
	KnownConstants []string
}

// SolidDefaults returns the defaults a Solid-style runtime expects.
func SolidDefaults() Options {
	return Options{
		ModuleName:              "solid-js/web",
		Generate:                GenerateDOM,
		Hydratable:              false,
		DelegateEvents:          true,
		DelegatedEvents:         nil,
		WrapConditionals:        true,
		ContextToCustomElements: true,
		StaticMarker:            "@once",
		EffectWrapper:           "effect",
		MemoWrapper:             "memo",
	}
}
