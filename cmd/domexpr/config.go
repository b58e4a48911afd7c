package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/solidgo/dom-expressions-go/internal/config"
)

// loadOptions reads Transform Options from a config file (if any) via
// Viper, layering them over SolidDefaults — the pattern
// open-platform-model-cli's command layer uses for merging file config
// with built-in defaults.
func loadOptions(cfgFile string) (config.Options, error) {
	opts := config.SolidDefaults()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".domexpr")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("DOMEXPR")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// No config file: DOMEXPR_* environment variables still apply.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return opts, fmt.Errorf("reading config: %w", err)
		}
	}

	if v.IsSet("module_name") {
		opts.ModuleName = v.GetString("module_name")
	}
	if v.IsSet("generate") {
		gen, ok := config.ParseGenerate(v.GetString("generate"))
		if !ok {
			return opts, fmt.Errorf("unknown generate mode %q", v.GetString("generate"))
		}
		opts.Generate = gen
	}
	if v.IsSet("hydratable") {
		opts.Hydratable = v.GetBool("hydratable")
	}
	if v.IsSet("delegate_events") {
		opts.DelegateEvents = v.GetBool("delegate_events")
	}
	if v.IsSet("delegated_events") {
		opts.DelegatedEvents = v.GetStringSlice("delegated_events")
	}
	if v.IsSet("wrap_conditionals") {
		opts.WrapConditionals = v.GetBool("wrap_conditionals")
	}
	if v.IsSet("context_to_custom_elements") {
		opts.ContextToCustomElements = v.GetBool("context_to_custom_elements")
	}
	if v.IsSet("static_marker") {
		opts.StaticMarker = v.GetString("static_marker")
	}
	if v.IsSet("effect_wrapper") {
		opts.EffectWrapper = v.GetString("effect_wrapper")
	}
	if v.IsSet("memo_wrapper") {
		opts.MemoWrapper = v.GetString("memo_wrapper")
	}
	if v.IsSet("known_constants") {
		opts.KnownConstants = v.GetStringSlice("known_constants")
	}

	return opts, nil
}
