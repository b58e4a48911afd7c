package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/solidgo/dom-expressions-go/internal/config"
	"github.com/solidgo/dom-expressions-go/internal/diagnostics"
	"github.com/solidgo/dom-expressions-go/pkg/transform"
)

func newTransformCmd(cfgFile *string) *cobra.Command {
	var generate string
	var out string

	cmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "Lower a single JSX source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Prefix: "domexpr"})

			opts, err := loadOptions(*cfgFile)
			if err != nil {
				return err
			}
			if generate != "" {
				gen, ok := config.ParseGenerate(generate)
				if !ok {
					return fmt.Errorf("unknown --generate value %q", generate)
				}
				opts.Generate = gen
			}

			filename := args[0]
			source, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("reading %s: %w", filename, err)
			}

			result := transform.Transform(string(source), filename, opts)
			if !result.OK {
				diagnostics.Report(filename, result.Diagnostics)
				return fmt.Errorf("transform of %s failed with %d diagnostic(s)", filename, len(result.Diagnostics))
			}

			if out == "" {
				fmt.Println(result.Code)
				return nil
			}
			logger.Info("writing output", "file", out)
			return os.WriteFile(out, []byte(result.Code), 0o644)
		},
	}

	cmd.Flags().StringVar(&generate, "generate", "", "dom, ssr, or universal (overrides config)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	return cmd
}
