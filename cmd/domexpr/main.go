// Command domexpr is the CLI entry point (SPEC_FULL.md's AMBIENT
// STACK), a Cobra command tree with `transform` and `watch`
// subcommands, config loaded through Viper, and fsnotify-driven watch
// mode — the shape open-platform-model-cli's cmd/ tree uses for its
// own Cobra root command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "domexpr",
		Short: "Lower JSX into fine-grained reactive DOM/SSR code",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.domexpr.yaml)")

	root.AddCommand(newTransformCmd(&cfgFile))
	root.AddCommand(newWatchCmd(&cfgFile))
	return root
}
