package main

import (
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/solidgo/dom-expressions-go/internal/config"
	"github.com/solidgo/dom-expressions-go/internal/diagnostics"
	"github.com/solidgo/dom-expressions-go/pkg/transform"
)

func newWatchCmd(cfgFile *string) *cobra.Command {
	var generate string

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-run transform on every .jsx/.tsx change under dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			log := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Prefix: "domexpr"})

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

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
			defer watcher.Close()

			if err := addTree(watcher, dir); err != nil {
				return err
			}

			log.Info("watching for changes", "dir", dir)
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					if !isJSXFile(event.Name) {
						continue
					}
					runOne(log, event.Name, opts)

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.Error("watcher error", "err", err)
				}
			}
		},
	}

	cmd.Flags().StringVar(&generate, "generate", "", "dom, ssr, or universal (overrides config)")
	return cmd
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func isJSXFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".jsx" || ext == ".tsx"
}

func runOne(log *charmlog.Logger, filename string, opts config.Options) {
	source, err := os.ReadFile(filename)
	if err != nil {
		log.Error("read failed", "file", filename, "err", err)
		return
	}
	result := transform.Transform(string(source), filename, opts)
	if !result.OK {
		diagnostics.Report(filename, result.Diagnostics)
		return
	}
	log.Info("transformed", "file", filename, "bytes", len(result.Code))
}
