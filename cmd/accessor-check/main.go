// Command accessor-check statically verifies that struct types expose
// Get/Is/Set accessors for their fields and Add/Remove pairs for slices.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"accessor-check/internal/analyze"
)

// app holds the state shared by all subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "accessor-check",
		Short: "Check accessor conventions of Go struct types",
		Long: `accessor-check loads Go packages and checks that every struct field has
a getter and setter (Get/Is + Set), and that slice fields have a getter plus
an adder and remover (Add/Remove).

Unconventional names can be declared in a YAML accessor table:

  version: "1"
  types:
    - type: graph.User
      ignore: [cachedAt]
      fields:
        categories: {adder: AddCategory, remover: RemoveCategory}`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newCheckCmd(),
		a.newAnalyzeCmd(),
		a.newSuggestCmd(),
	)

	return root
}

// load runs the package analyzer; no patterns means the current package tree.
func (a *app) load(patterns []string) (*analyze.TypeGraph, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	a.logger.Debug("loading packages", zap.Strings("patterns", patterns))

	return analyze.NewAnalyzer(a.logger).LoadPackages(patterns...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
