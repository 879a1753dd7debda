package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/cxxbind/cmd/cxxbind/commands"
	"github.com/teranos/cxxbind/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cxxbind",
	Short: "cxxbind - C++ binding surface analyzer and generator",
	Long: `cxxbind - Analyze a parsed C++ API surface and generate bindings.

cxxbind consumes the declaration dump of an external C++ parser, maps the
declarations to target-language symbols, detects the name collisions the
translation introduces, and emits binding declarations per target language.
Symbols that cannot be safely translated are excluded by rule instead of
silently overwritten.

Available commands:
  generate - Generate binding files for the configured targets
  surface  - Print the binding-surface report for the declaration model
  version  - Show version information

Examples:
  cxxbind generate                       # Generate using cxxbind.toml
  cxxbind generate --targets rust        # Generate Rust bindings only
  cxxbind surface                        # Inspect the surface before generating`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.SurfaceCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
