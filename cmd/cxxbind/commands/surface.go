package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/cxxbind/bind"
	"github.com/teranos/cxxbind/decl"
	"github.com/teranos/cxxbind/errors"
	"github.com/teranos/cxxbind/target/markdown"
)

// SurfaceCmd represents the surface command
var SurfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Print the binding-surface report for the declaration model",
	Long: `Run the binding-surface analysis and print the Markdown report.

The report lists every symbol that would emit, grouped by namespace, and
every collision or mapping failure with both originating declarations
named. Use it to decide which symbols to exclude before generating.

Examples:
  cxxbind surface                  # Analyze using cxxbind.toml
  cxxbind surface --input api.json # Analyze a specific declaration file`,
	RunE: runSurface,
}

func init() {
	SurfaceCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Config file (default: nearest cxxbind.toml)")
	SurfaceCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Declaration file, overrides input.declarations")
}

func runSurface(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model, err := decl.LoadFile(cfg.Input.Declarations)
	if err != nil {
		return errors.Wrapf(err, "loading declarations from %s", cfg.Input.Declarations)
	}

	run := bind.Generate(model, bind.NewPolicy(cfg.Rules()...))
	fmt.Fprint(cmd.OutOrStdout(), markdown.NewGenerator().GenerateFile(run))
	return nil
}
