package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/cxxbind/config"
	"github.com/teranos/cxxbind/decl"
	"github.com/teranos/cxxbind/errors"
	"github.com/teranos/cxxbind/logger"
	"github.com/teranos/cxxbind/target"
	"github.com/teranos/cxxbind/target/markdown"
	"github.com/teranos/cxxbind/target/rust"
	"github.com/teranos/cxxbind/target/typescript"
)

var (
	generateConfig  string
	generateInput   string
	generateOutput  string
	generateTargets []string
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate binding files for the configured targets",
	Long: `Generate binding declarations from a parsed C++ API surface.

The declaration model is loaded from the parser output (JSON or YAML),
analyzed for name collisions, filtered by the configured exclusion rules,
and rendered once per target language.

Generation has partial-failure semantics: a symbol that cannot be
translated is reported and skipped, the rest of the surface still emits.
Output files are always written; the command exits non-zero when any
symbol failed so CI can catch a partial surface.

Examples:
  cxxbind generate                          # Use cxxbind.toml
  cxxbind generate --config api/cxxbind.toml
  cxxbind generate --input api.json --targets rust,typescript`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Config file (default: nearest cxxbind.toml)")
	GenerateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Declaration file, overrides input.declarations")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory, overrides output.dir")
	GenerateCmd.Flags().StringSliceVarP(&generateTargets, "targets", "t", nil, "Target languages, overrides output.targets")
}

// knownGenerators lists every target language this binary can render.
func knownGenerators() []target.Generator {
	return []target.Generator{
		rust.NewGenerator(),
		typescript.NewGenerator(),
		markdown.NewGenerator(),
	}
}

// loadConfig resolves the effective configuration: file (or defaults),
// then flag overrides.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if generateConfig != "" {
		cfg, err = config.LoadFromFile(generateConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if generateInput != "" {
		cfg.Input.Declarations = generateInput
	}
	if generateOutput != "" {
		cfg.Output.Dir = generateOutput
	}
	if len(generateTargets) > 0 {
		cfg.Output.Targets = generateTargets
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model, err := decl.LoadFile(cfg.Input.Declarations)
	if err != nil {
		return errors.Wrapf(err, "loading declarations from %s", cfg.Input.Declarations)
	}
	logger.Infow("declaration model loaded",
		"file", cfg.Input.Declarations,
		"declarations", model.Len(),
		"namespaces", len(model.Namespaces()))

	generators, err := target.ForLanguages(cfg.Output.Targets, knownGenerators())
	if err != nil {
		return err
	}

	outputs := target.GenerateAll(model, cfg.Rules(), generators)

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", cfg.Output.Dir)
	}

	failed := 0
	for _, out := range outputs {
		path := filepath.Join(cfg.Output.Dir, out.Filename)
		if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}

		fmt.Printf("✓ Generated %s (%d symbols", path, len(out.Run.Emitted))
		if len(out.Run.Errors) > 0 {
			fmt.Printf(", %d errors", len(out.Run.Errors))
		}
		fmt.Println(")")

		for _, genErr := range out.Run.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %v\n", out.Language, genErr)
			failed++
		}
	}

	if failed > 0 {
		return errors.Newf("%d symbol(s) failed generation; output is partial", failed)
	}
	return nil
}
