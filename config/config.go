// Package config holds the cxxbind tool configuration, loaded from
// cxxbind.toml and CXXBIND_* environment variables.
package config

import (
	"github.com/teranos/cxxbind/bind"
)

// Config represents the full cxxbind configuration
type Config struct {
	Input   InputConfig  `mapstructure:"input"`
	Output  OutputConfig `mapstructure:"output"`
	Exclude []RuleConfig `mapstructure:"exclude"`
}

// InputConfig configures the declaration source
type InputConfig struct {
	// Declarations is the path to the parser output (JSON or YAML)
	Declarations string `mapstructure:"declarations"`
}

// OutputConfig configures where and what to generate
type OutputConfig struct {
	Dir     string   `mapstructure:"dir"`     // Output directory for binding files
	Targets []string `mapstructure:"targets"` // Target languages, e.g. ["rust", "typescript"]
}

// RuleConfig is one exclusion rule as written in cxxbind.toml:
//
//	[[exclude]]
//	name = "my_namespace::MyPrimaryClass::method_broken"
//	kind = "method_wrapper"   # optional, omit to match any kind
type RuleConfig struct {
	Name string `mapstructure:"name"`
	Kind string `mapstructure:"kind"`
}

// Rules converts the configured exclusions into policy rules
func (c *Config) Rules() []bind.Rule {
	rules := make([]bind.Rule, 0, len(c.Exclude))
	for _, r := range c.Exclude {
		rules = append(rules, bind.Rule{
			Name: r.Name,
			Kind: bind.GenerationKind(r.Kind),
		})
	}
	return rules
}
