package config

import (
	"github.com/teranos/cxxbind/bind"
	"github.com/teranos/cxxbind/errors"
)

// validRuleKinds are the generation kinds an exclusion rule may restrict
// itself to. Empty means the rule matches any kind.
var validRuleKinds = map[bind.GenerationKind]bool{
	bind.GenTypeDefinition:      true,
	bind.GenFreeFunctionWrapper: true,
	bind.GenMethodWrapper:       true,
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Input.Declarations == "" {
		return errors.New("input.declarations cannot be empty")
	}
	if len(c.Output.Targets) == 0 {
		return errors.New("output.targets cannot be empty")
	}

	for i, r := range c.Exclude {
		if r.Name == "" {
			return errors.Newf("exclude[%d]: name cannot be empty", i)
		}
		if r.Kind != "" && !validRuleKinds[bind.GenerationKind(r.Kind)] {
			return errors.Newf("exclude[%d]: unknown kind %q (omit to match any kind)", i, r.Kind)
		}
	}
	return nil
}
