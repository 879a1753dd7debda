package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Input defaults
	v.SetDefault("input.declarations", "declarations.json")

	// Output defaults
	v.SetDefault("output.dir", "bindings")
	v.SetDefault("output.targets", []string{"rust"})
}
