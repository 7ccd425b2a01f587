// Package config loads xrplcodec's CLI defaults from built-in defaults, a
// config file and environment variables, in increasing priority, using viper.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the CLI's tunable defaults.
type Config struct {
	// OutputFormat is loaded from "output_format" (default "hex") and
	// reported under --verbose. No command reads it: decode always prints
	// indented JSON.
	OutputFormat string `mapstructure:"output_format"`

	// Uppercase controls whether Encode emits uppercase hex, matching
	// rippled's convention. Defaults to true.
	Uppercase bool `mapstructure:"uppercase"`
}

// Load reads configuration from, in increasing priority: built-in
// defaults, the file at path (if non-empty and present), then XRPLCODEC_
// prefixed environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if _, err := os.Stat(path); err == nil {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
			}
		}
	}

	v.SetEnvPrefix("XRPLCODEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_format", "hex")
	v.SetDefault("uppercase", true)
}
