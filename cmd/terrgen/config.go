package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigFile is picked up from the working directory when --config
// is not given.
const defaultConfigFile = "terrgen.yaml"

// Config holds the generator settings. Flags override file values.
type Config struct {
	// CLDR is the path to the cldr-json checkout root.
	CLDR string `yaml:"cldr"`
	// Out is the dataset output directory.
	Out string `yaml:"out"`
	// Locales lists the locales to ship name tables for.
	Locales []string `yaml:"locales"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{Out: "cldr/data"}

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; flags must fill the gaps.
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return cfg, nil
}

// apply overlays non-empty flag values onto the file config.
func (c *Config) apply(cldrDir, out string, locales []string) {
	if cldrDir != "" {
		c.CLDR = cldrDir
	}
	if out != "" {
		c.Out = out
	}
	if len(locales) > 0 {
		c.Locales = locales
	}
}

func (c *Config) check() error {
	if c.CLDR == "" {
		return fmt.Errorf("no cldr-json checkout given (--cldr or %s)", defaultConfigFile)
	}
	if len(c.Locales) == 0 {
		return fmt.Errorf("no locales given (--locales or %s)", defaultConfigFile)
	}
	return nil
}
