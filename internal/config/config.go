// Package config loads the classbreaks command configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TrevorS/classbreaks"
)

// Config controls a single classification run.
type Config struct {
	// Method names the classification algorithm, e.g. "Quantiles".
	Method classbreaks.Method `yaml:"method"`

	// Classes is the requested class count. Ignored by HeadTail and TailHead.
	Classes int `yaml:"classes"`

	// Input is the path of the values file; "-" reads standard input.
	Input string `yaml:"input"`

	// Precision is the number of decimals printed for boundaries.
	Precision int `yaml:"precision"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Method:    classbreaks.MethodNaturalBreaks,
		Classes:   5,
		Input:     "-",
		Precision: 4,
	}
}

// Load reads a YAML file on top of DefaultConfig, so keys missing from the
// file keep their defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", filename, err)
	}
	return &cfg, nil
}

// Validate checks the fields that can be checked before the values are
// read. The class count upper bound depends on the sample and is enforced
// by classbreaks.New.
func (c *Config) Validate() error {
	if _, err := classbreaks.ParseMethod(c.Method.String()); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Classes < 2 && c.Method != classbreaks.MethodHeadTail && c.Method != classbreaks.MethodTailHead {
		return fmt.Errorf("config: classes must be >= 2, got %d", c.Classes)
	}
	if c.Input == "" {
		return fmt.Errorf("config: input must not be empty")
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("config: precision must be in [0, 17], got %d", c.Precision)
	}
	return nil
}
