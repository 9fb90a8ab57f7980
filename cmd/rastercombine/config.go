// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is a half-open value interval [Lo, Hi) for a generated layer.
type Range struct {
	Lo uint16 `yaml:"lo"`
	Hi uint16 `yaml:"hi"`
}

// Config drives one run. Zero values in a YAML file keep the defaults.
type Config struct {
	Rows    int    `yaml:"rows"`
	Cols    int    `yaml:"cols"`
	Seed    int64  `yaml:"seed"`
	Workers int    `yaml:"workers"`
	First   Range  `yaml:"first"`
	Second  Range  `yaml:"second"`
	Format  string `yaml:"format"` // csv | json | yaml
	Out     string `yaml:"out"`    // "" or "-" ⇒ stdout
	DB      string `yaml:"db"`     // sqlite path; "" disables persistence
	Name    string `yaml:"name"`   // table name in the store
	Verify  bool   `yaml:"verify"`
	Bench   int    `yaml:"bench"` // repetitions per worker setting; 0 disables
	Verbose bool   `yaml:"verbose"`
}

// Output formats.
const (
	formatCSV  = "csv"
	formatJSON = "json"
	formatYAML = "yaml"
)

// DefaultConfig mirrors the classic random-raster fixture: a 90×100 grid with
// layer values in [10,13) and [20,23).
func DefaultConfig() Config {
	return Config{
		Rows:   90,
		Cols:   100,
		Seed:   1,
		First:  Range{Lo: 10, Hi: 13},
		Second: Range{Lo: 20, Hi: 23},
		Format: formatCSV,
		Name:   "combined",
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values a run depends on.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("rows and cols must be > 0 (got %d×%d)", c.Rows, c.Cols)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	if c.First.Hi <= c.First.Lo || c.Second.Hi <= c.Second.Lo {
		return fmt.Errorf("empty value range: first [%d,%d) second [%d,%d)",
			c.First.Lo, c.First.Hi, c.Second.Lo, c.Second.Hi)
	}
	switch c.Format {
	case formatCSV, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (want csv, json or yaml)", c.Format)
	}
	if c.Bench < 0 {
		return fmt.Errorf("bench must be >= 0 (got %d)", c.Bench)
	}

	return nil
}
