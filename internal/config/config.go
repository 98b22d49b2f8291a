// Package config loads gallery settings from a YAML file. The three grid
// settings are integer-valued but arrive as free-form text; any value that
// is present but does not parse as a non-negative integer coerces to 0,
// which the engine treats as a degenerate (empty) layout rather than an
// error. Absent keys keep whatever base value the caller supplies.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings are the resolved gallery settings.
type Settings struct {
	CellWidth  int
	CellHeight int
	Items      int

	Debug   bool
	LogFile string
}

// file is the on-disk shape. Grid values are strings on purpose: the
// coercion rule applies to unparsable text, so unmarshalling must not
// reject it first. Pointers distinguish absent keys from present ones.
type file struct {
	CellWidth  *string `yaml:"cell_width"`
	CellHeight *string `yaml:"cell_height"`
	Items      *string `yaml:"items"`
	Debug      *bool   `yaml:"debug"`
	LogFile    *string `yaml:"log_file"`
}

// Load reads a settings file and layers it over base: present keys
// override (coerced), absent keys keep the base value.
func Load(path string, base Settings) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return base, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if f.CellWidth != nil {
		base.CellWidth = Coerce(*f.CellWidth)
	}
	if f.CellHeight != nil {
		base.CellHeight = Coerce(*f.CellHeight)
	}
	if f.Items != nil {
		base.Items = Coerce(*f.Items)
	}
	if f.Debug != nil {
		base.Debug = *f.Debug
	}
	if f.LogFile != nil {
		base.LogFile = *f.LogFile
	}
	return base, nil
}

// Coerce converts a textual setting to a non-negative integer. Empty,
// non-numeric, and negative input all coerce to 0.
func Coerce(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
