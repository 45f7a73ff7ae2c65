// Package config loads the optional converto.yaml that seeds the UI with
// base ratios and a starting mode. The file is input only; the program
// never writes it back.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vscaperrotta/converto/pkg/convert"
)

// Config is the on-disk configuration shape.
type Config struct {
	Ratios convert.Ratios `yaml:"ratios"`
	Mode   convert.Mode   `yaml:"mode"`
	Watch  bool           `yaml:"watch"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Ratios: convert.DefaultRatios(),
		Mode:   convert.ModePxRem,
		Watch:  true,
	}
}

// DefaultPath returns the conventional config location,
// e.g. ~/.config/converto/converto.yaml. Empty if the user config dir
// cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "converto", "converto.yaml")
}

// Load reads the config at path, falling back to defaults when the file
// does not exist. Values the file omits keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize replaces values the engine must never see with defaults:
// non-positive ratios and unrecognized modes. It returns the names of the
// fields it had to fix so the caller can mention them once at startup.
func (c *Config) Normalize() []string {
	var fixed []string
	def := convert.DefaultRatios()

	if c.Ratios.BaseRem <= 0 {
		c.Ratios.BaseRem = def.BaseRem
		fixed = append(fixed, "ratios.base_rem")
	}
	if c.Ratios.BaseEm <= 0 {
		c.Ratios.BaseEm = def.BaseEm
		fixed = append(fixed, "ratios.base_em")
	}
	if c.Ratios.ContainerWidth <= 0 {
		c.Ratios.ContainerWidth = def.ContainerWidth
		fixed = append(fixed, "ratios.container_width")
	}
	if c.Ratios.BaseUnit <= 0 {
		c.Ratios.BaseUnit = def.BaseUnit
		fixed = append(fixed, "ratios.base_unit")
	}
	if !c.Mode.IsValid() {
		c.Mode = convert.ModePxRem
		fixed = append(fixed, "mode")
	}
	return fixed
}
