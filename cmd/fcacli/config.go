package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Config holds miner thresholds loadable from an .fcarc file and overridable
// by flags. Zero values mean "use the package default".
type Config struct {
	MinSupport    int     `json:"min_support,omitempty"`
	MinRHS        int     `json:"min_rhs,omitempty"`
	MinConfidence float64 `json:"min_confidence,omitempty"`
	MaxDiff       int     `json:"max_diff,omitempty"`
	MaxConfidence float64 `json:"max_confidence,omitempty"`
	MinWidth      int     `json:"min_width,omitempty"`
}

// LoadConfig reads an .fcarc file at path, which may be JSON with "//" and
// "/* */" comments and trailing commas (JSONC). A missing path is not an
// error: it returns the zero Config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("%w: %s", errConfigFileRead, path)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	return cfg, nil
}
