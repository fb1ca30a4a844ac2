// Package config loads the CLI's YAML configuration file, grounded on
// the donor cli/cmd package's LoadConfig (same os.Stat-then-Unmarshal
// shape), stripped of every database-connection field: this pipeline
// has no deployment target, only a default stream name and a log
// level. Tab-width policy is fixed by spec.md's "tab does not expand"
// rule and is deliberately not configurable here.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is cparselex.yaml.
type Config struct {
	// DefaultStreamName is a stream name for stdin input. It is loaded
	// but no CLI command reads from stdin or uses it.
	DefaultStreamName string `yaml:"defaultStreamName"`
	LogLevel          string `yaml:"logLevel"`
}

// Load reads <directory>/cparselex.yaml. A missing file is not an
// error; it returns the zero Config (empty stream name and log level;
// logging.New treats the empty level as "info"). When the file exists,
// empty fields default to log level "info" and stream name "<stdin>".
func Load(directory string) (Config, error) {
	var result Config
	path := filepath.Join(directory, "cparselex.yaml")

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return result, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return Config{}, err
	}
	if result.LogLevel == "" {
		result.LogLevel = "info"
	}
	if result.DefaultStreamName == "" {
		result.DefaultStreamName = "<stdin>"
	}
	return result, nil
}
