// Package config loads the clrs command configuration.
//
// Sources, lowest precedence first: built-in defaults, a YAML file
// (--config, or ./clrs.yaml / ./clrs.yml when present), CLRS_* environment
// variables and explicitly set persistent flags.
package config

import "errors"

// Defaults.
const (
	DefaultOutput   = "table"
	DefaultLogLevel = "info"
	DefaultSortAlgo = "merge"
	DefaultSize     = 10000
	DefaultWorkers  = 4
	DefaultSeed     = 1
)

// Output modes.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputPlain = "plain"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// BenchConfig holds defaults for the bench command.
type BenchConfig struct {
	Size    int   `koanf:"size"`
	Workers int   `koanf:"workers"`
	Seed    int64 `koanf:"seed"`
}

// Config holds all CLI configuration options.
type Config struct {
	Output   string      `koanf:"output"`
	LogLevel string      `koanf:"log_level"`
	SortAlgo string      `koanf:"sort_algo"`
	Bench    BenchConfig `koanf:"bench"`

	// FileUsed is the configuration file that was read, if any.
	FileUsed string `koanf:"-"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
		SortAlgo: DefaultSortAlgo,
		Bench: BenchConfig{
			Size:    DefaultSize,
			Workers: DefaultWorkers,
			Seed:    DefaultSeed,
		},
	}
}
