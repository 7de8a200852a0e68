package config

import "fmt"

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON, OutputPlain:
	default:
		return fmt.Errorf("%w: output %q (want table, json or plain)", ErrInvalidConfig, c.Output)
	}
	if c.Bench.Size < 1 {
		return fmt.Errorf("%w: bench.size %d must be positive", ErrInvalidConfig, c.Bench.Size)
	}
	if c.Bench.Workers < 1 {
		return fmt.Errorf("%w: bench.workers %d must be positive", ErrInvalidConfig, c.Bench.Workers)
	}

	return nil
}
