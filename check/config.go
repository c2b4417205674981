package check

import "github.com/pkg/errors"

// Config is the configuration of the checker.
type Config struct {
	// Workers is the number of scenarios executed concurrently.
	Workers int

	// Scenarios is the number of scenarios to execute.
	Scenarios uint64

	// Ops is the number of random operations executed by each scenario.
	Ops int

	// MaxValue is the exclusive upper bound of values added to lists.
	MaxValue int

	// Seed is the seed of the first scenario, scenario i uses Seed+i.
	Seed int64
}

// DefaultConfig is the default checker configuration.
var DefaultConfig = Config{
	Workers:   5,
	Scenarios: 1000,
	Ops:       200,
	MaxValue:  50,
	Seed:      1,
}

// Validate verifies that configuration is usable.
func (c Config) Validate() error {
	switch {
	case c.Workers <= 0:
		return errors.Errorf("number of workers must be positive, got %d", c.Workers)
	case c.Ops < 0:
		return errors.Errorf("number of operations must not be negative, got %d", c.Ops)
	case c.MaxValue <= 0:
		return errors.Errorf("max value must be positive, got %d", c.MaxValue)
	}
	return nil
}
