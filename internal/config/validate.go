package config

import (
	"errors"
	"fmt"

	"mrm2dfdl/internal/dfdl"
)

// TimestampError reports a timestamp in neither accepted layout.
type TimestampError struct {
	Value string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: want %q or RFC 3339", e.Value, dfdl.TimestampLayout)
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.ModelName == "" {
		errs = append(errs, errors.New("model_name is required"))
	}

	if c.TargetNamespace == "" {
		errs = append(errs, errors.New("target_namespace is required"))
	}

	if c.MaxOccursUnbounded <= 0 {
		errs = append(errs, fmt.Errorf("max_occurs_unbounded must be positive, got %d", c.MaxOccursUnbounded))
	}

	if c.Jobs <= 0 {
		errs = append(errs, fmt.Errorf("jobs must be positive, got %d", c.Jobs))
	}

	if _, err := c.GeneratedAt(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
