package superexpressive

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config controls how an Expression is built.
//
// Example:
//
//	config := superexpressive.DefaultConfig()
//	config.StrictAnchors = true // reject duplicate ^ and $
//	se := superexpressive.NewWithConfig(config)
type Config struct {
	// StrictAnchors rejects a second start or end of input anywhere in the
	// expression, and a start of input placed after an end of input.
	// Sub-expressions merged with their anchors kept are checked too.
	// Default: false
	StrictAnchors bool

	// MaxDepth caps the nesting depth of the tree, counting the root. Opening
	// a container or merging a sub-expression beyond it fails with
	// syntax.ErrTooDeep, which keeps every recursive tree walk bounded.
	// Default: 1000
	MaxDepth int

	// Logger receives debug entries for every push, close and merge.
	// Default: a logger that discards everything.
	Logger logrus.FieldLogger
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		StrictAnchors: false,
		MaxDepth:      1000,
		Logger:        discardLogger(),
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxDepth: 2 to 100,000
func (c Config) Validate() error {
	if c.MaxDepth < 2 || c.MaxDepth > 100_000 {
		return &ConfigError{
			Field:   "MaxDepth",
			Message: "must be between 2 and 100,000",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "superexpressive: invalid config: " + e.Field + ": " + e.Message
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
