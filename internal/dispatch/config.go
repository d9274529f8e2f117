package dispatch

// Config holds dispatcher configuration options.
type Config struct {
	// RecoverFromPanic wraps subscriber handling in panic recovery.
	// A panicking subscriber is treated as not having handled the action.
	RecoverFromPanic bool

	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
		EnableMetrics:    false,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}
