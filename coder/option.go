package coder

// Option configures a Coder
type Option func(*Coder)

// WithWindowDefaults controls whether AddWindow completes missing window policies
func WithWindowDefaults(enabled bool) Option {
	return func(c *Coder) {
		c.windowDefaults = enabled
	}
}

// WithRootDirCount sets the number of leading path components CreateSourceFile strips from file paths
func WithRootDirCount(count int) Option {
	return func(c *Coder) {
		c.rootDirCount = count
	}
}
