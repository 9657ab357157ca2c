package logger

// Config defines options for Init. Fields are not validated when set; Init
// validates the whole value and keeps its own copy, so changing a Config
// after Init has no effect on the installed logger.
type Config struct {
	// LogToTerminal writes every accepted line to stdout.
	// Default: true
	LogToTerminal bool
	// LogToFile writes every accepted line to FilePath.
	// Default: false
	LogToFile bool
	// FilePath is created (or truncated) by Init when LogToFile is set.
	// Default: ""
	FilePath string
	// Colorize wraps terminal lines in an ANSI color chosen by level. File
	// output is never colored.
	// Default: true
	Colorize bool
	// MaxLevel is the most verbose level let through: events at MaxLevel or
	// anything more severe are logged, the rest are dropped.
	// Default: TraceLevel (everything passes)
	MaxLevel Level
}

// DefaultConfig returns the configuration Init expects when nothing is
// overridden: colored terminal output only, all levels enabled.
func DefaultConfig() Config {
	return Config{
		LogToTerminal: true,
		LogToFile:     false,
		FilePath:      "",
		Colorize:      true,
		MaxLevel:      TraceLevel,
	}
}

// WithTerminal sets LogToTerminal and returns c for chaining.
func (c *Config) WithTerminal(on bool) *Config {
	c.LogToTerminal = on
	return c
}

// WithFile sets LogToFile and returns c for chaining.
func (c *Config) WithFile(on bool) *Config {
	c.LogToFile = on
	return c
}

// WithFilePath sets FilePath and returns c for chaining.
func (c *Config) WithFilePath(path string) *Config {
	c.FilePath = path
	return c
}

// WithColor sets Colorize and returns c for chaining.
func (c *Config) WithColor(on bool) *Config {
	c.Colorize = on
	return c
}

// WithMaxLevel sets MaxLevel and returns c for chaining.
func (c *Config) WithMaxLevel(level Level) *Config {
	c.MaxLevel = level
	return c
}

// Finalize installs a logger built from c. It is shorthand for Init(*c).
//
// Example:
//
//	cfg := logger.DefaultConfig()
//	err := cfg.WithFile(true).WithFilePath("app.log").WithColor(false).Finalize()
func (c *Config) Finalize() error {
	return Init(*c)
}
