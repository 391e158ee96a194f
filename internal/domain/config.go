package domain

// ConfigFileName is the configuration file name inside the config directory.
const ConfigFileName = "config.toml"

// Config holds the application configuration.
// Every field has a default that reproduces the stock behavior, so an
// absent config file is not an error.
type Config struct {
	// Browser overrides the platform default browser command.
	Browser string `toml:"browser"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Limit is the number of issues to fetch.
	Limit int `toml:"limit"`
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Limit:    DefaultLimit,
	}
}
