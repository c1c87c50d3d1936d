// Package config loads runtime settings for the PassKeeper CLI.
package config

// Config holds runtime settings for the PassKeeper CLI.
//
// Fields:
//   - StorePath: path to the password store file, relative paths are
//     resolved against the working directory.
type Config struct {
	StorePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "passwords.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
