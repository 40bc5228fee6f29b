// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the userdir terminal client.
//
// Fields:
//   - ServerBaseURL: base URL of the directory API.
//   - StateDSN: sqlite file holding persisted view state and theme. The
//     client still works when this file cannot be opened; preferences just
//     stop surviving restarts.
type Config struct {
	ServerBaseURL string
	StateDSN      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:4000"
	c.StateDSN = "userdir-client.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
