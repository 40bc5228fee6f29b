// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the userdir API server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: either a sqlite file path (default) or a postgres:// DSN.
//   - SeedCount: number of synthetic users generated when the store is empty.
type Config struct {
	EndpointAddr string
	DatabaseDSN  string
	SeedCount    int
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":4000"
	c.DatabaseDSN = "userdir.db"
	c.SeedCount = 50
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
