// Package config assembles runtime settings from defaults, an optional JSON
// file and command-line flags, in that order of precedence.
package config

// Config holds runtime settings for PantryPal.
//
// Fields:
//   - BaseDir: data directory holding the CSV tables. Empty means the
//     canonical <user-home>/PantryPal location.
//   - LogLevel: slog level name (debug|info|warn|error).
//   - UseArgon2: write argon2id password verifiers for new accounts instead
//     of the legacy SHA-256 digest. Existing rows verify either way.
type Config struct {
	BaseDir   string
	LogLevel  string
	UseArgon2 bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseDir = ""
	c.LogLevel = "info"
	c.UseArgon2 = false
}

// Load constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given) and command-line flags. Later sources
// take precedence over earlier ones.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
