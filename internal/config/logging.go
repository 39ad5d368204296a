package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`                // debug, info, warn, error
	Format     string          `yaml:"format"`               // json, text
	Categories map[string]bool `yaml:"categories,omitempty"` // Per-category toggles
}

// IsJSON reports whether records should be JSON encoded.
func (c *LoggingConfig) IsJSON() bool {
	return c.Format == "json"
}
