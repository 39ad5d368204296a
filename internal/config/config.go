package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by applyEnvOverrides.
const (
	EnvRoot      = "SPIKER_PATH"
	EnvConfig    = "SPIKER_CONFIG"
	EnvSkillMD   = "SPIKER_SKILL_MD"
	EnvRegistrar = "SPIKER_REGISTRAR"
)

// Config holds all spiker configuration.
type Config struct {
	// Root is the directory holding spike directories. A leading "~/"
	// is expanded to the user's home directory.
	Root string `yaml:"root"`

	// Git runs "git init" in new spikes unless overridden by flags.
	Git bool `yaml:"git"`

	// GitBinary is the git executable.
	GitBinary string `yaml:"git_binary"`

	// Registrar is the executable that registers skill documents.
	Registrar string `yaml:"registrar"`

	// SkillMD, when set, is read instead of the embedded SKILL.md.
	SkillMD string `yaml:"skill_md,omitempty"`

	// ExecTimeout bounds each external command.
	ExecTimeout string `yaml:"exec_timeout"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultRoot returns ~/src/spikes, or a relative src/spikes when the
// home directory is unknown.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("src", "spikes")
	}
	return filepath.Join(home, "src", "spikes")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Root:        DefaultRoot(),
		Git:         true,
		GitBinary:   "git",
		Registrar:   "guppi",
		ExecTimeout: "30s",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultConfigPath returns $SPIKER_CONFIG, else spiker/config.yaml under
// the user config directory.
func DefaultConfigPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".spiker", "config.yaml")
	}
	return filepath.Join(dir, "spiker", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.Root = expandHome(cfg.Root)
	cfg.SkillMD = expandHome(cfg.SkillMD)

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if root := os.Getenv(EnvRoot); root != "" {
		c.Root = root
	}
	if path := os.Getenv(EnvSkillMD); path != "" {
		c.SkillMD = path
	}
	if registrar := os.Getenv(EnvRegistrar); registrar != "" {
		c.Registrar = registrar
	}
}

// GetExecTimeout returns the external command timeout as a duration.
func (c *Config) GetExecTimeout() time.Duration {
	d, err := time.ParseDuration(c.ExecTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("spike root not configured (set root in config or %s)", EnvRoot)
	}
	if c.ExecTimeout != "" {
		if _, err := time.ParseDuration(c.ExecTimeout); err != nil {
			return fmt.Errorf("invalid exec_timeout %q: %w", c.ExecTimeout, err)
		}
	}
	if c.Registrar == "" {
		return fmt.Errorf("registrar executable not configured")
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
