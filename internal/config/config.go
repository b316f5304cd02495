package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/pairstats/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Output
	Format    string `mapstructure:"format" yaml:"format"`
	Precision int    `mapstructure:"precision" yaml:"precision"`
	Banner    bool   `mapstructure:"banner" yaml:"banner"`

	// Input buffer cap in bytes
	MaxInputBytes int `mapstructure:"max_input_bytes" yaml:"max_input_bytes"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Keys lists the settable configuration keys.
var Keys = []string{"format", "precision", "banner", "max_input_bytes", "log_level"}

const defaultMaxInputBytes = 64 << 20

// Default returns the built-in configuration.
func Default() *Global {
	return &Global{
		Format:        "text",
		Precision:     3,
		Banner:        true,
		MaxInputBytes: defaultMaxInputBytes,
		LogLevel:      "warn",
	}
}

// DefaultPath returns ~/.pairstats/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".pairstats", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.pairstats/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("PAIRSTATS")
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("format", d.Format)
	v.SetDefault("precision", d.Precision)
	v.SetDefault("banner", d.Banner)
	v.SetDefault("max_input_bytes", d.MaxInputBytes)
	v.SetDefault("log_level", d.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".pairstats"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects values the tool cannot honor.
func (c *Global) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid format %q (use text|json|yaml)", c.Format)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("invalid precision %d (0-17)", c.Precision)
	}
	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("invalid max_input_bytes %d (must be > 0)", c.MaxInputBytes)
	}
	return nil
}
