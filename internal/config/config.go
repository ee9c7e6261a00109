package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	Seed SeedConfig `mapstructure:"seed"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
	Timezone       string `mapstructure:"timezone"`
}

// SeedConfig controls demo data for an empty session.
type SeedConfig struct {
	Demo bool `mapstructure:"demo"`
}

// Load reads configuration from file and env. Env var overrides use prefix WORKSHOP_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.currency_symbol", "₽")
	v.SetDefault("ui.date_format", "02.01.2006")
	v.SetDefault("ui.timezone", "Europe/Moscow")
	v.SetDefault("seed.demo", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WORKSHOP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "workshop"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WORKSHOP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// Used by the TUI settings view.
func Save(cfg Config) error {
	path := os.Getenv("WORKSHOP_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "workshop", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("seed.demo", cfg.Seed.Demo)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
