package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for both binaries.
type Config struct {
	Server  ServerConfig
	History HistoryConfig
	Fetcher FetcherConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
}

// HistoryConfig locates the snapshot file shared by fetcher and API.
type HistoryConfig struct {
	Path string
}

// FetcherConfig holds source URLs and fetch behavior.
type FetcherConfig struct {
	PowerballURL    string
	MegaMillionsURL string
	Timeout         time.Duration
	CutoffDate      string
	Cutoff          time.Time `mapstructure:"-"`
}

// Load reads configuration from an optional config.yaml and environment
// variables (SERVER_PORT, FETCHER_TIMEOUT, ...), falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; environment variables and defaults suffice.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cutoff, err := time.Parse("2006-01-02", cfg.Fetcher.CutoffDate)
	if err != nil {
		return nil, fmt.Errorf("fetcher.cutoffdate must be YYYY-MM-DD: %w", err)
	}
	cfg.Fetcher.Cutoff = cutoff

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("history.path", "history.json")
	v.SetDefault("fetcher.powerballurl", "https://www.nylottery.org/powerball/past-winning-numbers")
	v.SetDefault("fetcher.megamillionsurl", "https://www.nylottery.org/mega-millions/past-winning-numbers")
	v.SetDefault("fetcher.timeout", "15s")
	v.SetDefault("fetcher.cutoffdate", "2025-01-01")
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port must not be empty")
	}
	if c.History.Path == "" {
		return fmt.Errorf("history.path must not be empty")
	}
	if c.Fetcher.PowerballURL == "" || c.Fetcher.MegaMillionsURL == "" {
		return fmt.Errorf("fetcher source URLs must not be empty")
	}
	if c.Fetcher.Timeout <= 0 {
		return fmt.Errorf("fetcher.timeout must be positive")
	}
	return nil
}
