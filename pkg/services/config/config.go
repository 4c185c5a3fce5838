package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type UpstreamConfig struct {
	OrdersURL string        `mapstructure:"orders_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// Config is the web service configuration, loaded from a YAML file.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("upstream.timeout", 30*time.Second)
	v.SetDefault("cache.capacity", 4096)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Upstream.OrdersURL == "" {
		return nil, fmt.Errorf("upstream.orders_url is required")
	}
	return &cfg, nil
}
