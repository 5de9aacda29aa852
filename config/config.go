package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Search SearchConfig `yaml:"search"`
	Redis  RedisConfig  `yaml:"redis"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type SearchConfig struct {
	MinWaitMinutes int `yaml:"min_wait_minutes"`
	MaxWaitMinutes int `yaml:"max_wait_minutes"`
	MaxLegs        int `yaml:"max_legs"`
	MaxResults     int `yaml:"max_results"`
}

// MinWait returns the configured minimum connection wait, falling back to the
// reference 1 hour when unset.
func (s SearchConfig) MinWait() time.Duration {
	if s.MinWaitMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(s.MinWaitMinutes) * time.Minute
}

// MaxWait returns the configured maximum connection wait, falling back to the
// reference 4 hours when unset.
func (s SearchConfig) MaxWait() time.Duration {
	if s.MaxWaitMinutes <= 0 {
		return 4 * time.Hour
	}
	return time.Duration(s.MaxWaitMinutes) * time.Minute
}

type RedisConfig struct {
	Addr                string `yaml:"addr"`
	Password            string `yaml:"password"`
	DB                  int    `yaml:"db"`
	ItinerariesCacheTTL int    `yaml:"itineraries_cache_ttl_seconds"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
