package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Ephemeris struct {
		BaseURL       string        `yaml:"base_url"`
		Timeout       time.Duration `yaml:"timeout"`
		RetryAttempts int           `yaml:"retry_attempts"`
		MemoTTL       time.Duration `yaml:"memo_ttl"`
	} `yaml:"ephemeris"`
	Cache struct {
		Backend string        `yaml:"backend"` // memory, redis, layered
		TTL     time.Duration `yaml:"ttl"`
		Redis   struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Engine struct {
		DefaultMaxOrb float64            `yaml:"default_max_orb"`
		AspectOrbs    map[string]float64 `yaml:"aspect_orbs"`
	} `yaml:"engine"`
	Synastry struct {
		Categories map[string]SynastryCategory `yaml:"categories"`
	} `yaml:"synastry"`
	RateLimit struct {
		Enabled      bool    `yaml:"enabled"`
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"ratelimit"`
}

// SynastryCategory is one life-area entry of the scoring weight table.
// Pairs are two-element planet ID lists, unordered.
type SynastryCategory struct {
	Pairs         [][]string         `yaml:"pairs"`
	AspectWeights map[string]float64 `yaml:"aspect_weights"`
	OverlayHouses []int              `yaml:"overlay_houses"`
	OverlayBonus  float64            `yaml:"overlay_bonus"`
}

// Load reads config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()
	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("EPHEMERIS_URL"); v != "" {
		c.Ephemeris.BaseURL = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Ephemeris.Timeout == 0 {
		c.Ephemeris.Timeout = 10 * time.Second
	}
	if c.Ephemeris.RetryAttempts == 0 {
		c.Ephemeris.RetryAttempts = 3
	}
	if c.Ephemeris.MemoTTL == 0 {
		c.Ephemeris.MemoTTL = 30 * time.Second
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 15 * time.Minute
	}
	if c.Cache.Redis.Host == "" {
		c.Cache.Redis.Host = "localhost"
	}
	if c.Cache.Redis.Port == 0 {
		c.Cache.Redis.Port = 6379
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "astrocore"
	}
	if c.Engine.DefaultMaxOrb == 0 {
		c.Engine.DefaultMaxOrb = 8
	}
	if len(c.Engine.AspectOrbs) == 0 {
		c.Engine.AspectOrbs = map[string]float64{
			"conjunction": 8,
			"opposition":  8,
			"trine":       8,
			"square":      7,
			"sextile":     6,
		}
	}
	if len(c.Synastry.Categories) == 0 {
		c.Synastry.Categories = defaultCategories()
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 30
	}
	if c.RateLimit.RefillPerSec == 0 {
		c.RateLimit.RefillPerSec = 10
	}
}

// defaultCategories is the built-in weight table used when the config file
// carries no synastry section.
func defaultCategories() map[string]SynastryCategory {
	weights := map[string]float64{
		"conjunction": 8,
		"trine":       10,
		"sextile":     6,
		"square":      -4,
		"opposition":  -5,
	}
	return map[string]SynastryCategory{
		"romance": {
			Pairs: [][]string{
				{"venus", "mars"}, {"sun", "moon"}, {"venus", "moon"}, {"venus", "sun"},
			},
			AspectWeights: weights,
			OverlayHouses: []int{5, 7, 8},
			OverlayBonus:  5,
		},
		"communication": {
			Pairs: [][]string{
				{"mercury", "mercury"}, {"mercury", "moon"}, {"mercury", "sun"}, {"mercury", "jupiter"},
			},
			AspectWeights: weights,
			OverlayHouses: []int{3, 9},
			OverlayBonus:  4,
		},
		"stability": {
			Pairs: [][]string{
				{"saturn", "sun"}, {"saturn", "moon"}, {"saturn", "venus"}, {"jupiter", "saturn"},
			},
			AspectWeights: weights,
			OverlayHouses: []int{2, 4, 10},
			OverlayBonus:  4,
		},
	}
}
