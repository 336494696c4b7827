package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Graph  GraphConfig  `mapstructure:"graph"`
	Server ServerConfig `mapstructure:"server"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Query  QueryConfig  `mapstructure:"query"`
	Log    LogConfig    `mapstructure:"log"`
}

type GraphConfig struct {
	NodesFile string `mapstructure:"nodes_file"`
	EdgesFile string `mapstructure:"edges_file"`
}

type ServerConfig struct {
	ListenAddr string  `mapstructure:"listen_addr"`
	RateLimit  bool    `mapstructure:"rate_limit"`
	RPS        float64 `mapstructure:"rps"`
	Burst      int     `mapstructure:"burst"`
}

// CacheConfig selects the in-memory route cache. Backend is one of none, badger, pebble.
type CacheConfig struct {
	Backend string `mapstructure:"backend"`
}

type QueryConfig struct {
	Parallel bool `mapstructure:"parallel"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

const (
	CacheNone   = "none"
	CacheBadger = "badger"
	CachePebble = "pebble"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault("graph.nodes_file", "nodes.csv")
	v.SetDefault("graph.edges_file", "edges.csv")
	v.SetDefault("server.listen_addr", ":5000")
	v.SetDefault("server.rate_limit", false)
	v.SetDefault("server.rps", 20.0)
	v.SetDefault("server.burst", 40)
	v.SetDefault("cache.backend", CacheNone)
	v.SetDefault("query.parallel", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads an optional config file and TRIROUTE_* environment variables into v.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("TRIROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheNone, CacheBadger, CachePebble:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Server.RateLimit && (c.Server.RPS <= 0 || c.Server.Burst <= 0) {
		return fmt.Errorf("rate limit needs positive rps and burst, got %v/%d", c.Server.RPS, c.Server.Burst)
	}
	return nil
}
