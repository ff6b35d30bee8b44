package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"schedsim/internal/core"
	"schedsim/internal/schedulers"
)

// Config carries every tunable of the simulator and its service surface.
// Values come from config.yaml with defaults for anything unset.
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	Scheduler SchedulerConfig
	Store     StoreConfig
	Cache     CacheConfig
	Metrics   MetricsConfig
}

// SchedulerConfig bounds the simulation engine.
type SchedulerConfig struct {
	MaxProcesses          int
	RoundRobinTimeQuantum int
}

// StoreConfig locates the run history database.
type StoreConfig struct {
	Path string
}

// CacheConfig wires the optional result cache. Disabled by default; the
// service works the same without it.
type CacheConfig struct {
	Enabled bool
	Addr    string
	TTL     time.Duration
}

// MetricsConfig wires the prometheus listener.
type MetricsConfig struct {
	Enabled bool
	Addr    string
}

// Load reads config.yaml from the working directory, or from an explicit
// path when one is given. A missing implicit file falls back to defaults;
// a missing explicit file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	if path != "" {
		v.SetConfigFile(path)
	}

	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("scheduler.max_processes", core.DefaultMaxProcesses)
	v.SetDefault("scheduler.round_robin.time_quantum", schedulers.DefaultTimeQuantum)
	v.SetDefault("store.path", "schedsim.db")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.addr", ":9100")

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:      v.GetInt("port"),
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
		Scheduler: SchedulerConfig{
			MaxProcesses:          v.GetInt("scheduler.max_processes"),
			RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		},
		Store: StoreConfig{
			Path: v.GetString("store.path"),
		},
		Cache: CacheConfig{
			Enabled: v.GetBool("cache.enabled"),
			Addr:    v.GetString("cache.addr"),
			TTL:     v.GetDuration("cache.ttl"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
			Addr:    v.GetString("metrics.addr"),
		},
	}

	if cfg.Scheduler.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", cfg.Scheduler.RoundRobinTimeQuantum)
	}
	if cfg.Scheduler.MaxProcesses <= 0 {
		return nil, fmt.Errorf("scheduler.max_processes must be positive, got %d", cfg.Scheduler.MaxProcesses)
	}
	return cfg, nil
}
