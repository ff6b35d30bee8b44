package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9095 {
		t.Errorf("Port = %d, want 9095", cfg.Port)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log defaults = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Scheduler.MaxProcesses != 100 {
		t.Errorf("MaxProcesses = %d, want 100", cfg.Scheduler.MaxProcesses)
	}
	if cfg.Scheduler.RoundRobinTimeQuantum != 2 {
		t.Errorf("RoundRobinTimeQuantum = %d, want 2", cfg.Scheduler.RoundRobinTimeQuantum)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled = true, want disabled by default")
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Addr != ":9100" {
		t.Errorf("metrics defaults = %v/%q, want enabled on :9100", cfg.Metrics.Enabled, cfg.Metrics.Addr)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
port: 8088
log:
  level: debug
  format: json
scheduler:
  max_processes: 16
  round_robin:
    time_quantum: 4
store:
  path: /tmp/runs.db
cache:
  enabled: true
  addr: redis:6379
  ttl: 30s
metrics:
  enabled: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8088 {
		t.Errorf("Port = %d, want 8088", cfg.Port)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("log = %q/%q, want debug/json", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Scheduler.MaxProcesses != 16 || cfg.Scheduler.RoundRobinTimeQuantum != 4 {
		t.Errorf("scheduler = %+v, want 16/4", cfg.Scheduler)
	}
	if cfg.Store.Path != "/tmp/runs.db" {
		t.Errorf("Store.Path = %q, want /tmp/runs.db", cfg.Store.Path)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Addr != "redis:6379" || cfg.Cache.TTL != 30*time.Second {
		t.Errorf("cache = %+v, want enabled redis:6379 30s", cfg.Cache)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "port: 7000\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 7000 {
		t.Errorf("Port = %d, want 7000", cfg.Port)
	}
	if cfg.Scheduler.RoundRobinTimeQuantum != 2 {
		t.Errorf("RoundRobinTimeQuantum = %d, want default 2", cfg.Scheduler.RoundRobinTimeQuantum)
	}
}

func TestLoadRejectsBadQuantum(t *testing.T) {
	path := writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted a zero time quantum")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load accepted a missing explicit config path")
	}
}
