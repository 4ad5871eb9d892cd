// Package config loads the overlap CLI's TOML configuration file with
// github.com/BurntSushi/toml.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds every knob the CLI and server commands can load from a
// TOML file. Any field left unset keeps its Default* value.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Server   ServerConfig   `toml:"server"`
	Cache    CacheConfig    `toml:"cache"`
	Audit    AuditConfig    `toml:"audit"`
}

// GenerateConfig configures the default pseudorandom family generator (C9).
type GenerateConfig struct {
	Degree  float64 `toml:"degree"`
	Density float64 `toml:"density"`
	Seed    uint64  `toml:"seed"`
}

// ServerConfig configures the HTTP API (C14).
type ServerConfig struct {
	ListenAddr string `toml:"listen_addr"`
}

// CacheConfig configures the result cache (C12).
type CacheConfig struct {
	RedisAddr string        `toml:"redis_addr"`
	TTL       time.Duration `toml:"ttl"`
}

// AuditConfig configures the audit log (C13).
type AuditConfig struct {
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the configuration used when no file is loaded: no Redis
// address (so the server runs without a result cache), no audit sink, and a generator tuned for quick
// exploratory runs.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{Degree: 30, Density: 0.05, Seed: 1},
		Server:   ServerConfig{ListenAddr: ":8080"},
		Cache:    CacheConfig{RedisAddr: "", TTL: time.Hour},
		Audit:    AuditConfig{MongoURI: "", Database: "overlap", Collection: "runs"},
	}
}

// Load reads and decodes a TOML file at path, starting from Default and
// overlaying whatever the file sets. An empty path returns Default with no
// I/O, matching the "works with zero configuration" ethos of the cache
// package's FileCache/NullCache fallback.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
