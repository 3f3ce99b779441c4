package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"totem-quiz/internal/scoring"
)

type Config struct {
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Content struct {
		Path    string `yaml:"path"`
		Catalog string `yaml:"catalog"`
	} `yaml:"content"`
	Session struct {
		TTL string `yaml:"ttl"`
	} `yaml:"session"`
	Scoring scoring.Config `yaml:"scoring"`
	Log     struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is given. Content
// falls back to the embedded catalog and scoring to the standard tuning.
func Default() Config {
	cfg := Config{}
	cfg.Scoring = scoring.DefaultConfig()
	cfg.Log.Level = "info"
	return cfg
}

// Load reads YAML config from path, overlaying it on the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
