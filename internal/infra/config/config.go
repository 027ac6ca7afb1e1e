package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	Recommender RecommenderConfig `yaml:"recommender"`
	Cache       CacheConfig       `yaml:"cache"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Runner      RunnerConfig      `yaml:"runner"`
}

// RecommenderConfig drives vectorization and ranking.
type RecommenderConfig struct {
	StopWords      string   `yaml:"stopWords"`
	ExtraStopWords []string `yaml:"extraStopWords"`
	TopN           int      `yaml:"topN"`
	EmptyHistory   string   `yaml:"emptyHistory"`
	CandidateMode  string   `yaml:"candidateMode"`
}

// CacheConfig controls the recommendation result cache.
type CacheConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	Valkey  ValkeyConfig  `yaml:"valkey"`
	Breaker BreakerConfig `yaml:"breaker"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// BreakerConfig tunes the circuit breaker in front of Valkey.
type BreakerConfig struct {
	MaxRequests      uint32        `yaml:"maxRequests"`
	Interval         time.Duration `yaml:"interval"`
	Timeout          time.Duration `yaml:"timeout"`
	FailureThreshold uint32        `yaml:"failureThreshold"`
}

// MetricsConfig controls the optional ops HTTP endpoint.
type MetricsConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// RunnerConfig lists the users the runner recommends for at startup.
type RunnerConfig struct {
	UserIDs []int64 `yaml:"userIds"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RECOMMENDER_TOP_N"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Recommender.TopN = parsed
		}
	}
	if v := os.Getenv("RECOMMENDER_STOP_WORDS"); v != "" {
		cfg.Recommender.StopWords = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("RECOMMENDER_EXTRA_STOP_WORDS"); v != "" {
		cfg.Recommender.ExtraStopWords = splitList(v)
	}
	if v := os.Getenv("RECOMMENDER_EMPTY_HISTORY"); v != "" {
		cfg.Recommender.EmptyHistory = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("RECOMMENDER_CANDIDATE_MODE"); v != "" {
		cfg.Recommender.CandidateMode = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("RECOMMENDER_USERS"); v != "" {
		ids := make([]int64, 0)
		for _, item := range splitList(v) {
			if parsed, err := strconv.ParseInt(item, 10, 64); err == nil {
				ids = append(ids, parsed)
			}
		}
		cfg.Runner.UserIDs = ids
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = parsed
		}
	}
	if v := os.Getenv("CACHE_VALKEY_ENABLED"); v != "" {
		cfg.Cache.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("CACHE_VALKEY_ADDR"); v != "" {
		cfg.Cache.Valkey.Addr = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Metrics.Address = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		Recommender: RecommenderConfig{
			StopWords:     "english",
			TopN:          5,
			EmptyHistory:  "fail",
			CandidateMode: "exclude_seen",
		},
		Cache: CacheConfig{
			TTL: 10 * time.Minute,
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
				Prefix:  "recommender",
			},
			Breaker: BreakerConfig{
				MaxRequests:      1,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
		Metrics: MetricsConfig{
			Address:      "",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Runner: RunnerConfig{
			UserIDs: []int64{1, 2, 3},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	switch c.Recommender.StopWords {
	case "english", "none":
	default:
		return fmt.Errorf("recommender.stopWords must be english or none, got %q", c.Recommender.StopWords)
	}
	if c.Recommender.TopN <= 0 {
		return errors.New("recommender.topN must be positive")
	}
	switch c.Recommender.EmptyHistory {
	case "fail", "empty", "popular":
	default:
		return fmt.Errorf("recommender.emptyHistory must be fail, empty or popular, got %q", c.Recommender.EmptyHistory)
	}
	switch c.Recommender.CandidateMode {
	case "exclude_seen", "top_rows":
	default:
		return fmt.Errorf("recommender.candidateMode must be exclude_seen or top_rows, got %q", c.Recommender.CandidateMode)
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl cannot be negative")
	}
	if c.Cache.Valkey.Enabled && strings.TrimSpace(c.Cache.Valkey.Addr) == "" {
		return errors.New("cache.valkey.addr cannot be empty when valkey cache is enabled")
	}
	if c.Cache.Breaker.FailureThreshold == 0 {
		return errors.New("cache.breaker.failureThreshold must be positive")
	}
	for _, id := range c.Runner.UserIDs {
		if id <= 0 {
			return fmt.Errorf("runner.userIds must be positive, got %d", id)
		}
	}
	return nil
}
