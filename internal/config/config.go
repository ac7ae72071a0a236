package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// timers
	MaxTimerSessions  int    `toml:"max_timer_sessions"`
	CompletionChannel string `toml:"completion_channel"`
	// workouts
	WorkoutsRateLimitAllowedPerMin int `toml:"workouts_rate_limit_allowed_per_min"`
	// exercises
	ExercisesCsvPath     string        `toml:"exercises_csv_path"`
	ExercisesCacheSizeMB int           `toml:"exercises_cache_size_mb"`
	ExercisesCacheTTL    time.Duration `toml:"exercises_cache_ttl"`
	// misc
	TipsCsvPath string `toml:"tips_csv_path"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	cfg.setDefaults()

	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.WorkoutsRateLimitAllowedPerMin <= 0 {
		c.WorkoutsRateLimitAllowedPerMin = 30
	}
	if c.ExercisesCacheSizeMB <= 0 {
		c.ExercisesCacheSizeMB = 10
	}
	if c.ExercisesCacheTTL <= 0 {
		c.ExercisesCacheTTL = 10 * time.Minute
	}
	if c.TipsCsvPath == "" {
		c.TipsCsvPath = "./assets/tips.csv"
	}
}
