// Package config loads jobviz configuration from config.yaml and JOBVIZ_*
// environment variables, and initializes the global logger.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Adjust AdjustConfig `yaml:"adjust" mapstructure:"adjust"`
	Fetch  FetchConfig  `yaml:"fetch" mapstructure:"fetch"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// DataConfig locates each dataset. Values are local paths or http(s) URLs.
type DataConfig struct {
	Occupations string `yaml:"occupations" mapstructure:"occupations"`
	Estimates   string `yaml:"estimates" mapstructure:"estimates"`
	Timeline    string `yaml:"timeline" mapstructure:"timeline"`
	Robots      string `yaml:"robots" mapstructure:"robots"`
	Map         string `yaml:"map" mapstructure:"map"`
	TempDir     string `yaml:"temp_dir" mapstructure:"temp_dir"`
}

// AdjustConfig configures the automation adjustment.
type AdjustConfig struct {
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
	Unmatched string  `yaml:"unmatched" mapstructure:"unmatched"`
}

// FetchConfig configures remote dataset downloads.
type FetchConfig struct {
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries" mapstructure:"max_retries"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
}

// Timeout returns the per-request timeout.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSecs) * time.Second
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("JOBVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.occupations", "data/ByState2014.csv")
	v.SetDefault("data.estimates", "data/The-Future-of-Employment.csv")
	v.SetDefault("data.timeline", "data/employment-by-occupation.csv")
	v.SetDefault("data.robots", "data/RobotUnitsSold.csv")
	v.SetDefault("data.map", "")
	v.SetDefault("data.temp_dir", "/tmp/jobviz")
	v.SetDefault("adjust.threshold", 0.5)
	v.SetDefault("adjust.unmatched", "drop")
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.user_agent", "jobviz-cli/1.0")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command mode depends on and reports every
// problem at once. Modes: classify, map, timeline, robots, probability.
func (c *Config) Validate(mode string) error {
	var errs []string
	require := func(key, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, key+" is required")
		}
	}

	switch mode {
	case "classify":
	case "map":
		require("data.occupations", c.Data.Occupations)
		require("data.estimates", c.Data.Estimates)
		if c.Adjust.Threshold <= 0 || c.Adjust.Threshold > 1 {
			errs = append(errs, fmt.Sprintf("adjust.threshold must be in (0, 1], got %v", c.Adjust.Threshold))
		}
		switch strings.ToLower(c.Adjust.Unmatched) {
		case "drop", "keep":
		default:
			errs = append(errs, fmt.Sprintf("adjust.unmatched must be drop or keep, got %q", c.Adjust.Unmatched))
		}
	case "timeline":
		require("data.timeline", c.Data.Timeline)
	case "robots":
		require("data.robots", c.Data.Robots)
	case "probability":
		require("data.estimates", c.Data.Estimates)
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Fetch.TimeoutSecs <= 0 {
		errs = append(errs, "fetch.timeout_secs must be > 0")
	}
	if c.Fetch.MaxRetries < 0 {
		errs = append(errs, "fetch.max_retries must be >= 0")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
