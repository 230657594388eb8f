package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vincentb/aurelie/internal/mastery"
	"github.com/vincentb/aurelie/internal/spacedrep"
	"github.com/vincentb/aurelie/internal/store"
)

// Config holds all configuration for the engine.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Learner  string         `mapstructure:"learner"`
	Session  SessionConfig  `mapstructure:"session"`
	Mastery  MasteryConfig  `mapstructure:"mastery"`
	Review   ReviewConfig   `mapstructure:"review"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds storage configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SessionConfig holds session composition configuration.
type SessionConfig struct {
	Limit int `mapstructure:"limit"`
}

// MasteryConfig holds the topic mastery thresholds.
type MasteryConfig struct {
	PracticingAttempts int     `mapstructure:"practicing_attempts"`
	MasteredAttempts   int     `mapstructure:"mastered_attempts"`
	MasteredAccuracy   float64 `mapstructure:"mastered_accuracy"`
}

// ReviewConfig holds review scheduling configuration.
type ReviewConfig struct {
	SuspendAfterTopStreak int `mapstructure:"suspend_after_top_streak"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("aurelie")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if dir, err := store.ConfigDir(); err == nil {
		viper.AddConfigPath(dir)
	}

	setDefaults()

	viper.SetEnvPrefix("AURELIE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if config.Database.Path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		config.Database.Path = p
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("learner", "default")

	viper.SetDefault("session.limit", 10)

	viper.SetDefault("mastery.practicing_attempts", 5)
	viper.SetDefault("mastery.mastered_attempts", 15)
	viper.SetDefault("mastery.mastered_accuracy", 0.9)

	viper.SetDefault("review.suspend_after_top_streak", 3)

	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
}

// MasteryLevels converts the configured thresholds for the mastery package.
func (c *Config) MasteryLevels() mastery.Levels {
	return mastery.Levels{
		PracticingAttempts: c.Mastery.PracticingAttempts,
		MasteredAttempts:   c.Mastery.MasteredAttempts,
		MasteredAccuracy:   c.Mastery.MasteredAccuracy,
	}
}

// ReviewPolicy converts the configured scheduling policy.
func (c *Config) ReviewPolicy() spacedrep.Policy {
	return spacedrep.Policy{SuspendAfterTopStreak: c.Review.SuspendAfterTopStreak}
}

// NewLogger builds a configured logrus logger from application config.
func NewLogger(cfg LogConfig) (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
