package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port          int
	DefaultPolicy string
	// Preemptive overrides the default policy's own flag when set.
	Preemptive    *bool
	LogLevel      string
	ClientTimeout time.Duration
}

// New returns a viper instance with the defaults, the SCHEDULER_ environment
// prefix and ./config.yaml as the config file.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.default_policy", "srtf")
	v.SetDefault("log.level", "info")
	v.SetDefault("client.timeout", 10*time.Second)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and decodes v. A missing file leaves
// the defaults in place.
func Load(v *viper.Viper) (*SchedulerConfig, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:          v.GetInt("port"),
		DefaultPolicy: v.GetString("scheduler.default_policy"),
		LogLevel:      v.GetString("log.level"),
		ClientTimeout: v.GetDuration("client.timeout"),
	}
	if v.IsSet("scheduler.preemptive") {
		preemptive := v.GetBool("scheduler.preemptive")
		config.Preemptive = &preemptive
	}
	return config, nil
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads v on the first call. Later calls return the same
// config and ignore their argument.
func GetSchedulerConfig(v *viper.Viper) (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load(v)
	})

	return config, configErr
}

func (c *SchedulerConfig) SlogLevel() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
