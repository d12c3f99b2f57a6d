// Package config loads greet settings from a YAML file and GREET_* variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/ZacharyZcR/greet/internal/notify"
)

// EnvPrefix is the prefix for environment overrides, e.g. GREET_NOTIFIER.
const EnvPrefix = "GREET"

// Config holds the runtime settings.
type Config struct {
	Notifier string    `mapstructure:"notifier"`
	Color    bool      `mapstructure:"color"`
	Title    string    `mapstructure:"title"`
	Log      LogConfig `mapstructure:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	// AlertLevel is the level of records written by the log notifier.
	AlertLevel string `mapstructure:"alert_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("notifier", notify.KindConsole)
	v.SetDefault("color", true)
	v.SetDefault("title", notify.DefaultTitle)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.alert_level", "info")
}

// Load reads the config file at path (optional) and applies environment
// overrides on top of the defaults. The result is not validated so callers
// can apply flag overrides first; call Validate afterwards.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the notifier kind and log levels.
func (c *Config) Validate() error {
	if !notify.IsKnown(c.Notifier) {
		return fmt.Errorf("notifier %q not supported (want one of %s)",
			c.Notifier, strings.Join(notify.Kinds(), ", "))
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	if _, err := c.Log.ZapAlertLevel(); err != nil {
		return err
	}
	return nil
}

// ZapLevel parses Level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// ZapAlertLevel parses AlertLevel.
func (l LogConfig) ZapAlertLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.AlertLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log.alert_level: %w", err)
	}
	return lvl, nil
}
