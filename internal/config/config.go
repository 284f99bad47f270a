package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds everything dashdo reads from config.yaml and DASHDO_* variables.
type Config struct {
	// Home is the directory holding list files; empty means ~/.dashdo.
	Home        string
	Extension   string
	DefaultList string
	Cache       CacheConfig
	Logger      LoggerConfig
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration using Viper. When path is empty the file
// config.yaml is searched in $DASHDO_HOME and the working directory; a missing
// file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DASHDO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home := os.Getenv("DASHDO_HOME"); home != "" {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Home:        v.GetString("home"),
		Extension:   v.GetString("extension"),
		DefaultList: v.GetString("default_list"),
		Cache: CacheConfig{
			Size: v.GetInt("cache.size"),
			TTL:  v.GetDuration("cache.ttl"),
		},
		Logger: LoggerConfig{
			Level:    v.GetString("logger.level"),
			Encoding: v.GetString("logger.encoding"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("home", "")
	v.SetDefault("extension", ".todo")
	v.SetDefault("default_list", "inbox")
	v.SetDefault("cache.size", 64)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.encoding", "console")
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	if strings.TrimSpace(c.DefaultList) == "" {
		return errors.New("default_list must not be empty")
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative, got %d", c.Cache.Size)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	if _, err := zapcore.ParseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("logger.level: %w", err)
	}
	switch c.Logger.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("logger.encoding %q must be console or json", c.Logger.Encoding)
	}
	return nil
}
