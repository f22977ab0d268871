// Package config wraps viper with the perfume server's defaults and typed
// settings.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// PERFUME_SERVER_PORT for server.port.
const EnvPrefix = "PERFUME"

// Config is a read-only view over a viper instance. A Config built from a nil
// viper returns zero values for every key.
type Config struct {
	v *viper.Viper
}

// New wraps v.
func New(v *viper.Viper) *Config {
	return &Config{v: v}
}

// Viper returns the underlying viper instance, or nil.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// GetString returns the value of key as a string.
func (c *Config) GetString(key string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

// GetInt returns the value of key as an int.
func (c *Config) GetInt(key string) int {
	if c.v == nil {
		return 0
	}
	return c.v.GetInt(key)
}

// GetFloat64 returns the value of key as a float64.
func (c *Config) GetFloat64(key string) float64 {
	if c.v == nil {
		return 0
	}
	return c.v.GetFloat64(key)
}

// GetBool returns the value of key as a bool.
func (c *Config) GetBool(key string) bool {
	if c.v == nil {
		return false
	}
	return c.v.GetBool(key)
}

// GetDuration returns the value of key as a time.Duration.
func (c *Config) GetDuration(key string) time.Duration {
	if c.v == nil {
		return 0
	}
	return c.v.GetDuration(key)
}

// GetStringMapString returns the value of key as a string map.
func (c *Config) GetStringMapString(key string) map[string]string {
	if c.v == nil {
		return map[string]string{}
	}
	return c.v.GetStringMapString(key)
}

// IsSet reports whether key has a value from any source.
func (c *Config) IsSet(key string) bool {
	if c.v == nil {
		return false
	}
	return c.v.IsSet(key)
}

// Sub returns the subtree at key. A missing subtree yields an empty Config,
// never nil.
func (c *Config) Sub(key string) *Config {
	if c.v == nil {
		return New(nil)
	}
	return New(c.v.Sub(key))
}

// Unmarshal decodes the whole tree into target using mapstructure tags.
func (c *Config) Unmarshal(target any) error {
	if c.v == nil {
		return nil
	}
	return c.v.Unmarshal(target)
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.locale", "en")
	v.SetDefault("recommend.limit", 4)
	v.SetDefault("recommend.weights.note", 100)
	v.SetDefault("recommend.weights.brand", 10)
	v.SetDefault("recommend.weights.gender", 1)
	v.SetDefault("session.idle_timeout", "30m")
	v.SetDefault("session.sweep_interval", "1m")
	v.SetDefault("shop.base_url", "")
	v.SetDefault("shop.handles", map[string]string{})
	v.SetDefault("shop.links", map[string]string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load builds a Config from defaults, the optional file at path, and
// PERFUME_* environment variables, in increasing precedence. With an empty
// path, perfume.yaml is looked up in the working directory and
// /etc/perfume; not finding it is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("perfume")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/perfume")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return New(v), nil
}
