package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/KurtErsin/perfume/internal/catalog"
)

// Server holds the HTTP listener settings.
type Server struct {
	Host      string  `mapstructure:"host"`
	Port      int     `mapstructure:"port"`
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

// Addr returns host:port.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Catalog selects the data source and collation.
type Catalog struct {
	Path   string `mapstructure:"path"`
	Locale string `mapstructure:"locale"`
}

// Weights mirrors the recommendation weights.
type Weights struct {
	Note   int `mapstructure:"note"`
	Brand  int `mapstructure:"brand"`
	Gender int `mapstructure:"gender"`
}

// Engine converts w to the recommender's weights.
func (w Weights) Engine() catalog.Weights {
	return catalog.Weights{Note: w.Note, Brand: w.Brand, Gender: w.Gender}
}

// Recommend holds recommendation tuning.
type Recommend struct {
	Limit   int     `mapstructure:"limit"`
	Weights Weights `mapstructure:"weights"`
}

// Session holds session expiry timings.
type Session struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// Shop holds the outbound shop links keyed by perfume ID, either as full
// URLs or as product handles under BaseURL.
type Shop struct {
	BaseURL string            `mapstructure:"base_url"`
	Handles map[string]string `mapstructure:"handles"`
	Links   map[string]string `mapstructure:"links"`
}

// Log holds logger settings.
type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Settings is the full typed configuration.
type Settings struct {
	Server    Server    `mapstructure:"server"`
	Catalog   Catalog   `mapstructure:"catalog"`
	Recommend Recommend `mapstructure:"recommend"`
	Session   Session   `mapstructure:"session"`
	Shop      Shop      `mapstructure:"shop"`
	Log       Log       `mapstructure:"log"`
}

// Settings decodes the typed configuration and checks it.
func (c *Config) Settings() (Settings, error) {
	var s Settings
	if err := c.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first setting that cannot be used.
func (s Settings) Validate() error {
	if s.Server.Port < 0 || s.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", s.Server.Port)
	}
	if s.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}
	if s.Recommend.Limit < 0 || s.Recommend.Limit > catalog.DefaultRecommendLimit {
		return fmt.Errorf("recommend.limit %d out of range 0..%d", s.Recommend.Limit, catalog.DefaultRecommendLimit)
	}
	if err := s.Recommend.Weights.Engine().Validate(); err != nil {
		return err
	}
	if _, err := s.Catalog.Tag(); err != nil {
		return err
	}
	return nil
}

// Tag parses the collation locale. An empty locale means English.
func (c Catalog) Tag() (language.Tag, error) {
	if c.Locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("catalog.locale %q: %w", c.Locale, err)
	}
	return tag, nil
}
