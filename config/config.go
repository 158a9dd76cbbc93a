package config

import (
	"errors"
	"fmt"
	"math"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/xy-planning-network/conneg"
	"github.com/xy-planning-network/conneg/renderer"
)

const (
	// EnvPrefix prefixes every environment variable read.
	EnvPrefix = "CONNEG"

	// FileEnvVar names the environment variable pointing to a config file.
	FileEnvVar = EnvPrefix + "_CONFIG"

	overridePriorityKey = "override_priority"
)

// Config holds the settings of a conneg application.
type Config struct {
	Environment      conneg.Environment `mapstructure:"environment"`
	Host             string             `mapstructure:"host"`
	Port             string             `mapstructure:"port"`
	BaseURL          string             `mapstructure:"base_url"`
	LogLevel         string             `mapstructure:"log_level"`
	TCNEnabled       bool               `mapstructure:"tcn_enabled"`
	FormatParam      string             `mapstructure:"format_param"`
	OverridePriority renderer.Overrides `mapstructure:"-"`
	SentryDSN        string             `mapstructure:"sentry_dsn"`
	CORSOrigin       string             `mapstructure:"cors_origin"`
	RateLimit        RateLimit          `mapstructure:"rate_limit"`
	Compress         bool               `mapstructure:"compress"`
	ShutdownTimeout  time.Duration      `mapstructure:"shutdown_timeout"`
}

// RateLimit bounds how often one client address may be served.
type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Addr is the address the server listens on.
func (c Config) Addr() string { return net.JoinHostPort(c.Host, c.Port) }

// RootURL parses BaseURL, defaulting to http://Addr.
func (c Config) RootURL() (*url.URL, error) {
	raw := c.BaseURL
	if raw == "" {
		raw = "http://" + c.Addr()
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: base_url: %s", conneg.ErrBadConfig, err)
	}

	return u, nil
}

// Validate checks c holds values the application can run with.
func (c Config) Validate() error {
	if err := c.Environment.Valid(); err != nil {
		return fmt.Errorf("%w: environment %q", conneg.ErrBadConfig, c.Environment)
	}

	if c.Port == "" {
		return fmt.Errorf("%w: port cannot be empty", conneg.ErrBadConfig)
	}

	if c.FormatParam == "" {
		return fmt.Errorf("%w: format_param cannot be empty", conneg.ErrBadConfig)
	}

	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: rate_limit cannot be negative", conneg.ErrBadConfig)
	}

	_, err := c.RootURL()
	return err
}

// Load reads a Config from defaults, a config file, and the environment.
func Load(opts ...OptFn) (Config, error) {
	o := &options{prefix: EnvPrefix}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(o.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := o.file
	if file == "" {
		file = v.GetString("config")
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("conneg")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("%w: load config: %s", conneg.ErrBadConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: unmarshal config: %s", conneg.ErrBadConfig, err)
	}

	cfg.Environment = conneg.Environment(strings.ToUpper(string(cfg.Environment)))
	cfg.OverridePriority = priorities(v.Get(overridePriorityKey))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", conneg.Development.String())
	v.SetDefault("host", "")
	v.SetDefault("port", "8080")
	v.SetDefault("base_url", "")
	v.SetDefault("log_level", "INFO")
	v.SetDefault("tcn_enabled", true)
	v.SetDefault("format_param", "format")
	v.SetDefault("sentry_dsn", "")
	v.SetDefault("cors_origin", "")
	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("compress", true)
	v.SetDefault("shutdown_timeout", "15s")
	v.SetDefault(overridePriorityKey, nil)
}

// priorities normalizes the override table however it was given:
// a map from a file, or a "format=priority" list from the environment.
//
// File formats without integers, such as JSON, yield whole floats; those are read as integers.
func priorities(raw any) renderer.Overrides {
	out := make(renderer.Overrides)
	switch v := raw.(type) {
	case string:
		for format, p := range conneg.ParsePriorities(v) {
			out[format] = p
		}
	case map[string]any:
		for format, p := range v {
			if f, ok := p.(float64); ok && f == math.Trunc(f) {
				p = int(f)
			}
			out[strings.ToLower(format)] = p
		}
	}

	return out
}
