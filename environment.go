package conneg

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// An Environment is a different context in which a conneg app operates.
type Environment string

const (
	Demo        Environment = "DEMO"
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Demo, Development, Production, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) IsTesting() bool { return e == Testing }

// ReportsPanics asserts whether panics raised while handling requests
// ought to be recovered and shipped to an error tracker.
func (e Environment) ReportsPanics() bool {
	switch e {
	case Demo, Production, Staging:
		return true
	default:
		return false
	}
}

// EnvVarOrBool gets the environment variable for the provided key and
// returns whether it matches "true" or "false" (after lower casing it)
// or the default value.
func EnvVarOrBool(key string, def bool) bool {
	val := os.Getenv(key)
	if strings.ToLower(val) == "true" {
		return true
	}

	if strings.ToLower(val) == "false" {
		return false
	}

	return def
}

// EnvVarOrDuration gets the environment variable for the provided key,
// parses it into a [time.Duration], or, returns
// the default [time.Duration].
func EnvVarOrDuration(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	d, err := time.ParseDuration(val)
	if err != nil {
		return def
	}
	return d
}

// EnvVarOrEnv gets the environment variable for the provided key,
// casts it into an [Environment],
// or returns the provided default [Environment] if key is not a valid [Environment].
func EnvVarOrEnv(key string, def Environment) Environment {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	env := Environment(strings.ToUpper(val))
	if err := env.Valid(); err != nil {
		return def
	}

	return env
}

// EnvVarOrInt gets the environment variable for the provided key,
// creates an int from the retrieved value,
// or returns the provided default
// if the value is not a valid int.
func EnvVarOrInt(key string, def int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}

	return val
}

// EnvVarOrPriorities gets the environment variable for the provided key
// and reads it with ParsePriorities.
// If the variable is unset or holds no pairs, def returns.
func EnvVarOrPriorities(key string, def map[string]any) map[string]any {
	m := ParsePriorities(os.Getenv(key))
	if len(m) == 0 {
		return def
	}

	return m
}

// ParsePriorities reads a comma-separated list of format=priority pairs, e.g., "html=1,json=2".
//
// A priority that is not an integer is kept as the raw string;
// whoever consumes the table decides what to do with it.
func ParsePriorities(val string) map[string]any {
	m := make(map[string]any)
	for _, pair := range strings.Split(val, ",") {
		format, raw, ok := strings.Cut(strings.TrimSpace(pair), "=")
		format = strings.TrimSpace(format)
		if !ok || format == "" {
			continue
		}

		raw = strings.TrimSpace(raw)
		if i, err := strconv.Atoi(raw); err == nil {
			m[format] = i
			continue
		}

		m[format] = raw
	}

	return m
}

// EnvVarOrString gets the environment variable for the provided key or the provided default string.
func EnvVarOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	return val
}

// EnvVarOrURL gets the environment variable for the provided or the provided default *url.URL.
func EnvVarOrURL(key, def string) *url.URL {
	defURL, err := url.ParseRequestURI(def)
	if err != nil {
		return nil
	}

	if defURL.Path != "/" {
		defURL.Path = "/"
	}

	val := os.Getenv(key)
	if val == "" {
		return defURL
	}

	u, err := url.ParseRequestURI(val)
	if err != nil {
		return defURL
	}

	return u
}
