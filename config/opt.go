package config

type options struct {
	file   string
	prefix string
}

// An OptFn configures how Load reads a Config.
type OptFn func(*options)

// WithFile reads the config file at path, whatever CONNEG_CONFIG says.
func WithFile(path string) OptFn {
	return func(o *options) {
		o.file = path
	}
}

// WithEnvPrefix reads environment variables prefixed with prefix rather than CONNEG.
func WithEnvPrefix(prefix string) OptFn {
	return func(o *options) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}
