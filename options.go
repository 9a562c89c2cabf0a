package logfacade

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Option configures a Facade.
type Option func(*options)

type options struct {
	appConfigPath string
	config        *Config
	provider      Provider
	writers       []io.Writer
	hooks         []zerolog.Hook
	registerer    prometheus.Registerer
}

// WithAppConfigPath sets the application config file next to which the
// logging configuration is looked up. Defaults to "<executable>.yaml".
func WithAppConfigPath(path string) Option {
	return func(o *options) { o.appConfigPath = path }
}

// WithConfig uses cfg as is and skips discovery and watching.
func WithConfig(cfg *Config) Option {
	return func(o *options) { o.config = cfg }
}

// WithProvider replaces the zerolog provider.
func WithProvider(p Provider) Option {
	return func(o *options) { o.provider = p }
}

// WithWriter adds a sink to the zerolog provider in addition to the
// configured console and file sinks.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writers = append(o.writers, w) }
}

// WithHooks installs zerolog hooks on the provider's base logger.
func WithHooks(hooks ...zerolog.Hook) Option {
	return func(o *options) { o.hooks = append(o.hooks, hooks...) }
}

// WithRegisterer registers the façade's metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}
