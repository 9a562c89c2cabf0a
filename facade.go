package logfacade

import (
	stderrs "errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Facade is a call-site aware logger. It derives the logger name and the
// per-call context from the caller's stack frame, gates on level before the
// message is built, and never lets its own failures reach the caller.
//
// A Facade is safe for concurrent use. Construct one with New, or use the
// package-level functions backed by Default.
type Facade struct {
	source   configSource
	provider Provider
	registry *registry
	metrics  *metrics
	watcher  *configWatcher
	settings atomic.Pointer[settings]

	// Sinks of the zerolog provider, rebuilt on reload.
	writers []io.Writer
	hooks   []zerolog.Hook

	// mu is held for reading while an entry is written and for writing
	// while sinks are replaced or closed.
	mu   sync.RWMutex
	file *lumberjack.Logger

	// Captured once in New and never changed.
	gate     levelGate
	pid      int
	machine  string
	fallback string

	closed atomic.Bool
}

// settings are the parts of the configuration read on every call. They are
// replaced as a whole when the configuration is reloaded.
type settings struct {
	cfg      *Config
	reencode reencoder
	wrappers wrapperMatcher
}

func newSettings(cfg *Config) (*settings, error) {
	re, err := newReencoder(cfg.Reencode)
	if err != nil {
		return nil, err
	}
	return &settings{
		cfg:      cfg,
		reencode: re,
		wrappers: newWrapperMatcher(cfg.WrapperTypes, cfg.WrapperPrefixes),
	}, nil
}

// levelGate is a snapshot of the root logger's thresholds, used as a cheap
// pre-check before resolving the call site. The named logger is still
// checked before the message is built.
type levelGate struct {
	debug bool
	info  bool
	warn  bool
}

// allows never blocks Fatal, Error or Trace; Trace is left to the named logger.
func (g levelGate) allows(level Level) bool {
	switch level {
	case WarnLevel:
		return g.warn
	case InfoLevel:
		return g.info
	case DebugLevel:
		return g.debug
	default:
		return true
	}
}

// New builds a Facade. Unless WithConfig is given, the configuration is
// discovered next to the application config file and watched for changes.
func New(opts ...Option) (*Facade, error) {
	const op errors.Op = "logfacade.New"

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := o.config
	var src configSource
	if cfg == nil {
		path := o.appConfigPath
		if path == emptyString {
			path = defaultAppConfigPath()
		}
		src = discoverConfig(path)
		loaded, err := loadConfig(src)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	set, err := newSettings(cfg)
	if err != nil {
		return nil, err
	}

	f := &Facade{
		source:  src,
		writers: o.writers,
		hooks:   o.hooks,
		pid:     os.Getpid(),
		machine: machineName(),
	}
	f.settings.Store(set)
	f.fallback = strings.Join([]string{
		fallbackLoggerPrefix, strconv.Itoa(f.pid), fallbackLoggerClass, fallbackLoggerMethod,
	}, ".")

	f.provider = o.provider
	if f.provider == nil {
		writers, file, err := buildWriters(cfg, baseDir(src), f.writers)
		if err != nil {
			return nil, err
		}
		f.file = file
		p, err := newZerologProvider(newBaseLogger(cfg, writers, f.hooks), cfg)
		if err != nil {
			_ = f.closeResources()
			return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
		}
		f.provider = p
	}
	f.registry = newRegistry(f.provider)

	root := f.provider.Root()
	f.gate = levelGate{
		debug: root.Enabled(DebugLevel),
		info:  root.Enabled(InfoLevel),
		warn:  root.Enabled(WarnLevel),
	}

	if f.metrics, err = newMetrics(o.registerer, f.registry.len); err != nil {
		_ = f.closeResources()
		return nil, errors.New(op).Err(err).Msg("Metrics registration failed.")
	}

	if !cfg.DisableWatch && src.Path != emptyString {
		if f.watcher, err = watchConfig(src, f.reconfigure, f.report); err != nil {
			_ = f.closeResources()
			return nil, err
		}
	}

	return f, nil
}

// reconfigure applies a reloaded configuration. Sinks, named logger levels,
// re-encoding and wrapper rules are replaced once the entries being
// written have been flushed; the level gate snapshot is kept. A façade
// built WithProvider keeps its provider and only takes the settings.
func (f *Facade) reconfigure(cfg *Config) error {
	const op errors.Op = "logfacade.Facade.reconfigure"

	set, err := newSettings(cfg)
	if err != nil {
		return err
	}

	zp, ownSinks := f.provider.(*zerologProvider)
	var (
		base  zerolog.Logger
		file  *lumberjack.Logger
		table *levelTable
	)
	if ownSinks {
		if table, err = newLevelTable(cfg); err != nil {
			return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
		}
		var writers []io.Writer
		if writers, file, err = buildWriters(cfg, baseDir(f.source), f.writers); err != nil {
			return err
		}
		base = newBaseLogger(cfg, writers, f.hooks)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed.Load() {
		if file != nil {
			return file.Close()
		}
		return nil
	}

	f.settings.Store(set)
	if !ownSinks {
		return nil
	}
	zp.replace(base, table)
	old := f.file
	f.file = file
	if old != nil {
		if err = old.Close(); err != nil {
			return errors.New(op).Err(err).Msg(errMsgLogFileClose)
		}
	}
	return nil
}

// Close stops watching the configuration, waits for entries being written
// and closes the log file. Entries logged afterwards are dropped.
// Later calls are no-ops; it's safe to call Close multiple times.
func (f *Facade) Close() error {
	if f == nil {
		return nil
	}
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.closeResources()
}

func (f *Facade) closeResources() error {
	var errs []error
	// The watcher goes first: a reload in progress needs mu.
	if f.watcher != nil {
		errs = append(errs, f.watcher.stop())
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file != nil {
		errs = append(errs, f.file.Close())
		f.file = nil
	}
	return stderrs.Join(errs...)
}

// IsDebugEnabled reports whether the root logger accepted Debug at construction.
func (f *Facade) IsDebugEnabled() bool { return f != nil && f.gate.debug }

// IsInfoEnabled reports whether the root logger accepted Info at construction.
func (f *Facade) IsInfoEnabled() bool { return f != nil && f.gate.info }

// IsWarnEnabled reports whether the root logger accepted Warn at construction.
func (f *Facade) IsWarnEnabled() bool { return f != nil && f.gate.warn }

// ProcessID returns the process id captured at construction.
func (f *Facade) ProcessID() int {
	if f == nil {
		return os.Getpid()
	}
	return f.pid
}

// MachineName returns the host name captured at construction.
func (f *Facade) MachineName() string {
	if f == nil {
		return machineName()
	}
	return f.machine
}

// Config returns a copy of the configuration in use.
func (f *Facade) Config() Config {
	if f == nil {
		return *DefaultConfig()
	}
	return *f.settings.Load().cfg
}

// ConfigPath returns the configuration file in use, or "" for defaults.
func (f *Facade) ConfigPath() string {
	if f == nil {
		return emptyString
	}
	return f.source.Path
}

func baseDir(src configSource) string {
	if src.Path != emptyString {
		return filepath.Dir(src.Path)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func machineName() string {
	host, err := os.Hostname()
	if err != nil || host == emptyString {
		return "unknown"
	}
	return host
}
