package logfacade

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Provider is the logging backend the façade delegates emission to.
type Provider interface {
	// Logger returns the logger bound to name. The façade caches the
	// result, so it is called at most once per name.
	Logger(name string) ProviderLogger
	// Root returns the root logger, used to seed the level gate snapshot.
	Root() ProviderLogger
}

// ProviderLogger is a named logger of a Provider.
type ProviderLogger interface {
	Name() string
	Enabled(level Level) bool
	Emit(rec Record)
}

// CallContext is the per-call, stack derived context of an entry.
type CallContext struct {
	MachineName string
	ProcessID   int
	ThreadID    int64
	ClassName   string
	MethodName  string
	File        string
	Line        int
}

// Record is a fully materialised entry handed to the provider.
type Record struct {
	Level   Level
	Message string
	Context CallContext
	// Err, when set, is attached with its full cause chain.
	Err error
}

// levelTable resolves the threshold of a logger name from the root level
// and the configured overrides.
type levelTable struct {
	root      Level
	overrides []levelOverride // longest key first
}

type levelOverride struct {
	key   string
	level Level
}

func newLevelTable(cfg *Config) (*levelTable, error) {
	root, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	t := &levelTable{root: root}
	for key, name := range cfg.Loggers {
		lvl, err := ParseLevel(name)
		if err != nil {
			return nil, err
		}
		t.overrides = append(t.overrides, levelOverride{key: key, level: lvl})
	}
	sort.Slice(t.overrides, func(i, j int) bool {
		if len(t.overrides[i].key) != len(t.overrides[j].key) {
			return len(t.overrides[i].key) > len(t.overrides[j].key)
		}
		return t.overrides[i].key < t.overrides[j].key
	})
	return t, nil
}

func (t *levelTable) resolve(name string) Level {
	for _, o := range t.overrides {
		if matchesSegments(name, o.key) {
			return o.level
		}
	}
	return t.root
}

func (t *levelTable) enablesTrace() bool {
	if t.root.enables(TraceLevel) {
		return true
	}
	for _, o := range t.overrides {
		if o.level.enables(TraceLevel) {
			return true
		}
	}
	return false
}

// matchesSegments reports whether key appears in name as a run of whole
// dot separated segments, e.g. "main.Client" in "host.main.42.main.Client.Start".
func matchesSegments(name, key string) bool {
	if key == emptyString {
		return false
	}
	for from := 0; from <= len(name)-len(key); {
		i := strings.Index(name[from:], key)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(key)
		if (start == 0 || name[start-1] == '.') && (end == len(name) || name[end] == '.') {
			return true
		}
		from = start + 1
	}
	return false
}

// zerologProvider emits through a single zerolog logger; each named logger
// adds its name to the entries it writes. Both the logger and the level
// table can be replaced while named loggers are in use.
type zerologProvider struct {
	base   atomic.Pointer[zerolog.Logger]
	levels atomic.Pointer[levelTable]
	root   *zerologLogger
}

func newZerologProvider(base zerolog.Logger, cfg *Config) (*zerologProvider, error) {
	p := &zerologProvider{}
	p.base.Store(&base)
	if err := p.reload(cfg); err != nil {
		return nil, err
	}
	p.root = p.newLogger(rootLoggerName)
	p.root.isRoot = true
	return p, nil
}

// reload replaces the level table only.
func (p *zerologProvider) reload(cfg *Config) error {
	t, err := newLevelTable(cfg)
	if err != nil {
		return err
	}
	p.setLevels(t)
	return nil
}

// replace swaps the base logger and the level table.
func (p *zerologProvider) replace(base zerolog.Logger, t *levelTable) {
	p.base.Store(&base)
	p.setLevels(t)
}

func (p *zerologProvider) setLevels(t *levelTable) {
	p.levels.Store(t)
	// zerolog drops Trace below its global level, which defaults to Debug.
	if t.enablesTrace() && zerolog.GlobalLevel() > zerolog.TraceLevel {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
}

func (p *zerologProvider) Logger(name string) ProviderLogger {
	return p.newLogger(name)
}

func (p *zerologProvider) Root() ProviderLogger {
	return p.root
}

func (p *zerologProvider) newLogger(name string) *zerologLogger {
	return &zerologLogger{name: name, provider: p}
}

type zerologLogger struct {
	name     string
	provider *zerologProvider
	isRoot   bool
}

func (l *zerologLogger) Name() string { return l.name }

// Enabled consults the current level table, so reloads apply to loggers
// created before them.
func (l *zerologLogger) Enabled(level Level) bool {
	if l.isRoot {
		return l.provider.levels.Load().root.enables(level)
	}
	return l.provider.levels.Load().resolve(l.name).enables(level)
}

// Emit writes rec as one event. Per-call properties live only on that
// event, so concurrent calls never observe each other's context.
func (l *zerologLogger) Emit(rec Record) {
	// WithLevel does not exit or panic at Fatal.
	event := l.provider.base.Load().WithLevel(rec.Level.zerolog())
	if event == nil {
		return
	}
	event.Str(FieldLogger, l.name)
	c := rec.Context
	if c.MachineName != emptyString {
		event.Str(FieldMachine, c.MachineName)
	}
	event.Int(FieldPID, c.ProcessID)
	if c.ThreadID != 0 {
		event.Int64(FieldThread, c.ThreadID)
	}
	if c.ClassName != emptyString {
		event.Str(FieldClass, c.ClassName)
	}
	if c.MethodName != emptyString {
		event.Str(FieldMethod, c.MethodName)
	}
	if c.File != emptyString {
		event.Str(FieldCaller, c.File+":"+strconv.Itoa(c.Line))
	}
	if rec.Err != nil {
		addErrorChain(event, zerolog.ErrorFieldName, rec.Err)
	}
	event.Msg(rec.Message)
}
