package logfacade

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// emitted is a Record together with the logger that emitted it.
type emitted struct {
	Record
	logger string
}

// recordingProvider applies one threshold to every logger and keeps
// everything that is emitted.
type recordingProvider struct {
	level Level

	mu      sync.Mutex
	created map[string]int
	records []emitted
	root    *recordingLogger
}

func newRecordingProvider(level Level) *recordingProvider {
	p := &recordingProvider{level: level, created: map[string]int{}}
	p.root = &recordingLogger{name: rootLoggerName, p: p}
	return p
}

func (p *recordingProvider) Logger(name string) ProviderLogger {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created[name]++
	return &recordingLogger{name: name, p: p}
}

func (p *recordingProvider) Root() ProviderLogger { return p.root }

func (p *recordingProvider) entries() []emitted {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]emitted(nil), p.records...)
}

func (p *recordingProvider) creations(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.created[name]
}

type recordingLogger struct {
	name string
	p    *recordingProvider
}

func (l *recordingLogger) Name() string { return l.name }

func (l *recordingLogger) Enabled(level Level) bool { return l.p.level.enables(level) }

func (l *recordingLogger) Emit(rec Record) {
	l.p.mu.Lock()
	defer l.p.mu.Unlock()
	l.p.records = append(l.p.records, emitted{Record: rec, logger: l.name})
}

// newTestFacade returns a façade over a recordingProvider at level.
func newTestFacade(t testing.TB, level Level, mutate ...func(*Config)) (*Facade, *recordingProvider) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Level = level.String()
	cfg.DisableWatch = true
	for _, m := range mutate {
		m(cfg)
	}
	p := newRecordingProvider(level)
	f, err := New(WithConfig(cfg), WithProvider(p))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f, p
}

// exampleClient stands in for application code calling the façade.
type exampleClient struct {
	log Logger
}

func (c *exampleClient) Start() {
	c.log.InfoFn(func() string { return "Start" })
}

func (c *exampleClient) Stop() {
	c.log.Info("Stop")
}

// auditLogger is an application-side wrapper around the façade.
type auditLogger struct {
	f *Facade
}

func (a auditLogger) Info(msg string) {
	a.f.Info(msg)
}

func (a auditLogger) where() (CallSite, error) {
	return resolveCallSite(0, newWrapperMatcher([]string{"auditLogger"}, nil))
}
