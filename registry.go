package logfacade

import (
	"sync"

	"go.uber.org/atomic"
)

// registry caches one ProviderLogger per composite name for the life of
// the façade. Reads of published entries are lock-free; the mutex only
// serialises creation so the provider is asked once per name.
type registry struct {
	provider Provider
	loggers  sync.Map // string -> ProviderLogger
	mu       sync.Mutex
	size     atomic.Int64
}

func newRegistry(p Provider) *registry {
	return &registry{provider: p}
}

func (r *registry) get(name string) ProviderLogger {
	if v, ok := r.loggers.Load(name); ok {
		return v.(ProviderLogger)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have published it while we waited.
	if v, ok := r.loggers.Load(name); ok {
		return v.(ProviderLogger)
	}
	l := r.provider.Logger(name)
	r.loggers.Store(name, l)
	r.size.Inc()
	return l
}

func (r *registry) len() int {
	return int(r.size.Load())
}
