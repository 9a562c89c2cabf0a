package logfacade

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_CreatesOncePerName(t *testing.T) {
	p := newRecordingProvider(InfoLevel)
	r := newRegistry(p)

	a := r.get("host.pkg.1.Client.Start")
	b := r.get("host.pkg.1.Client.Start")
	c := r.get("host.pkg.1.Client.Stop")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 1, p.creations("host.pkg.1.Client.Start"))
	assert.Equal(t, 2, r.len())
}

func TestRegistry_ConcurrentFirstUse(t *testing.T) {
	const goroutines = 64
	p := newRecordingProvider(InfoLevel)
	r := newRegistry(p)

	var wg sync.WaitGroup
	start := make(chan struct{})
	got := make([]ProviderLogger, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			got[i] = r.get("shared")
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, p.creations("shared"))
	assert.Equal(t, 1, r.len())
	for _, l := range got {
		assert.Same(t, got[0], l)
	}
}
