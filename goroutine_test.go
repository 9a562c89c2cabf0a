package logfacade

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineID_DistinctPerGoroutine(t *testing.T) {
	main := goroutineID()
	assert.Positive(t, main)
	assert.Equal(t, main, goroutineID())

	const n = 16
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = goroutineID()
		}(i)
	}
	wg.Wait()

	seen := map[int64]bool{main: true}
	for _, id := range ids {
		assert.Positive(t, id)
		assert.False(t, seen[id], "goroutine id %d reused while running", id)
		seen[id] = true
	}
}
