package impl

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	locks := newKeyedMutex()

	var (
		wg      sync.WaitGroup
		active  atomic.Int32
		overlap atomic.Bool
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("psid-1")
			defer unlock()

			if active.Add(1) > 1 {
				overlap.Store(true)
			}
			time.Sleep(time.Millisecond)
			active.Add(-1)
		}()
	}
	wg.Wait()

	assert.False(t, overlap.Load())
	assert.Zero(t, locks.size())
}

func TestKeyedMutex_DistinctKeysDoNotBlock(t *testing.T) {
	locks := newKeyedMutex()

	unlockA := locks.Lock("psid-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("psid-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
	assert.Equal(t, 1, locks.size())
}

func TestKeyedMutex_UnlockIsIdempotent(t *testing.T) {
	locks := newKeyedMutex()

	unlock := locks.Lock("psid-1")
	unlock()
	unlock()

	assert.Zero(t, locks.size())

	relock := locks.Lock("psid-1")
	assert.Equal(t, 1, locks.size())
	relock()
}
