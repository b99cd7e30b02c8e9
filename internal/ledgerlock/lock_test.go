package ledgerlock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockerSerializesSameKey(t *testing.T) {
	locker := NewLocker()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		counter int
		max     int
	)

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release := locker.Lock("00042")
			defer release()

			mu.Lock()
			counter++
			if counter > max {
				max = counter
			}
			mu.Unlock()

			mu.Lock()
			counter--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, max, "holders of the same key must never overlap")
}

func TestLockerIndependentKeys(t *testing.T) {
	locker := NewLocker()

	releaseA := locker.Lock("00001")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		release := locker.Lock("00002")
		release()
		close(done)
	}()

	<-done
}

func TestLockerReleasesEntry(t *testing.T) {
	locker := NewLocker()

	release := locker.Lock("00007")
	release()

	locker.mu.Lock()
	defer locker.mu.Unlock()
	assert.Empty(t, locker.locks)
}
