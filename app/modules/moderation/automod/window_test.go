package automod

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowTracker_ThresholdWithinWindow(t *testing.T) {
	tr := NewWindowTracker()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	// 5 messages inside an 8s window with threshold 6: never trips.
	for i := 0; i < 5; i++ {
		assert.False(t, tr.RecordAndCheck("k", base.Add(time.Duration(i)*time.Second), 8*time.Second, 6))
	}
	// The 6th inside the window trips.
	assert.True(t, tr.RecordAndCheck("k", base.Add(5*time.Second), 8*time.Second, 6))
}

func TestWindowTracker_OldEntriesExpire(t *testing.T) {
	tr := NewWindowTracker()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		tr.RecordAndCheck("k", base.Add(time.Duration(i)*time.Second), 8*time.Second, 6)
	}

	// 20s later the window is empty again; this is entry 1 of 6.
	assert.False(t, tr.RecordAndCheck("k", base.Add(25*time.Second), 8*time.Second, 6))
	assert.Equal(t, 1, tr.Count("k", base.Add(25*time.Second), 8*time.Second))
}

func TestWindowTracker_KeysAreIndependent(t *testing.T) {
	tr := NewWindowTracker()
	now := time.Now()

	assert.False(t, tr.RecordAndCheck("a", now, time.Minute, 2))
	assert.False(t, tr.RecordAndCheck("b", now, time.Minute, 2))
	assert.True(t, tr.RecordAndCheck("a", now, time.Minute, 2))
}

func TestWindowTracker_DegenerateInputs(t *testing.T) {
	tr := NewWindowTracker()
	now := time.Now()

	assert.False(t, tr.RecordAndCheck("k", now, time.Minute, 0))
	assert.False(t, tr.RecordAndCheck("k", now, 0, 3))
}

func TestWindowTracker_ConcurrentAccess(t *testing.T) {
	tr := NewWindowTracker()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("g:%d", i%4)
			for j := 0; j < 100; j++ {
				tr.RecordAndCheck(key, now.Add(time.Duration(j)*time.Millisecond), time.Second, 50)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		key := fmt.Sprintf("g:%d", i)
		assert.Equal(t, 400, tr.Count(key, now.Add(time.Second), 2*time.Second))
	}
}
