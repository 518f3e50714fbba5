// Package automod holds the in-memory moderation primitives: the sliding
// window rate tracker and the ordered rule pipeline. Nothing in this
// package touches storage; counts are process-local and reset on restart.
package automod

import (
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// WindowTracker keeps per-key sliding windows of event timestamps. Keys are
// caller-defined ("guild:user" for spam, "guild" for join bursts). Entries
// prune lazily on access; an idle key costs one slice until its next hit.
type WindowTracker struct {
	windows *xsync.MapOf[string, *window]
}

type window struct {
	mu    sync.Mutex
	times []time.Time
}

// NewWindowTracker creates an empty tracker.
func NewWindowTracker() *WindowTracker {
	return &WindowTracker{
		windows: xsync.NewMapOf[string, *window](),
	}
}

// RecordAndCheck appends now to the key's window, prunes entries older than
// span, and reports whether the window now holds at least threshold
// entries. The recording happens regardless of the outcome, so the call
// that crosses the threshold counts itself.
func (t *WindowTracker) RecordAndCheck(key string, now time.Time, span time.Duration, threshold int) bool {
	if threshold <= 0 || span <= 0 {
		return false
	}

	w, _ := t.windows.LoadOrCompute(key, func() *window { return &window{} })

	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := now.Add(-span)
	kept := w.times[:0]
	for _, ts := range w.times {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	w.times = append(kept, now)

	return len(w.times) >= threshold
}

// Count returns the number of entries currently inside the key's window
// without recording anything.
func (t *WindowTracker) Count(key string, now time.Time, span time.Duration) int {
	w, ok := t.windows.Load(key)
	if !ok {
		return 0
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := now.Add(-span)
	n := 0
	for _, ts := range w.times {
		if ts.After(cutoff) {
			n++
		}
	}
	return n
}
