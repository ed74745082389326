package authsync

import (
	"sync"
	"time"
)

const defaultMaxEntries = 10000

// Deduper suppresses a key seen again within its window. It is a bounded TTL map:
// Sweep evicts expired keys and a full map is swept, then reset.
type Deduper struct {
	mu         sync.Mutex
	window     time.Duration
	maxEntries int
	seen       map[string]time.Time
	now        func() time.Time
}

func NewDeduper(window time.Duration, maxEntries int) *Deduper {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &Deduper{
		window:     window,
		maxEntries: maxEntries,
		seen:       make(map[string]time.Time),
		now:        time.Now,
	}
}

// Allow records key and reports whether it was not seen within the window
func (d *Deduper) Allow(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if last, ok := d.seen[key]; ok && now.Sub(last) < d.window {
		return false
	}
	if len(d.seen) >= d.maxEntries {
		d.sweepLocked(now)
		if len(d.seen) >= d.maxEntries {
			d.seen = make(map[string]time.Time)
		}
	}
	d.seen[key] = now
	return true
}

// Sweep removes expired keys and returns how many were dropped
func (d *Deduper) Sweep() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sweepLocked(d.now())
}

func (d *Deduper) sweepLocked(now time.Time) int {
	removed := 0
	for k, t := range d.seen {
		if now.Sub(t) >= d.window {
			delete(d.seen, k)
			removed++
		}
	}
	return removed
}

func (d *Deduper) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
