package authsync

import (
	"testing"
	"time"
)

func TestDeduperWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	d := NewDeduper(2*time.Second, 0)
	d.now = func() time.Time { return now }

	if !d.Allow("u1|SIGNED_IN") {
		t.Fatal("first event should pass")
	}
	now = now.Add(1500 * time.Millisecond)
	if d.Allow("u1|SIGNED_IN") {
		t.Fatal("repeat inside window should be suppressed")
	}
	if !d.Allow("u1|SIGNED_OUT") {
		t.Fatal("different event should pass")
	}
	now = now.Add(2 * time.Second)
	if !d.Allow("u1|SIGNED_IN") {
		t.Fatal("repeat after window should pass")
	}
}

func TestDeduperSweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	d := NewDeduper(2*time.Second, 0)
	d.now = func() time.Time { return now }

	d.Allow("a")
	d.Allow("b")
	now = now.Add(time.Second)
	d.Allow("c")
	now = now.Add(1500 * time.Millisecond)

	if removed := d.Sweep(); removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if d.Len() != 1 {
		t.Fatalf("len = %d, want 1", d.Len())
	}
}

func TestDeduperBounded(t *testing.T) {
	d := NewDeduper(time.Minute, 2)
	d.Allow("a")
	d.Allow("b")
	d.Allow("c")
	if d.Len() > 2 {
		t.Fatalf("len = %d, want at most 2", d.Len())
	}
}
