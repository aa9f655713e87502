package session

import (
	"fmt"
	"testing"
	"time"
)

func TestCache_GetPut(t *testing.T) {
	c := NewCache(30*time.Second, 10)

	if _, ok := c.Get("missing"); ok {
		t.Error("empty cache should miss")
	}

	c.Put("fp1", "ask about their day")
	text, ok := c.Get("fp1")
	if !ok {
		t.Fatal("expected a hit")
	}
	if text != "ask about their day" {
		t.Errorf("text = %q", text)
	}

	c.Put("fp1", "newer text")
	if text, _ := c.Get("fp1"); text != "newer text" {
		t.Errorf("overwrite not applied, got %q", text)
	}
}

func TestCache_TTL(t *testing.T) {
	now := time.UnixMilli(0)
	c := NewCache(30*time.Second, 10)
	c.nowFn = func() time.Time { return now }

	c.Put("fp", "text")

	tests := []struct {
		name    string
		advance time.Duration
		wantHit bool
	}{
		{"immediately", 0, true},
		{"just_inside_ttl", 29 * time.Second, true},
		{"exactly_ttl", 30 * time.Second, false},
		{"past_ttl", time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = time.UnixMilli(0).Add(tt.advance)
			_, ok := c.Get("fp")
			if ok != tt.wantHit {
				t.Errorf("hit = %v, want %v", ok, tt.wantHit)
			}
		})
	}

	// Expired entries may remain stored; they are just never served.
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_CapacityEvictsOldestFirst(t *testing.T) {
	now := time.UnixMilli(0)
	c := NewCache(time.Hour, 3)
	c.nowFn = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		now = time.UnixMilli(int64(i * 1000))
		c.Put(fmt.Sprintf("fp%d", i), fmt.Sprintf("text%d", i))
	}

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	for i := 0; i < 2; i++ {
		if _, ok := c.Get(fmt.Sprintf("fp%d", i)); ok {
			t.Errorf("fp%d should have been evicted", i)
		}
	}
	for i := 2; i < 5; i++ {
		if _, ok := c.Get(fmt.Sprintf("fp%d", i)); !ok {
			t.Errorf("fp%d should still be cached", i)
		}
	}
}
