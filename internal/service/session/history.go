package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/sandevgo/cuebot/internal/core"
)

// History is the append-only ordered log of segments for one session.
// Segments are applied strictly in arrival order; already-appended segments
// are never mutated. lastAnalyzed is monotonically non-decreasing and resets
// only with the session.
type History struct {
	mu           sync.Mutex
	segments     []core.Segment
	lastAnalyzed time.Time
	person       *core.Person
}

// Snapshot is an immutable view of recent history used as scheduling input.
type Snapshot struct {
	Segments     []core.Segment
	Person       *core.Person
	LastAnalyzed time.Time
}

func NewHistory() *History {
	return &History{}
}

// Append adds a segment in received order. Only ill-formed segments are
// rejected; a well-formed segment is never dropped.
func (h *History) Append(seg core.Segment) error {
	if seg.Text == "" {
		return fmt.Errorf("segment has empty text")
	}
	if seg.Speaker < 0 {
		return fmt.Errorf("segment has negative speaker id %d", seg.Speaker)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.segments = append(h.segments, seg)
	return nil
}

// Reset atomically clears segments, person context and the analysis
// watermark. Safe to call while an analysis call is in flight; the stale
// result is discarded by the scheduler's epoch guard.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.segments = nil
	h.lastAnalyzed = time.Time{}
	h.person = nil
}

// Snapshot returns a copy of the last limit segments (all of them when
// limit <= 0) so callers never observe concurrent appends.
func (h *History) Snapshot(limit int) Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	start := 0
	if limit > 0 && len(h.segments) > limit {
		start = len(h.segments) - limit
	}
	segs := make([]core.Segment, len(h.segments)-start)
	copy(segs, h.segments[start:])

	var person *core.Person
	if h.person != nil {
		p := *h.person
		person = &p
	}

	return Snapshot{
		Segments:     segs,
		Person:       person,
		LastAnalyzed: h.lastAnalyzed,
	}
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.segments)
}

// HasUnanalyzed reports whether any segment is newer than the analysis
// watermark.
func (h *History) HasUnanalyzed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.segments) - 1; i >= 0; i-- {
		if h.segments[i].Time.After(h.lastAnalyzed) {
			return true
		}
	}
	return false
}

// MarkAnalyzed advances the watermark. It never moves backwards.
func (h *History) MarkAnalyzed(t time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t.After(h.lastAnalyzed) {
		h.lastAnalyzed = t
	}
}

func (h *History) SetPerson(p *core.Person) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if p == nil {
		h.person = nil
		return
	}
	cp := *p
	h.person = &cp
}

// NewestTime returns the newest segment time found in the snapshot.
// Zero when the snapshot is empty.
func (s Snapshot) NewestTime() time.Time {
	var newest time.Time
	for _, seg := range s.Segments {
		if seg.Time.After(newest) {
			newest = seg.Time
		}
	}
	return newest
}

// HasUnanalyzed reports whether the snapshot contains a segment newer than
// the watermark captured with it.
func (s Snapshot) HasUnanalyzed() bool {
	for _, seg := range s.Segments {
		if seg.Time.After(s.LastAnalyzed) {
			return true
		}
	}
	return false
}
