package session

import (
	"testing"
	"time"

	"github.com/sandevgo/cuebot/internal/core"
)

func seg(speaker int, text string, ms int64) core.Segment {
	return core.Segment{Speaker: speaker, Text: text, Time: time.UnixMilli(ms)}
}

func TestHistory_Append(t *testing.T) {
	tests := []struct {
		name    string
		segment core.Segment
		wantErr bool
	}{
		{name: "well_formed", segment: seg(0, "hi", 1000), wantErr: false},
		{name: "speaker_one", segment: seg(1, "hello there", 2000), wantErr: false},
		{name: "empty_text", segment: seg(0, "", 1000), wantErr: true},
		{name: "negative_speaker", segment: seg(-1, "hi", 1000), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory()
			err := h.Append(tt.segment)
			if (err != nil) != tt.wantErr {
				t.Errorf("Append() error = %v, wantErr %v", err, tt.wantErr)
			}
			wantLen := 1
			if tt.wantErr {
				wantLen = 0
			}
			if h.Len() != wantLen {
				t.Errorf("Len() = %d, want %d", h.Len(), wantLen)
			}
		})
	}
}

func TestHistory_AppendPreservesArrivalOrder(t *testing.T) {
	h := NewHistory()
	// Timestamps deliberately out of order: arrival order is authoritative.
	input := []core.Segment{seg(0, "first", 3000), seg(1, "second", 1000), seg(0, "third", 2000)}
	for _, s := range input {
		if err := h.Append(s); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	snap := h.Snapshot(0)
	if len(snap.Segments) != 3 {
		t.Fatalf("snapshot has %d segments, want 3", len(snap.Segments))
	}
	for i, s := range snap.Segments {
		if s.Text != input[i].Text {
			t.Errorf("segment[%d].Text = %q, want %q", i, s.Text, input[i].Text)
		}
	}
}

func TestHistory_SnapshotLimit(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 5; i++ {
		_ = h.Append(seg(0, "s", int64(1000+i)))
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"all_when_zero", 0, 5},
		{"all_when_negative", -1, 5},
		{"smaller_than_len", 3, 3},
		{"larger_than_len", 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := h.Snapshot(tt.limit)
			if len(snap.Segments) != tt.want {
				t.Errorf("Snapshot(%d) has %d segments, want %d", tt.limit, len(snap.Segments), tt.want)
			}
		})
	}
}

func TestHistory_SnapshotIsACopy(t *testing.T) {
	h := NewHistory()
	_ = h.Append(seg(0, "original", 1000))

	snap := h.Snapshot(0)
	snap.Segments[0].Text = "mutated"

	if got := h.Snapshot(0).Segments[0].Text; got != "original" {
		t.Errorf("history segment text = %q, want original", got)
	}
}

func TestHistory_MarkAnalyzedMonotonic(t *testing.T) {
	h := NewHistory()
	_ = h.Append(seg(0, "hi", 1000))

	h.MarkAnalyzed(time.UnixMilli(2000))
	h.MarkAnalyzed(time.UnixMilli(1500)) // must not move backwards

	if got := h.Snapshot(0).LastAnalyzed; !got.Equal(time.UnixMilli(2000)) {
		t.Errorf("LastAnalyzed = %v, want %v", got, time.UnixMilli(2000))
	}
}

func TestHistory_HasUnanalyzed(t *testing.T) {
	h := NewHistory()
	if h.HasUnanalyzed() {
		t.Error("empty history should have nothing to analyze")
	}

	_ = h.Append(seg(0, "hi", 1000))
	if !h.HasUnanalyzed() {
		t.Error("fresh segment should count as unanalyzed")
	}

	h.MarkAnalyzed(time.UnixMilli(1000))
	if h.HasUnanalyzed() {
		t.Error("watermark at newest segment should leave nothing unanalyzed")
	}

	_ = h.Append(seg(1, "more", 2000))
	if !h.HasUnanalyzed() {
		t.Error("segment newer than watermark should count as unanalyzed")
	}
}

func TestHistory_Reset(t *testing.T) {
	h := NewHistory()
	_ = h.Append(seg(0, "hi", 1000))
	h.MarkAnalyzed(time.UnixMilli(1000))
	h.SetPerson(&core.Person{Name: "Ada"})

	h.Reset()

	if h.Len() != 0 {
		t.Errorf("Len() = %d after reset, want 0", h.Len())
	}
	snap := h.Snapshot(0)
	if !snap.LastAnalyzed.IsZero() {
		t.Errorf("LastAnalyzed = %v after reset, want zero", snap.LastAnalyzed)
	}
	if snap.Person != nil {
		t.Error("person should be cleared on reset")
	}
}

func TestSnapshot_HasUnanalyzed(t *testing.T) {
	snap := Snapshot{
		Segments:     []core.Segment{seg(0, "a", 1000), seg(0, "b", 2000)},
		LastAnalyzed: time.UnixMilli(2000),
	}
	if snap.HasUnanalyzed() {
		t.Error("no segment is newer than the watermark")
	}

	snap.LastAnalyzed = time.UnixMilli(1500)
	if !snap.HasUnanalyzed() {
		t.Error("segment b is newer than the watermark")
	}
}

func TestSnapshot_NewestTime(t *testing.T) {
	snap := Snapshot{Segments: []core.Segment{seg(0, "a", 3000), seg(0, "b", 1000)}}
	if got := snap.NewestTime(); !got.Equal(time.UnixMilli(3000)) {
		t.Errorf("NewestTime() = %v, want %v", got, time.UnixMilli(3000))
	}

	var empty Snapshot
	if !empty.NewestTime().IsZero() {
		t.Error("NewestTime() of empty snapshot should be zero")
	}
}
