package session

import (
	"testing"

	"github.com/sandevgo/cuebot/internal/core"
)

func segs(texts ...string) []core.Segment {
	out := make([]core.Segment, len(texts))
	for i, text := range texts {
		out[i] = seg(0, text, int64(1000*(i+1)))
	}
	return out
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint(segs("hi", "hello"), []string{"ask about work"}, 3, 2)
	b := Fingerprint(segs("hi", "hello"), []string{"ask about work"}, 3, 2)
	if a != b {
		t.Error("same inputs must produce the same fingerprint")
	}
}

func TestFingerprint_Sensitivity(t *testing.T) {
	base := Fingerprint(segs("hi"), []string{"s1"}, 3, 2)

	tests := []struct {
		name        string
		segments    []core.Segment
		suggestions []string
	}{
		{"different_text", segs("bye"), []string{"s1"}},
		{"different_speaker", []core.Segment{seg(1, "hi", 1000)}, []string{"s1"}},
		{"different_suggestion", segs("hi"), []string{"s2"}},
		{"extra_segment", segs("hi", "more"), []string{"s1"}},
		{"no_suggestions", segs("hi"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fingerprint(tt.segments, tt.suggestions, 3, 2)
			if got == base {
				t.Error("fingerprint should differ from base")
			}
		})
	}
}

func TestFingerprint_OnlyLastNConsidered(t *testing.T) {
	// Older context beyond the window must not affect the key.
	a := Fingerprint(segs("old", "a", "b", "c"), []string{"x", "y", "z"}, 3, 2)
	b := Fingerprint(segs("ancient", "a", "b", "c"), []string{"w", "y", "z"}, 3, 2)
	if a != b {
		t.Error("segments and suggestions outside the window should be ignored")
	}
}

func TestFingerprint_TimeDoesNotMatter(t *testing.T) {
	a := Fingerprint([]core.Segment{seg(0, "hi", 1000)}, nil, 3, 2)
	b := Fingerprint([]core.Segment{seg(0, "hi", 9999)}, nil, 3, 2)
	if a != b {
		t.Error("fingerprint covers text and speaker only, not time")
	}
}

func TestFingerprint_NoFieldAmbiguity(t *testing.T) {
	// Length prefixes keep adjacent fields from running together.
	a := Fingerprint(segs("ab"), nil, 3, 2)
	b := Fingerprint(segs("a", "b"), nil, 3, 2)
	if a == b {
		t.Error("distinct segmentations must not collide")
	}
}
