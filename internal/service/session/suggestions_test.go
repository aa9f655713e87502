package session

import (
	"fmt"
	"testing"

	"github.com/sandevgo/cuebot/internal/core"
)

func sug(text string) core.Suggestion {
	return core.Suggestion{ID: text, Text: text}
}

func TestSuggestionList_EvictsOldestFirst(t *testing.T) {
	l := NewSuggestionList(3)
	for i := 1; i <= 5; i++ {
		l.Append(sug(fmt.Sprintf("s%d", i)))
	}

	got := l.Ordered()
	want := []string{"s3", "s4", "s5"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("item %d = %q, want %q", i, got[i].Text, w)
		}
	}
}

func TestSuggestionList_Texts(t *testing.T) {
	l := NewSuggestionList(5)
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Append(sug(s))
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"last_two", 2, []string{"c", "d"}},
		{"more_than_held", 10, []string{"a", "b", "c", "d"}},
		{"zero_means_all", 0, []string{"a", "b", "c", "d"}},
		{"negative_means_all", -1, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Texts(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("text %d = %q, want %q", i, got[i], w)
				}
			}
		})
	}
}

func TestSuggestionList_OrderedIsCopy(t *testing.T) {
	l := NewSuggestionList(5)
	l.Append(sug("a"))

	got := l.Ordered()
	got[0].Text = "mutated"

	if l.Ordered()[0].Text != "a" {
		t.Error("mutating the returned slice must not affect the list")
	}
}

func TestSuggestionList_Reset(t *testing.T) {
	l := NewSuggestionList(5)
	l.Append(sug("a"))
	l.Append(sug("b"))
	l.Reset()

	if n := len(l.Ordered()); n != 0 {
		t.Fatalf("len after reset = %d, want 0", n)
	}
	l.Append(sug("c"))
	if got := l.Texts(0); len(got) != 1 || got[0] != "c" {
		t.Fatalf("after reset+append got %v, want [c]", got)
	}
}

func TestSuggestionList_MinCapacity(t *testing.T) {
	l := NewSuggestionList(0)
	l.Append(sug("a"))
	l.Append(sug("b"))
	if got := l.Ordered(); len(got) != 1 || got[0].Text != "b" {
		t.Fatalf("got %v, want just the newest item", got)
	}
}
