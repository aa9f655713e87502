package session

import (
	"sync"

	"github.com/sandevgo/cuebot/internal/core"
)

// SuggestionList keeps the most recent max suggestions in insertion order,
// evicting the oldest first.
type SuggestionList struct {
	mu    sync.Mutex
	max   int
	items []core.Suggestion
}

func NewSuggestionList(max int) *SuggestionList {
	if max <= 0 {
		max = 1
	}
	return &SuggestionList{max: max}
}

func (l *SuggestionList) Append(sug core.Suggestion) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, sug)
	if len(l.items) > l.max {
		l.items = append([]core.Suggestion(nil), l.items[len(l.items)-l.max:]...)
	}
}

// Ordered returns a copy of the retained suggestions, oldest to newest.
func (l *SuggestionList) Ordered() []core.Suggestion {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Suggestion, len(l.items))
	copy(out, l.items)
	return out
}

// Texts returns the texts of the last n retained suggestions, oldest to
// newest. All of them when n <= 0.
func (l *SuggestionList) Texts(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := 0
	if n > 0 && len(l.items) > n {
		start = len(l.items) - n
	}
	out := make([]string, 0, len(l.items)-start)
	for _, s := range l.items[start:] {
		out = append(out, s.Text)
	}
	return out
}

func (l *SuggestionList) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}
