package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/cuebot/internal/core"
)

const suggestionSystemPrompt = `You are a discreet real-time conversation assistant. ` +
	`You receive the latest turns of a live, speaker-labeled conversation. ` +
	`Reply with ONE short, natural suggestion (a question or remark, under 20 words) ` +
	`the wearer could say next. Do not repeat earlier suggestions. Reply with the ` +
	`suggestion text only, no preamble.`

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

func getTokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		var err error
		tk, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load tiktoken: " + err.Error())
		}
	})
	return tk
}

func countTokens(text string) int {
	if text == "" {
		return 0
	}
	return len(getTokenizer().Encode(text, nil, nil))
}

// BuildPrompt turns a history snapshot, prior suggestion texts and optional
// person context into the chat messages for one reasoning call. Segments are
// taken newest-first until the token budget is spent, then emitted in
// conversation order.
func BuildPrompt(snap Snapshot, priorSuggestions []string, tokenBudget int) []core.Message {
	var kept []core.Segment
	used := 0
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		cost := countTokens(seg.Text)
		if tokenBudget > 0 && len(kept) > 0 && used+cost > tokenBudget {
			break
		}
		kept = append(kept, seg)
		used += cost
	}

	var b strings.Builder
	if snap.Person != nil {
		b.WriteString("You are listening on behalf of the wearer. Their conversation partner:\n")
		if snap.Person.Name != "" {
			fmt.Fprintf(&b, "Name: %s\n", snap.Person.Name)
		}
		if snap.Person.Company != "" {
			fmt.Fprintf(&b, "Company: %s\n", snap.Person.Company)
		}
		if snap.Person.Notes != "" {
			fmt.Fprintf(&b, "Notes: %s\n", snap.Person.Notes)
		}
		b.WriteByte('\n')
	}

	b.WriteString("Conversation so far:\n")
	for i := len(kept) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "Speaker %d: %s\n", kept[i].Speaker, kept[i].Text)
	}

	if len(priorSuggestions) > 0 {
		b.WriteString("\nSuggestions already shown (do not repeat):\n")
		for _, s := range priorSuggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	b.WriteString("\nNext suggestion:")

	return []core.Message{
		{Role: core.RoleSystem, Content: suggestionSystemPrompt},
		{Role: core.RoleUser, Content: b.String()},
	}
}
