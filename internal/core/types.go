package core

import "time"

const (
	CueName          = "CueBot"
	CueUserAgent     = "CueBot-Listener/0.1"
	CueRepositoryURL = "https://github.com/sandevgo/cuebot"
	CueVersion       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Segment is one finalized, speaker-attributed unit of transcribed speech.
// Segments are immutable once produced; ordering is by arrival, not by Time,
// since the diarizer may reorder internally before finalization.
type Segment struct {
	Speaker int       `json:"speaker"`
	Text    string    `json:"text"`
	Time    time.Time `json:"time"`
}

// Suggestion is one short conversational cue produced by the analysis loop.
type Suggestion struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Person holds optional context about the recognized conversation partner.
type Person struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Message is a single chat turn sent to or received from a reasoning provider.
// Some providers return usable text in Reasoning instead of Content.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Reasoning string `json:"reasoning,omitempty"`
}
