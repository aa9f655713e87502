package core

import "context"

// TranscriptRepository archives segments and suggestions per session.
// The in-memory history stays authoritative for scheduling; the archive is a
// best-effort sink and its errors must never block ingestion.
type TranscriptRepository interface {
	AddSegment(ctx context.Context, sessionID string, seg Segment) error
	AddSuggestion(ctx context.Context, sessionID string, sug Suggestion) error
	GetSegments(ctx context.Context, sessionID string, limit int) ([]Segment, error)
	GetSuggestions(ctx context.Context, sessionID string, limit int) ([]Suggestion, error)
}
