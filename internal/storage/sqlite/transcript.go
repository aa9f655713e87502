package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/cuebot/internal/core"
)

// Transcript archives segments and suggestions per session.
type Transcript struct {
	db *sql.DB
}

func NewTranscript(db *sql.DB) *Transcript {
	return &Transcript{db: db}
}

func (t *Transcript) AddSegment(ctx context.Context, sessionID string, seg core.Segment) error {
	query := `INSERT INTO segments (session_id, speaker, text, spoken_at) VALUES (?, ?, ?, ?)`
	_, err := t.db.ExecContext(ctx, query, sessionID, seg.Speaker, seg.Text, seg.Time)
	if err != nil {
		return fmt.Errorf("failed to insert segment: %w", err)
	}
	return nil
}

func (t *Transcript) AddSuggestion(ctx context.Context, sessionID string, sug core.Suggestion) error {
	query := `INSERT INTO suggestions (id, session_id, text, created_at) VALUES (?, ?, ?, ?)`
	_, err := t.db.ExecContext(ctx, query, sug.ID, sessionID, sug.Text, sug.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert suggestion: %w", err)
	}
	return nil
}

func (t *Transcript) GetSegments(ctx context.Context, sessionID string, limit int) ([]core.Segment, error) {
	// Fetch the LAST limit segments by ordering DESC, then restore arrival order
	query := `SELECT speaker, text, spoken_at FROM segments WHERE session_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := t.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query segments: %w", err)
	}
	defer rows.Close()

	var segments []core.Segment
	for rows.Next() {
		var seg core.Segment
		if err := rows.Scan(&seg.Speaker, &seg.Text, &seg.Time); err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return segments, nil
}

func (t *Transcript) GetSuggestions(ctx context.Context, sessionID string, limit int) ([]core.Suggestion, error) {
	query := `SELECT id, text, created_at FROM suggestions WHERE session_id = ? ORDER BY created_at DESC LIMIT ?`

	rows, err := t.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []core.Suggestion
	for rows.Next() {
		var sug core.Suggestion
		if err := rows.Scan(&sug.ID, &sug.Text, &sug.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		suggestions = append(suggestions, sug)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(suggestions)-1; i < j; i, j = i+1, j-1 {
		suggestions[i], suggestions[j] = suggestions[j], suggestions[i]
	}
	return suggestions, nil
}
