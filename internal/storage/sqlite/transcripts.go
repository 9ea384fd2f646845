package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
)

type Transcripts struct {
	db *sql.DB
}

func NewTranscripts(db *sql.DB) *Transcripts {
	return &Transcripts{db: db}
}

func (t *Transcripts) AppendTurn(ctx context.Context, sessionID string, turn core.MemoryTurn) error {
	query := `INSERT INTO transcripts (session_id, user_text, assistant_text, context_text, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := t.db.ExecContext(ctx, query,
		sessionID, turn.User, turn.Assistant, turn.Context, turn.Timestamp.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert transcript turn: %w", err)
	}
	return nil
}

func (t *Transcripts) GetTurns(ctx context.Context, sessionID string, limit int) ([]core.MemoryTurn, error) {
	// Fetch the LAST 'limit' turns by ordering DESC
	query := `SELECT user_text, assistant_text, context_text, created_at FROM transcripts WHERE session_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := t.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transcript turns: %w", err)
	}
	defer rows.Close()

	var turns []core.MemoryTurn
	for rows.Next() {
		var turn core.MemoryTurn
		var contextText sql.NullString
		var createdAt string

		if err := rows.Scan(&turn.User, &turn.Assistant, &contextText, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan transcript turn: %w", err)
		}

		turn.Context = contextText.String
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			turn.Timestamp = ts
		}

		turns = append(turns, turn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse back to chronological order, oldest first.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(turns)).Msg("loaded transcript turns")
	return turns, nil
}
