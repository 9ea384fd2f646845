package core

import "context"

// TranscriptRepository persists recorded turns for the host to export or
// inspect. Persistence failures must never break the answer path.
type TranscriptRepository interface {
	AppendTurn(ctx context.Context, sessionID string, turn MemoryTurn) error
	GetTurns(ctx context.Context, sessionID string, limit int) ([]MemoryTurn, error)
}
