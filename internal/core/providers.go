package core

import "context"

// AIProvider is the generation backend: history in, one assistant message out.
// Implementations may fail on network/auth/quota; callers must degrade, not crash.
type AIProvider interface {
	Chat(ctx context.Context, history []Message) (Message, error)
}
