package ports

import (
	"context"

	"github.com/resumeai/platform/internal/core/domain"
)

// ChatModel generates an assistant reply from a conversation history. The
// history is oldest-first and already trimmed to the memory window.
type ChatModel interface {
	Generate(ctx context.Context, history []domain.Turn) (string, error)
}
