package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogNotifier is used when no broker is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Notify(ctx context.Context, userID uuid.UUID, event string, payload map[string]any) error {
	slog.InfoContext(ctx, "notification",
		"user_id", userID,
		"event", event,
		"payload", payload)
	return nil
}
