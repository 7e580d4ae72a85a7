package commands

import (
	"context"
	"encoding/json"
	"time"

	"furnished-lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const topicLeaseDocument = "lease.document"

func enqueueNotify(ctx context.Context, tx shared.Tx, userID uuid.UUID, event string, data map[string]any, now time.Time) error {
	payload, err := json.Marshal(shared.NotifyPayload{
		UserID: userID,
		Event:  event,
		Data:   data,
	})
	if err != nil {
		return err
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxJob{
		ID:        uuid.New(),
		Kind:      shared.OutboxNotify,
		Topic:     event,
		Payload:   payload,
		RunAt:     now,
		CreatedAt: now,
	})
}

func enqueueRender(ctx context.Context, tx shared.Tx, leaseID uuid.UUID, now time.Time) error {
	payload, err := json.Marshal(shared.RenderLeaseDocumentPayload{LeaseID: leaseID})
	if err != nil {
		return err
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxJob{
		ID:        uuid.New(),
		Kind:      shared.OutboxRenderLeaseDocument,
		Topic:     topicLeaseDocument,
		Payload:   payload,
		RunAt:     now,
		CreatedAt: now,
	})
}
