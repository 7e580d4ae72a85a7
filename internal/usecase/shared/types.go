package shared

import (
	"time"

	"github.com/google/uuid"
)

type TenantSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string
}

type OutboxKind string

const (
	OutboxRenderLeaseDocument OutboxKind = "render_lease_document"
	OutboxNotify              OutboxKind = "notify"
)

type OutboxStatus string

const (
	OutboxQueued  OutboxStatus = "queued"
	OutboxRunning OutboxStatus = "running"
	OutboxDone    OutboxStatus = "done"
	OutboxDead    OutboxStatus = "dead"
)

// OutboxJob is a post-commit side effect persisted with the business change that caused it.
type OutboxJob struct {
	ID        uuid.UUID
	Kind      OutboxKind
	Topic     string
	Payload   []byte
	Status    OutboxStatus
	Attempts  int32
	RunAt     time.Time
	LastError *string
	CreatedAt time.Time
}

// Outbox payloads. Field names are part of the stored JSON.
type RenderLeaseDocumentPayload struct {
	LeaseID uuid.UUID `json:"leaseId"`
}

type NotifyPayload struct {
	UserID uuid.UUID      `json:"userId"`
	Event  string         `json:"event"`
	Data   map[string]any `json:"data"`
}

// Notification events.
const (
	EventLeaseCreated         = "lease.created"
	EventReservationCancelled = "reservation.cancelled"
	EventReservationExpired   = "reservation.expired"
	EventInvoiceOverdue       = "invoice.overdue"
)
