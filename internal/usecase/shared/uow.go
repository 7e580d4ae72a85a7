package shared

import (
	"context"
	"time"

	"furnished-lease-engine/internal/domain/lease"
	"furnished-lease-engine/internal/domain/payment"
	"furnished-lease-engine/internal/domain/rent"
	"furnished-lease-engine/internal/domain/reservation"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Calendar() CalendarRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Leases() LeaseRepository
	Invoices() InvoiceRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are snapshot lookups the write side needs. Missing rows come back as infra NOT_FOUND errors.
type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	TenantByID(ctx context.Context, id uuid.UUID) (*TenantSnapshot, error)
	TargetByID(ctx context.Context, target reservation.Target) (*lease.TargetSnapshot, error)
}

// CalendarRepository serializes writers per target. Locks are released when the transaction ends.
type CalendarRepository interface {
	LockTarget(ctx context.Context, tx sqlc.DBTX, target reservation.Target) error
	ListActiveForTarget(ctx context.Context, tx sqlc.DBTX, target reservation.Target) ([]*reservation.Reservation, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	ListExpirable(ctx context.Context, tx sqlc.DBTX, asOf time.Time, limit int32) ([]*reservation.Reservation, error)
}

type PaymentRepository interface {
	// UpsertAttempt returns the stored row for (reservation, external ref), inserting p if absent.
	UpsertAttempt(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (*payment.Payment, error)
	// Settle persists a completed or failed p. When another writer settled first, the stored row is returned.
	Settle(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (*payment.Payment, error)
}

type LeaseRepository interface {
	// CreateIfAbsent returns the stored contract and whether this call inserted it.
	CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, c *lease.Contract) (*lease.Contract, bool, error)
	FindByReservationID(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) (*lease.Contract, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*lease.Contract, error)
	SetDocumentRef(ctx context.Context, tx sqlc.DBTX, c *lease.Contract) error
}

type InvoiceRepository interface {
	InsertBatch(ctx context.Context, tx sqlc.DBTX, invoices []*rent.Invoice) error
	ListByLease(ctx context.Context, tx sqlc.DBTX, leaseID uuid.UUID) ([]*rent.Invoice, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*rent.Invoice, error)
	ListOverdueCandidates(ctx context.Context, tx sqlc.DBTX, asOf time.Time, limit int32) ([]*rent.Invoice, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, inv *rent.Invoice) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, job OutboxJob) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now, staleBefore time.Time, limit int32) ([]OutboxJob, error)
	MarkDone(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status OutboxStatus, runAt time.Time, lastError string, now time.Time) error
}
