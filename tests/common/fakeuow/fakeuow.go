//go:build unit || e2e

// Package fakeuow is an in-memory shared.UnitOfWork. Transactions are serialized
// and roll back every write when fn fails, like the Postgres implementation.
package fakeuow

import (
	"context"
	"sort"
	"sync"
	"time"

	"furnished-lease-engine/internal/domain/lease"
	"furnished-lease-engine/internal/domain/payment"
	"furnished-lease-engine/internal/domain/rent"
	"furnished-lease-engine/internal/domain/reservation"
	"furnished-lease-engine/internal/infra"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type paymentKey struct {
	reservationID uuid.UUID
	externalRef   string
}

type outboxRow struct {
	job       shared.OutboxJob
	updatedAt time.Time
}

type state struct {
	reservations map[uuid.UUID]*reservation.Reservation
	payments     map[paymentKey]*payment.Payment
	leases       map[uuid.UUID]*lease.Contract // by reservation id
	invoices     map[uuid.UUID]*rent.Invoice
	outbox       map[uuid.UUID]outboxRow
}

func (s state) clone() state {
	c := state{
		reservations: make(map[uuid.UUID]*reservation.Reservation, len(s.reservations)),
		payments:     make(map[paymentKey]*payment.Payment, len(s.payments)),
		leases:       make(map[uuid.UUID]*lease.Contract, len(s.leases)),
		invoices:     make(map[uuid.UUID]*rent.Invoice, len(s.invoices)),
		outbox:       make(map[uuid.UUID]outboxRow, len(s.outbox)),
	}
	// stored values are never mutated in place, so sharing pointers is safe
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.leases {
		c.leases[k] = v
	}
	for k, v := range s.invoices {
		c.invoices[k] = v
	}
	for k, v := range s.outbox {
		c.outbox[k] = v
	}
	return c
}

type UoW struct {
	mu      sync.Mutex
	data    state
	tenants map[uuid.UUID]*shared.TenantSnapshot
	targets map[uuid.UUID]*lease.TargetSnapshot
	failOn  map[string]error

	Commits   int
	Rollbacks int
}

func New() *UoW {
	return &UoW{
		data: state{
			reservations: map[uuid.UUID]*reservation.Reservation{},
			payments:     map[paymentKey]*payment.Payment{},
			leases:       map[uuid.UUID]*lease.Contract{},
			invoices:     map[uuid.UUID]*rent.Invoice{},
			outbox:       map[uuid.UUID]outboxRow{},
		},
		tenants: map[uuid.UUID]*shared.TenantSnapshot{},
		targets: map[uuid.UUID]*lease.TargetSnapshot{},
		failOn:  map[string]error{},
	}
}

// FailOn makes the named operation ("Invoices.InsertBatch", "Outbox.Enqueue", ...) return err.
func (u *UoW) FailOn(op string, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failOn[op] = err
}

func (u *UoW) AddTenant(t shared.TenantSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tenants[t.ID] = &t
}

func (u *UoW) AddTarget(t lease.TargetSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.targets[t.ID] = &t
}

func (u *UoW) AddReservation(r *reservation.Reservation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.data.reservations[r.ID()] = cloneReservation(r)
}

func (u *UoW) AddInvoice(inv *rent.Invoice) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.data.invoices[inv.ID()] = cloneInvoice(inv)
}

func (u *UoW) AddLease(c *lease.Contract) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.data.leases[c.ReservationID()] = cloneContract(c)
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot := u.data.clone()
	if err := fn(ctx, &fakeTx{u: u}); err != nil {
		u.data = snapshot
		u.Rollbacks++
		return err
	}
	u.Commits++
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &reads{u: u, lock: true}
}

// Inspection helpers, safe outside transactions.

func (u *UoW) Reservation(id uuid.UUID) *reservation.Reservation {
	u.mu.Lock()
	defer u.mu.Unlock()
	if r, ok := u.data.reservations[id]; ok {
		return cloneReservation(r)
	}
	return nil
}

func (u *UoW) Payments() []*payment.Payment {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*payment.Payment, 0, len(u.data.payments))
	for _, p := range u.data.payments {
		out = append(out, clonePayment(p))
	}
	return out
}

func (u *UoW) Leases() []*lease.Contract {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*lease.Contract, 0, len(u.data.leases))
	for _, c := range u.data.leases {
		out = append(out, cloneContract(c))
	}
	return out
}

func (u *UoW) Invoices() []*rent.Invoice {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*rent.Invoice, 0, len(u.data.invoices))
	for _, inv := range u.data.invoices {
		out = append(out, cloneInvoice(inv))
	}
	sortInvoices(out)
	return out
}

func (u *UoW) OutboxJobs() []shared.OutboxJob {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]shared.OutboxJob, 0, len(u.data.outbox))
	for _, row := range u.data.outbox {
		out = append(out, row.job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// EnqueueJob seeds a committed outbox job.
func (u *UoW) EnqueueJob(job shared.OutboxJob) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if job.Status == "" {
		job.Status = shared.OutboxQueued
	}
	u.data.outbox[job.ID] = outboxRow{job: job, updatedAt: job.CreatedAt}
}

func (u *UoW) fail(op string) error {
	return u.failOn[op]
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeTx struct {
	u *UoW
}

func (t *fakeTx) Calendar() shared.CalendarRepository       { return calendarRepo{t.u} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return reservationRepo{t.u} }
func (t *fakeTx) Payments() shared.PaymentRepository         { return paymentRepo{t.u} }
func (t *fakeTx) Leases() shared.LeaseRepository             { return leaseRepo{t.u} }
func (t *fakeTx) Invoices() shared.InvoiceRepository         { return invoiceRepo{t.u} }
func (t *fakeTx) Outbox() shared.OutboxRepository            { return outboxRepo{t.u} }
func (t *fakeTx) Reads() shared.CommandReads                 { return &reads{u: t.u} }
func (t *fakeTx) DB() sqlc.DBTX                              { return nil }

type reads struct {
	u    *UoW
	lock bool
}

func (r *reads) guard() func() {
	if !r.lock {
		return func() {}
	}
	r.u.mu.Lock()
	return r.u.mu.Unlock
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	defer r.guard()()
	if err := r.u.fail("Reads.ReservationByID"); err != nil {
		return nil, err
	}
	res, ok := r.u.data.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return cloneReservation(res), nil
}

func (r *reads) TenantByID(_ context.Context, id uuid.UUID) (*shared.TenantSnapshot, error) {
	defer r.guard()()
	t, ok := r.u.tenants[id]
	if !ok {
		return nil, notFound("tenant not found")
	}
	c := *t
	return &c, nil
}

func (r *reads) TargetByID(_ context.Context, target reservation.Target) (*lease.TargetSnapshot, error) {
	defer r.guard()()
	t, ok := r.u.targets[target.ID()]
	if !ok || t.Kind != string(target.Kind()) {
		return nil, notFound("target not found")
	}
	c := *t
	return &c, nil
}

type calendarRepo struct{ u *UoW }

// LockTarget is a no-op: transactions already run one at a time.
func (r calendarRepo) LockTarget(context.Context, sqlc.DBTX, reservation.Target) error {
	return r.u.fail("Calendar.LockTarget")
}

func (r calendarRepo) ListActiveForTarget(_ context.Context, _ sqlc.DBTX, target reservation.Target) ([]*reservation.Reservation, error) {
	if err := r.u.fail("Calendar.ListActiveForTarget"); err != nil {
		return nil, err
	}
	out := make([]*reservation.Reservation, 0)
	for _, res := range r.u.data.reservations {
		if !res.Target().Equal(target) {
			continue
		}
		if res.Status() == reservation.StatusPending || res.Status() == reservation.StatusValidated {
			out = append(out, cloneReservation(res))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period().Start().Before(out[j].Period().Start()) })
	return out, nil
}

type reservationRepo struct{ u *UoW }

func (r reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.u.fail("Reservations.Create"); err != nil {
		return err
	}
	r.u.data.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r reservationRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	if err := r.u.fail("Reservations.FindByIDForUpdate"); err != nil {
		return nil, err
	}
	res, ok := r.u.data.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return cloneReservation(res), nil
}

func (r reservationRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.u.fail("Reservations.UpdateStatus"); err != nil {
		return err
	}
	stored, ok := r.u.data.reservations[res.ID()]
	if !ok || stored.Status() != reservation.StatusPending {
		return infra.WrapRepoErr("reservation is no longer pending", nil, infra.KindConflict)
	}
	r.u.data.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r reservationRepo) ListExpirable(_ context.Context, _ sqlc.DBTX, asOf time.Time, limit int32) ([]*reservation.Reservation, error) {
	if err := r.u.fail("Reservations.ListExpirable"); err != nil {
		return nil, err
	}
	day := reservation.TruncateToDate(asOf)
	out := make([]*reservation.Reservation, 0)
	for _, res := range r.u.data.reservations {
		if res.IsPending() && res.Period().Start().Before(day) {
			out = append(out, cloneReservation(res))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period().Start().Before(out[j].Period().Start()) })
	if int(limit) < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type paymentRepo struct{ u *UoW }

func (r paymentRepo) UpsertAttempt(_ context.Context, _ sqlc.DBTX, p *payment.Payment) (*payment.Payment, error) {
	if err := r.u.fail("Payments.UpsertAttempt"); err != nil {
		return nil, err
	}
	key := paymentKey{p.ReservationID(), p.ExternalRef()}
	if stored, ok := r.u.data.payments[key]; ok {
		return clonePayment(stored), nil
	}
	for k, stored := range r.u.data.payments {
		if k.externalRef == key.externalRef && stored.Kind() == payment.KindDeposit {
			return nil, infra.WrapRepoErr("failed to record payment attempt", nil, infra.KindDuplicateKey)
		}
	}
	r.u.data.payments[key] = clonePayment(p)
	return clonePayment(p), nil
}

func (r paymentRepo) Settle(_ context.Context, _ sqlc.DBTX, p *payment.Payment) (*payment.Payment, error) {
	if err := r.u.fail("Payments.Settle"); err != nil {
		return nil, err
	}
	key := paymentKey{p.ReservationID(), p.ExternalRef()}
	stored, ok := r.u.data.payments[key]
	if !ok {
		return nil, notFound("payment not found")
	}
	if stored.IsFinal() {
		return clonePayment(stored), nil
	}
	r.u.data.payments[key] = clonePayment(p)
	return clonePayment(p), nil
}

type leaseRepo struct{ u *UoW }

func (r leaseRepo) CreateIfAbsent(_ context.Context, _ sqlc.DBTX, c *lease.Contract) (*lease.Contract, bool, error) {
	if err := r.u.fail("Leases.CreateIfAbsent"); err != nil {
		return nil, false, err
	}
	if stored, ok := r.u.data.leases[c.ReservationID()]; ok {
		return cloneContract(stored), false, nil
	}
	r.u.data.leases[c.ReservationID()] = cloneContract(c)
	return cloneContract(c), true, nil
}

func (r leaseRepo) FindByReservationID(_ context.Context, _ sqlc.DBTX, reservationID uuid.UUID) (*lease.Contract, error) {
	stored, ok := r.u.data.leases[reservationID]
	if !ok {
		return nil, notFound("lease not found")
	}
	return cloneContract(stored), nil
}

func (r leaseRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*lease.Contract, error) {
	for _, c := range r.u.data.leases {
		if c.ID() == id {
			return cloneContract(c), nil
		}
	}
	return nil, notFound("lease not found")
}

func (r leaseRepo) SetDocumentRef(_ context.Context, _ sqlc.DBTX, c *lease.Contract) error {
	if err := r.u.fail("Leases.SetDocumentRef"); err != nil {
		return err
	}
	if _, ok := r.u.data.leases[c.ReservationID()]; !ok {
		return notFound("lease not found")
	}
	r.u.data.leases[c.ReservationID()] = cloneContract(c)
	return nil
}

type invoiceRepo struct{ u *UoW }

func (r invoiceRepo) InsertBatch(_ context.Context, _ sqlc.DBTX, invoices []*rent.Invoice) error {
	if err := r.u.fail("Invoices.InsertBatch"); err != nil {
		return err
	}
	for _, inv := range invoices {
		r.u.data.invoices[inv.ID()] = cloneInvoice(inv)
	}
	return nil
}

func (r invoiceRepo) ListByLease(_ context.Context, _ sqlc.DBTX, leaseID uuid.UUID) ([]*rent.Invoice, error) {
	out := make([]*rent.Invoice, 0)
	for _, inv := range r.u.data.invoices {
		if inv.LeaseID() == leaseID {
			out = append(out, cloneInvoice(inv))
		}
	}
	sortInvoices(out)
	return out, nil
}

func (r invoiceRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*rent.Invoice, error) {
	inv, ok := r.u.data.invoices[id]
	if !ok {
		return nil, notFound("invoice not found")
	}
	return cloneInvoice(inv), nil
}

func (r invoiceRepo) ListOverdueCandidates(_ context.Context, _ sqlc.DBTX, asOf time.Time, limit int32) ([]*rent.Invoice, error) {
	day := reservation.TruncateToDate(asOf)
	out := make([]*rent.Invoice, 0)
	for _, inv := range r.u.data.invoices {
		if inv.Status() == rent.InvoiceAwaiting && inv.DueDate().Before(day) {
			out = append(out, cloneInvoice(inv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate().Before(out[j].DueDate()) })
	if int(limit) < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r invoiceRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, inv *rent.Invoice) error {
	if err := r.u.fail("Invoices.UpdateStatus"); err != nil {
		return err
	}
	if _, ok := r.u.data.invoices[inv.ID()]; !ok {
		return notFound("invoice not found")
	}
	r.u.data.invoices[inv.ID()] = cloneInvoice(inv)
	return nil
}

type outboxRepo struct{ u *UoW }

func (r outboxRepo) Enqueue(_ context.Context, _ sqlc.DBTX, job shared.OutboxJob) error {
	if err := r.u.fail("Outbox.Enqueue"); err != nil {
		return err
	}
	if job.Status == "" {
		job.Status = shared.OutboxQueued
	}
	r.u.data.outbox[job.ID] = outboxRow{job: job, updatedAt: job.CreatedAt}
	return nil
}

func (r outboxRepo) ClaimDue(_ context.Context, _ sqlc.DBTX, now, staleBefore time.Time, limit int32) ([]shared.OutboxJob, error) {
	if err := r.u.fail("Outbox.ClaimDue"); err != nil {
		return nil, err
	}
	due := make([]outboxRow, 0)
	for _, row := range r.u.data.outbox {
		queued := row.job.Status == shared.OutboxQueued && !row.job.RunAt.After(now)
		stale := row.job.Status == shared.OutboxRunning && row.updatedAt.Before(staleBefore)
		if queued || stale {
			due = append(due, row)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].job.RunAt.Before(due[j].job.RunAt) })
	if int(limit) < len(due) {
		due = due[:limit]
	}

	out := make([]shared.OutboxJob, len(due))
	for i, row := range due {
		row.job.Status = shared.OutboxRunning
		row.job.Attempts++
		row.updatedAt = now
		r.u.data.outbox[row.job.ID] = row
		out[i] = row.job
	}
	return out, nil
}

func (r outboxRepo) MarkDone(_ context.Context, _ sqlc.DBTX, id uuid.UUID, now time.Time) error {
	row, ok := r.u.data.outbox[id]
	if !ok {
		return notFound("outbox job not found")
	}
	row.job.Status = shared.OutboxDone
	row.job.LastError = nil
	row.updatedAt = now
	r.u.data.outbox[id] = row
	return nil
}

func (r outboxRepo) Reschedule(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status shared.OutboxStatus, runAt time.Time, lastError string, now time.Time) error {
	row, ok := r.u.data.outbox[id]
	if !ok {
		return notFound("outbox job not found")
	}
	row.job.Status = status
	row.job.RunAt = runAt
	row.job.LastError = &lastError
	row.updatedAt = now
	r.u.data.outbox[id] = row
	return nil
}

func sortInvoices(invoices []*rent.Invoice) {
	sort.Slice(invoices, func(i, j int) bool {
		if invoices[i].LeaseID() != invoices[j].LeaseID() {
			return invoices[i].LeaseID().String() < invoices[j].LeaseID().String()
		}
		return invoices[i].Sequence() < invoices[j].Sequence()
	})
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.RequesterID(), r.Target(), r.Period(), r.Status(), r.CautionPaid(), r.CreatedAt(), r.UpdatedAt())
}

func clonePayment(p *payment.Payment) *payment.Payment {
	return payment.ReconstructPayment(
		p.ID(), p.ReservationID(), p.Kind(), p.Amount(), p.Currency(), p.Status(), p.ExternalRef(),
		p.Payer(), p.BillingPeriod(), p.FailureReason(), p.CreatedAt(), p.UpdatedAt())
}

func cloneContract(c *lease.Contract) *lease.Contract {
	var ref *string
	if c.DocumentRef() != nil {
		v := *c.DocumentRef()
		ref = &v
	}
	return lease.ReconstructContract(
		c.ID(), c.ReservationID(), c.PaymentID(), c.Tenant(), c.Target(), c.StartDate(), c.EndDate(),
		c.MonthlyRent(), c.Deposit(), c.Currency(), c.Status(), ref, c.CreatedAt(), c.UpdatedAt())
}

func cloneInvoice(inv *rent.Invoice) *rent.Invoice {
	return rent.ReconstructInvoice(
		inv.ID(), inv.LeaseID(), inv.Sequence(), inv.PeriodStart(), inv.PeriodEnd(), inv.DueDate(),
		inv.Amount(), inv.Currency(), inv.Status(), inv.PaidAt(), inv.CreatedAt(), inv.UpdatedAt())
}
