//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"furnished-lease-engine/internal/domain/rent"
	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/pkg/errs"
	"furnished-lease-engine/internal/usecase/commands"
	"furnished-lease-engine/internal/usecase/shared"
	"furnished-lease-engine/tests/common/builder"
	"furnished-lease-engine/tests/common/fakeuow"
	commandsmock "furnished-lease-engine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedLeaseWithInvoices(uow *fakeuow.UoW, lb *builder.LeaseBuilder) []*rent.Invoice {
	uow.AddLease(lb.BuildDomain())
	invoices := lb.BuildInvoices()
	for _, inv := range invoices {
		uow.AddInvoice(inv)
	}
	return invoices
}

func TestInvoiceUseCase_MarkPaid(t *testing.T) {
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		pick   func(invoices []*rent.Invoice) uuid.UUID
		before func(uow *fakeuow.UoW, invoices []*rent.Invoice)
		errIs  error
	}{
		{
			name: "awaiting invoice becomes paid",
			pick: func(invoices []*rent.Invoice) uuid.UUID { return invoices[0].ID() },
		},
		{
			name: "overdue invoice becomes paid",
			pick: func(invoices []*rent.Invoice) uuid.UUID { return invoices[0].ID() },
			before: func(uow *fakeuow.UoW, invoices []*rent.Invoice) {
				inv := invoices[0]
				require.NoError(t, inv.MarkOverdue(inv.DueDate().Add(24*time.Hour)))
				uow.AddInvoice(inv)
			},
		},
		{
			name: "paid invoice cannot be paid again",
			pick: func(invoices []*rent.Invoice) uuid.UUID { return invoices[0].ID() },
			before: func(uow *fakeuow.UoW, invoices []*rent.Invoice) {
				inv := invoices[0]
				require.NoError(t, inv.MarkPaid(now.Add(-time.Hour)))
				uow.AddInvoice(inv)
			},
			errIs: errs.ErrInvoiceTransition,
		},
		{
			name:  "unknown invoice",
			pick:  func([]*rent.Invoice) uuid.UUID { return uuid.New() },
			errIs: errs.ErrInvoiceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uow := fakeuow.New()
			invoices := seedLeaseWithInvoices(uow, builder.NewLeaseBuilder())
			if tc.before != nil {
				tc.before(uow, invoices)
			}

			sut := commands.NewInvoiceUseCase(uow, commandsmock.NewMockOutboxKicker(ctrl), clock.NewMockClock(now))
			inv, err := sut.MarkPaid(context.Background(), tc.pick(invoices))

			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				assert.Nil(t, inv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, rent.InvoicePaid, inv.Status())
			require.NotNil(t, inv.PaidAt())
			assert.Equal(t, now, *inv.PaidAt())
			assert.Equal(t, rent.InvoicePaid, uow.Invoices()[0].Status())
		})
	}
}

func TestInvoiceUseCase_MarkOverdue(t *testing.T) {
	now := time.Date(2024, 2, 10, 2, 15, 0, 0, time.UTC)
	asOf := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	t.Run("flips every awaiting invoice past due and notifies the tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kicker := commandsmock.NewMockOutboxKicker(ctrl)
		kicker.EXPECT().Kick().Times(1)

		uow := fakeuow.New()
		lb := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
			b.EndDate = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		})
		seedLeaseWithInvoices(uow, lb)

		sut := commands.NewInvoiceUseCase(uow, kicker, clock.NewMockClock(now))
		n, err := sut.MarkOverdue(context.Background(), asOf, 100)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		statuses := make([]rent.InvoiceStatus, 0)
		for _, inv := range uow.Invoices() {
			statuses = append(statuses, inv.Status())
		}
		assert.Equal(t, []rent.InvoiceStatus{rent.InvoiceOverdue, rent.InvoiceOverdue, rent.InvoiceAwaiting}, statuses)

		jobs := uow.OutboxJobs()
		require.Len(t, jobs, 2)
		for _, job := range jobs {
			assert.Equal(t, shared.OutboxNotify, job.Kind)
			assert.Equal(t, shared.EventInvoiceOverdue, job.Topic)

			var payload shared.NotifyPayload
			require.NoError(t, json.Unmarshal(job.Payload, &payload))
			assert.Equal(t, lb.TenantID, payload.UserID)
		}
	})

	t.Run("respects the batch limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kicker := commandsmock.NewMockOutboxKicker(ctrl)
		kicker.EXPECT().Kick().Times(1)

		uow := fakeuow.New()
		seedLeaseWithInvoices(uow, builder.NewLeaseBuilder())

		sut := commands.NewInvoiceUseCase(uow, kicker, clock.NewMockClock(now))
		n, err := sut.MarkOverdue(context.Background(), asOf, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, rent.InvoiceOverdue, uow.Invoices()[0].Status())
		assert.Equal(t, rent.InvoiceAwaiting, uow.Invoices()[1].Status())
	})

	t.Run("nothing due does not kick the dispatcher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := fakeuow.New()
		seedLeaseWithInvoices(uow, builder.NewLeaseBuilder())

		sut := commands.NewInvoiceUseCase(uow, commandsmock.NewMockOutboxKicker(ctrl), clock.NewMockClock(now))
		n, err := sut.MarkOverdue(context.Background(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 100)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, uow.OutboxJobs())
	})

	t.Run("enqueue failure rolls back the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := fakeuow.New()
		seedLeaseWithInvoices(uow, builder.NewLeaseBuilder())
		uow.FailOn("Outbox.Enqueue", errors.New("connection lost"))

		sut := commands.NewInvoiceUseCase(uow, commandsmock.NewMockOutboxKicker(ctrl), clock.NewMockClock(now))
		n, err := sut.MarkOverdue(context.Background(), asOf, 100)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.Zero(t, n)
		for _, inv := range uow.Invoices() {
			assert.Equal(t, rent.InvoiceAwaiting, inv.Status())
		}
	})
}
