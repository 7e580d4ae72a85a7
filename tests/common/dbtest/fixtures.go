//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Fixed ids of the reference listing seeded by SeedReferenceData.
var (
	SeedPropertyID = uuid.MustParse("6f1d3c1e-8a8e-4b0f-9f59-2f6f3b0d0a01")
	SeedUnitAID    = uuid.MustParse("6f1d3c1e-8a8e-4b0f-9f59-2f6f3b0d0a02")
	SeedUnitBID    = uuid.MustParse("6f1d3c1e-8a8e-4b0f-9f59-2f6f3b0d0a03")
)

const (
	SeedPropertyRent int64 = 120000
	SeedUnitRent     int64 = 50000
)

func CreateTestTenant(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	tenantID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO tenants (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (lower(email)) DO NOTHING",
		tenantID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM tenants WHERE lower(email) = lower($1)", email).Scan(&tenantID)
	}

	return tenantID
}

// CreatePendingReservation inserts a pending reservation on a unit (unitID set) or a whole property.
func CreatePendingReservation(t *testing.T, db DBLike, tenantID uuid.UUID, propertyID, unitID *uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, requester_id, property_id, unit_id, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, 'pending')`,
		reservationID, tenantID, propertyID, unitID, start, end)
	require.NoError(t, err)

	return reservationID
}

func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the reference listing: one property with two rentable units
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO properties (id, name, address, surface_m2, monthly_rent, currency) VALUES
		    ($1, 'Rue des Lilas', '12 rue des Lilas, Lyon', 85, $2, 'eur')
		ON CONFLICT (id) DO NOTHING;
	`, SeedPropertyID, SeedPropertyRent)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rental_units (id, property_id, label, surface_m2, monthly_rent) VALUES
		    ($1, $3, 'Room A', 14, $4),
		    ($2, $3, 'Room B', 12, $4)
		ON CONFLICT (id) DO NOTHING;
	`, SeedUnitAID, SeedUnitBID, SeedPropertyID, SeedUnitRent)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
