package converter

import (
	"fmt"

	"furnished-lease-engine/internal/domain/reservation"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	target := res.Target()
	return sqlc.CreateReservationParams{
		ID:          res.ID(),
		RequesterID: res.RequesterID(),
		PropertyID:  pgconv.UUIDPtrToPgtype(target.PropertyID()),
		UnitID:      pgconv.UUIDPtrToPgtype(target.UnitID()),
		StartDate:   pgconv.DateToPgtype(res.Period().Start()),
		EndDate:     pgconv.DateToPgtype(res.Period().End()),
		Status:      res.Status().String(),
		CautionPaid: res.CautionPaid(),
		CreatedAt:   pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationStatusToInfra(res *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		ID:          res.ID(),
		Status:      res.Status().String(),
		CautionPaid: res.CautionPaid(),
		UpdatedAt:   pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromInfra(row sqlc.Reservation) (*reservation.Reservation, error) {
	target, err := reservation.NewTarget(pgconv.UUIDPtrFromPgtype(row.PropertyID), pgconv.UUIDPtrFromPgtype(row.UnitID))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	period, err := reservation.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	status := reservation.Status(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("reservation %s: %w: %q", row.ID, reservation.ErrInvalidStatus, row.Status)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.RequesterID,
		target,
		period,
		status,
		row.CautionPaid,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationsFromInfra(rows []sqlc.Reservation) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := ReservationFromInfra(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
