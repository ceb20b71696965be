package repository

import (
	"context"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (r *Repository) CreateShift(shift *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shifts (
			restaurant_id,
			worker_profile_id,
			shift_type,
			proposed_date,
			end_time,
			location,
			notes,
			proposed_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, created_at
	`

	args := []any{
		shift.RestaurantID,
		shift.WorkerProfileID,
		shift.ShiftType,
		shift.ProposedDate,
		shift.EndTime,
		shift.Location,
		shift.Notes,
		shift.ProposedBy,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.Status, &shift.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShiftByID(id int64) (*domain.Shift, error) {
	query := `
		SELECT
			restaurant_id,
			worker_profile_id,
			shift_type,
			proposed_date,
			end_time,
			location,
			notes,
			status,
			proposed_by,
			counter_proposal_date,
			counter_proposal_end,
			response_notes,
			created_at
		FROM shifts
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.Shift{
		ID: id,
	}

	dst := []any{
		&shift.RestaurantID,
		&shift.WorkerProfileID,
		&shift.ShiftType,
		&shift.ProposedDate,
		&shift.EndTime,
		&shift.Location,
		&shift.Notes,
		&shift.Status,
		&shift.ProposedBy,
		&shift.CounterProposalDate,
		&shift.CounterProposalEnd,
		&shift.ResponseNotes,
		&shift.CreatedAt,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return shift, nil
}

func (r *Repository) GetShiftsByRestaurantID(restaurantID int64) ([]*domain.Shift, error) {
	query := `
		SELECT
			id,
			worker_profile_id,
			shift_type,
			proposed_date,
			end_time,
			location,
			notes,
			status,
			proposed_by,
			counter_proposal_date,
			counter_proposal_end,
			response_notes,
			created_at
		FROM shifts
		WHERE restaurant_id = $1
		ORDER BY proposed_date DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := []*domain.Shift{}
	for rows.Next() {
		shift := domain.Shift{
			RestaurantID: restaurantID,
		}
		dst := []any{
			&shift.ID,
			&shift.WorkerProfileID,
			&shift.ShiftType,
			&shift.ProposedDate,
			&shift.EndTime,
			&shift.Location,
			&shift.Notes,
			&shift.Status,
			&shift.ProposedBy,
			&shift.CounterProposalDate,
			&shift.CounterProposalEnd,
			&shift.ResponseNotes,
			&shift.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, &shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) GetShiftsByWorkerProfileID(workerProfileID int64) ([]*domain.Shift, error) {
	query := `
		SELECT
			id,
			restaurant_id,
			shift_type,
			proposed_date,
			end_time,
			location,
			notes,
			status,
			proposed_by,
			counter_proposal_date,
			counter_proposal_end,
			response_notes,
			created_at
		FROM shifts
		WHERE worker_profile_id = $1
		ORDER BY proposed_date DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, workerProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := []*domain.Shift{}
	for rows.Next() {
		shift := domain.Shift{
			WorkerProfileID: workerProfileID,
		}
		dst := []any{
			&shift.ID,
			&shift.RestaurantID,
			&shift.ShiftType,
			&shift.ProposedDate,
			&shift.EndTime,
			&shift.Location,
			&shift.Notes,
			&shift.Status,
			&shift.ProposedBy,
			&shift.CounterProposalDate,
			&shift.CounterProposalEnd,
			&shift.ResponseNotes,
			&shift.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, &shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// UpdateShift writes all mutable fields unconditionally. Concurrent
// responses to the same proposal resolve as last-write-wins.
func (r *Repository) UpdateShift(shift *domain.Shift) error {
	query := `
		UPDATE shifts
		SET
			status = $1,
			counter_proposal_date = $2,
			counter_proposal_end = $3,
			response_notes = $4,
			notes = $5
		WHERE id = $6
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		shift.Status,
		shift.CounterProposalDate,
		shift.CounterProposalEnd,
		shift.ResponseNotes,
		shift.Notes,
		shift.ID,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.CreatedAt); err != nil {
		return err
	}

	return nil
}
