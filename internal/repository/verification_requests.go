package repository

import (
	"context"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (r *Repository) CreateVerificationRequest(request *domain.VerificationRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO verification_requests (restaurant_id, business_license, notes)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at
	`

	args := []any{request.RestaurantID, request.BusinessLicense, request.Notes}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&request.ID, &request.Status, &request.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetVerificationRequestByID(id int64) (*domain.VerificationRequest, error) {
	query := `
		SELECT restaurant_id, business_license, notes, status, rejection_reason, reviewed_by, created_at
		FROM verification_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	request := &domain.VerificationRequest{
		ID: id,
	}

	dst := []any{&request.RestaurantID, &request.BusinessLicense, &request.Notes, &request.Status, &request.RejectionReason, &request.ReviewedBy, &request.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return request, nil
}

func (r *Repository) GetPendingVerificationRequests() ([]*domain.VerificationRequest, error) {
	query := `
		SELECT id, restaurant_id, business_license, notes, status, rejection_reason, reviewed_by, created_at
		FROM verification_requests
		WHERE status = 'pending'
		ORDER BY created_at ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []*domain.VerificationRequest{}
	for rows.Next() {
		var request domain.VerificationRequest
		dst := []any{&request.ID, &request.RestaurantID, &request.BusinessLicense, &request.Notes, &request.Status, &request.RejectionReason, &request.ReviewedBy, &request.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// ReviewVerificationRequest writes the review outcome and, in the same
// transaction, updates the restaurant's verification status so the two
// records cannot drift apart.
func (r *Repository) ReviewVerificationRequest(request *domain.VerificationRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE verification_requests
		SET status = $1, rejection_reason = $2, reviewed_by = $3
		WHERE id = $4
	`
	if _, err := tx.ExecContext(ctx, query, request.Status, request.RejectionReason, request.ReviewedBy, request.ID); err != nil {
		return err
	}

	query = `
		UPDATE restaurants SET verification_status = $1 WHERE id = $2
	`
	if _, err := tx.ExecContext(ctx, query, request.Status, request.RestaurantID); err != nil {
		return err
	}

	return tx.Commit()
}
