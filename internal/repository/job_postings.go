package repository

import (
	"context"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (r *Repository) CreateJobPosting(posting *domain.JobPosting) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO job_postings (
			restaurant_id,
			title,
			description,
			hourly_rate,
			status,
			schedule,
			start_date,
			end_date,
			positions_available
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, positions_filled, created_at
	`

	args := []any{
		posting.RestaurantID,
		posting.Title,
		posting.Description,
		posting.HourlyRate,
		posting.Status,
		posting.Schedule,
		posting.StartDate,
		posting.EndDate,
		posting.PositionsAvailable,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&posting.ID, &posting.PositionsFilled, &posting.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetJobPostingByID(id int64) (*domain.JobPosting, error) {
	query := `
		SELECT
			restaurant_id,
			title,
			description,
			hourly_rate,
			status,
			schedule,
			start_date,
			end_date,
			positions_available,
			positions_filled,
			created_at
		FROM job_postings
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	posting := &domain.JobPosting{
		ID: id,
	}

	dst := []any{
		&posting.RestaurantID,
		&posting.Title,
		&posting.Description,
		&posting.HourlyRate,
		&posting.Status,
		&posting.Schedule,
		&posting.StartDate,
		&posting.EndDate,
		&posting.PositionsAvailable,
		&posting.PositionsFilled,
		&posting.CreatedAt,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return posting, nil
}

func (r *Repository) GetAllJobPostings() ([]*domain.JobPosting, error) {
	query := `
		SELECT
			id,
			restaurant_id,
			title,
			description,
			hourly_rate,
			status,
			schedule,
			start_date,
			end_date,
			positions_available,
			positions_filled,
			created_at
		FROM job_postings
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postings := []*domain.JobPosting{}
	for rows.Next() {
		var posting domain.JobPosting
		dst := []any{
			&posting.ID,
			&posting.RestaurantID,
			&posting.Title,
			&posting.Description,
			&posting.HourlyRate,
			&posting.Status,
			&posting.Schedule,
			&posting.StartDate,
			&posting.EndDate,
			&posting.PositionsAvailable,
			&posting.PositionsFilled,
			&posting.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		postings = append(postings, &posting)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return postings, nil
}

func (r *Repository) GetJobPostingsByRestaurantID(restaurantID int64) ([]*domain.JobPosting, error) {
	query := `
		SELECT
			id,
			title,
			description,
			hourly_rate,
			status,
			schedule,
			start_date,
			end_date,
			positions_available,
			positions_filled,
			created_at
		FROM job_postings
		WHERE restaurant_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postings := []*domain.JobPosting{}
	for rows.Next() {
		posting := domain.JobPosting{
			RestaurantID: restaurantID,
		}
		dst := []any{
			&posting.ID,
			&posting.Title,
			&posting.Description,
			&posting.HourlyRate,
			&posting.Status,
			&posting.Schedule,
			&posting.StartDate,
			&posting.EndDate,
			&posting.PositionsAvailable,
			&posting.PositionsFilled,
			&posting.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		postings = append(postings, &posting)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return postings, nil
}

func (r *Repository) UpdateJobPosting(posting *domain.JobPosting) error {
	query := `
		UPDATE job_postings
		SET
			title = $1,
			description = $2,
			hourly_rate = $3,
			status = $4,
			schedule = $5,
			start_date = $6,
			end_date = $7,
			positions_available = $8,
			positions_filled = $9
		WHERE id = $10
		RETURNING restaurant_id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		posting.Title,
		posting.Description,
		posting.HourlyRate,
		posting.Status,
		posting.Schedule,
		posting.StartDate,
		posting.EndDate,
		posting.PositionsAvailable,
		posting.PositionsFilled,
		posting.ID,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&posting.RestaurantID, &posting.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteJobPosting(id int64) error {
	query := `
		DELETE FROM job_postings WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
