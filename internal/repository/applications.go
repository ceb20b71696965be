package repository

import (
	"context"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (r *Repository) CreateApplication(application *domain.Application) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO applications (job_posting_id, worker_profile_id, cover_note)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at
	`

	args := []any{application.JobPostingID, application.WorkerProfileID, application.CoverNote}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&application.ID, &application.Status, &application.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetApplicationByID(id int64) (*domain.Application, error) {
	query := `
		SELECT job_posting_id, worker_profile_id, cover_note, status, created_at
		FROM applications WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	application := &domain.Application{
		ID: id,
	}

	dst := []any{&application.JobPostingID, &application.WorkerProfileID, &application.CoverNote, &application.Status, &application.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return application, nil
}

func (r *Repository) GetApplicationsByJobPostingID(jobPostingID int64) ([]*domain.Application, error) {
	query := `
		SELECT id, worker_profile_id, cover_note, status, created_at
		FROM applications
		WHERE job_posting_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, jobPostingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []*domain.Application{}
	for rows.Next() {
		application := domain.Application{
			JobPostingID: jobPostingID,
		}
		dst := []any{&application.ID, &application.WorkerProfileID, &application.CoverNote, &application.Status, &application.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *Repository) GetApplicationsByWorkerProfileID(workerProfileID int64) ([]*domain.Application, error) {
	query := `
		SELECT id, job_posting_id, cover_note, status, created_at
		FROM applications
		WHERE worker_profile_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, workerProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []*domain.Application{}
	for rows.Next() {
		application := domain.Application{
			WorkerProfileID: workerProfileID,
		}
		dst := []any{&application.ID, &application.JobPostingID, &application.CoverNote, &application.Status, &application.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *Repository) UpdateApplicationStatus(application *domain.Application) error {
	query := `
		UPDATE applications
		SET status = $1
		WHERE id = $2
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, application.Status, application.ID).Scan(&application.CreatedAt); err != nil {
		return err
	}

	return nil
}
