package repository

import (
	"context"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (r *Repository) CreateWorkerProfile(profile *domain.WorkerProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO worker_profiles (user_id, headline, bio, hourly_rate, skills, availability)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	args := []any{profile.UserID, profile.Headline, profile.Bio, profile.HourlyRate, profile.Skills, profile.Availability}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&profile.ID, &profile.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetWorkerProfileByID(id int64) (*domain.WorkerProfile, error) {
	query := `
		SELECT user_id, headline, bio, hourly_rate, skills, availability, created_at
		FROM worker_profiles WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	profile := &domain.WorkerProfile{
		ID: id,
	}

	dst := []any{&profile.UserID, &profile.Headline, &profile.Bio, &profile.HourlyRate, &profile.Skills, &profile.Availability, &profile.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *Repository) GetWorkerProfileByUserID(userID int64) (*domain.WorkerProfile, error) {
	query := `
		SELECT id, headline, bio, hourly_rate, skills, availability, created_at
		FROM worker_profiles WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	profile := &domain.WorkerProfile{
		UserID: userID,
	}

	dst := []any{&profile.ID, &profile.Headline, &profile.Bio, &profile.HourlyRate, &profile.Skills, &profile.Availability, &profile.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *Repository) GetAllWorkerProfiles() ([]*domain.WorkerProfile, error) {
	query := `
		SELECT id, user_id, headline, bio, hourly_rate, skills, availability, created_at
		FROM worker_profiles
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]*domain.WorkerProfile, 0)
	for rows.Next() {
		profile := &domain.WorkerProfile{}
		dst := []any{&profile.ID, &profile.UserID, &profile.Headline, &profile.Bio, &profile.HourlyRate, &profile.Skills, &profile.Availability, &profile.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *Repository) UpdateWorkerProfile(profile *domain.WorkerProfile) error {
	query := `
		UPDATE worker_profiles
		SET
			headline = $1,
			bio = $2,
			hourly_rate = $3,
			skills = $4,
			availability = $5
		WHERE id = $6
		RETURNING user_id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{profile.Headline, profile.Bio, profile.HourlyRate, profile.Skills, profile.Availability, profile.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&profile.UserID, &profile.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteWorkerProfile(id int64) error {
	query := `
		DELETE FROM worker_profiles WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
