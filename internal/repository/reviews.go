package repository

import (
	"context"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (r *Repository) CreateReview(review *domain.Review) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO reviews (restaurant_id, worker_profile_id, author_user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	args := []any{review.RestaurantID, review.WorkerProfileID, review.AuthorUserID, review.Rating, review.Comment}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetReviewsByWorkerProfileID(workerProfileID int64) ([]*domain.Review, error) {
	query := `
		SELECT id, restaurant_id, author_user_id, rating, comment, created_at
		FROM reviews
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

	reviews := []*domain.Review{}
	for rows.Next() {
		review := domain.Review{
			WorkerProfileID: workerProfileID,
		}
		dst := []any{&review.ID, &review.RestaurantID, &review.AuthorUserID, &review.Rating, &review.Comment, &review.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *Repository) GetReviewsByRestaurantID(restaurantID int64) ([]*domain.Review, error) {
	query := `
		SELECT id, worker_profile_id, author_user_id, rating, comment, created_at
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review := domain.Review{
			RestaurantID: restaurantID,
		}
		dst := []any{&review.ID, &review.WorkerProfileID, &review.AuthorUserID, &review.Rating, &review.Comment, &review.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
