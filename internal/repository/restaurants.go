package repository

import (
	"context"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (r *Repository) CreateRestaurant(restaurant *domain.Restaurant) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO restaurants (user_id, name, description, address, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, verification_status, created_at
	`

	args := []any{restaurant.UserID, restaurant.Name, restaurant.Description, restaurant.Address, restaurant.Phone}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&restaurant.ID, &restaurant.VerificationStatus, &restaurant.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetRestaurantByID(id int64) (*domain.Restaurant, error) {
	query := `
		SELECT user_id, name, description, address, phone, verification_status, created_at
		FROM restaurants WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	restaurant := &domain.Restaurant{
		ID: id,
	}

	dst := []any{&restaurant.UserID, &restaurant.Name, &restaurant.Description, &restaurant.Address, &restaurant.Phone, &restaurant.VerificationStatus, &restaurant.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (r *Repository) GetRestaurantByUserID(userID int64) (*domain.Restaurant, error) {
	query := `
		SELECT id, name, description, address, phone, verification_status, created_at
		FROM restaurants WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	restaurant := &domain.Restaurant{
		UserID: userID,
	}

	dst := []any{&restaurant.ID, &restaurant.Name, &restaurant.Description, &restaurant.Address, &restaurant.Phone, &restaurant.VerificationStatus, &restaurant.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (r *Repository) GetAllRestaurants() ([]*domain.Restaurant, error) {
	query := `
		SELECT id, user_id, name, description, address, phone, verification_status, created_at
		FROM restaurants
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]*domain.Restaurant, 0)
	for rows.Next() {
		restaurant := &domain.Restaurant{}
		dst := []any{&restaurant.ID, &restaurant.UserID, &restaurant.Name, &restaurant.Description, &restaurant.Address, &restaurant.Phone, &restaurant.VerificationStatus, &restaurant.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (r *Repository) UpdateRestaurant(restaurant *domain.Restaurant) error {
	query := `
		UPDATE restaurants
		SET
			name = $1,
			description = $2,
			address = $3,
			phone = $4,
			verification_status = $5
		WHERE id = $6
		RETURNING user_id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{restaurant.Name, restaurant.Description, restaurant.Address, restaurant.Phone, restaurant.VerificationStatus, restaurant.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&restaurant.UserID, &restaurant.CreatedAt); err != nil {
		return err
	}

	return nil
}
