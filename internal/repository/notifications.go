package repository

import (
	"context"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (r *Repository) CreateNotification(notification *domain.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO notifications (user_id, type, message)
		VALUES ($1, $2, $3)
		RETURNING id, is_read, created_at
	`

	args := []any{notification.UserID, notification.Type, notification.Message}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&notification.ID, &notification.IsRead, &notification.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetNotificationsByUserID(userID int64) ([]*domain.Notification, error) {
	query := `
		SELECT id, type, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []*domain.Notification{}
	for rows.Next() {
		notification := domain.Notification{
			UserID: userID,
		}
		dst := []any{&notification.ID, &notification.Type, &notification.Message, &notification.IsRead, &notification.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *Repository) MarkNotificationRead(id int64, userID int64) error {
	query := `
		UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id, userID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) MarkAllNotificationsRead(userID int64) error {
	query := `
		UPDATE notifications SET is_read = TRUE WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, userID); err != nil {
		return err
	}

	return nil
}
