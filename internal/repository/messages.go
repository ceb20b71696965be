package repository

import (
	"context"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (r *Repository) CreateConversation(conversation *domain.Conversation) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO conversations (restaurant_id, worker_profile_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, conversation.RestaurantID, conversation.WorkerProfileID).Scan(&conversation.ID, &conversation.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetConversationByID(id int64) (*domain.Conversation, error) {
	query := `
		SELECT restaurant_id, worker_profile_id, created_at
		FROM conversations WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	conversation := &domain.Conversation{
		ID: id,
	}

	dst := []any{&conversation.RestaurantID, &conversation.WorkerProfileID, &conversation.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return conversation, nil
}

func (r *Repository) GetConversationByParticipants(restaurantID, workerProfileID int64) (*domain.Conversation, error) {
	query := `
		SELECT id, created_at
		FROM conversations
		WHERE restaurant_id = $1 AND worker_profile_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	conversation := &domain.Conversation{
		RestaurantID:    restaurantID,
		WorkerProfileID: workerProfileID,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, restaurantID, workerProfileID).Scan(&conversation.ID, &conversation.CreatedAt); err != nil {
		return nil, err
	}

	return conversation, nil
}

func (r *Repository) GetConversationsByRestaurantID(restaurantID int64) ([]*domain.Conversation, error) {
	return r.getConversations(`
		SELECT id, restaurant_id, worker_profile_id, created_at
		FROM conversations
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
}

func (r *Repository) GetConversationsByWorkerProfileID(workerProfileID int64) ([]*domain.Conversation, error) {
	return r.getConversations(`
		SELECT id, restaurant_id, worker_profile_id, created_at
		FROM conversations
		WHERE worker_profile_id = $1
		ORDER BY created_at DESC
	`, workerProfileID)
}

func (r *Repository) getConversations(query string, arg any) ([]*domain.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conversations := []*domain.Conversation{}
	for rows.Next() {
		var conversation domain.Conversation
		dst := []any{&conversation.ID, &conversation.RestaurantID, &conversation.WorkerProfileID, &conversation.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		conversations = append(conversations, &conversation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conversations, nil
}

func (r *Repository) CreateDirectMessage(message *domain.DirectMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO direct_messages (conversation_id, sender_user_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	args := []any{message.ConversationID, message.SenderUserID, message.Body}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&message.ID, &message.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetDirectMessages returns messages after the given ID so polling clients
// can fetch only what they have not seen. Pass 0 for the full history.
func (r *Repository) GetDirectMessages(conversationID int64, afterID int64) ([]*domain.DirectMessage, error) {
	query := `
		SELECT id, sender_user_id, body, created_at
		FROM direct_messages
		WHERE conversation_id = $1 AND id > $2
		ORDER BY id ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, conversationID, afterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []*domain.DirectMessage{}
	for rows.Next() {
		message := domain.DirectMessage{
			ConversationID: conversationID,
		}
		dst := []any{&message.ID, &message.SenderUserID, &message.Body, &message.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
