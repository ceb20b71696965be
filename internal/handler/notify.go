package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

// publishMail serializes the message onto the notification queue. It writes
// the error response itself and returns false when publishing fails.
func (h *Handler) publishMail(w http.ResponseWriter, r *http.Request, msg domain.MailMessage) bool {
	mailData, err := json.Marshal(msg)
	if err != nil {
		h.internalServerError(w, r, err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return false
	}

	return true
}

// notifyUser creates the in-app notification record and mirrors it to the
// recipient's email through the queue. Exactly one record is created per
// call; callers decide how often to call.
func (h *Handler) notifyUser(w http.ResponseWriter, r *http.Request, userID int64, notificationType domain.NotificationType, message string) bool {
	notification := &domain.Notification{
		UserID:  userID,
		Type:    notificationType,
		Message: message,
	}

	if err := h.repository.CreateNotification(notification); err != nil {
		h.internalServerError(w, r, err)
		return false
	}

	recipient, err := h.repository.GetUserByID(userID)
	if err != nil {
		h.internalServerError(w, r, err)
		return false
	}

	return h.publishMail(w, r, domain.MailMessage{
		Type: "shift_response",
		To:   recipient.Email,
		Data: domain.ShiftResponseMailData{
			FullName: recipient.FullName,
			Message:  message,
		},
	})
}
