package domain

import "time"

type NotificationType string

const (
	NotificationTypeShiftResponse      NotificationType = "shift_response"
	NotificationTypeApplicationUpdate  NotificationType = "application_update"
	NotificationTypeVerificationUpdate NotificationType = "verification_update"
	NotificationTypeNewMessage         NotificationType = "new_message"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"userID"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}
