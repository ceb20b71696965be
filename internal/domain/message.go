package domain

import "time"

type Conversation struct {
	ID              int64     `json:"id"`
	RestaurantID    int64     `json:"restaurantID"`
	WorkerProfileID int64     `json:"workerProfileID"`
	CreatedAt       time.Time `json:"createdAt"`
}

type DirectMessage struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationID"`
	SenderUserID   int64     `json:"senderUserID"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"createdAt"`
}
