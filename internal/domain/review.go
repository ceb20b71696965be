package domain

import "time"

type Review struct {
	ID              int64     `json:"id"`
	RestaurantID    int64     `json:"restaurantID"`
	WorkerProfileID int64     `json:"workerProfileID"`
	AuthorUserID    int64     `json:"authorUserID"`
	Rating          int32     `json:"rating"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"createdAt"`
}
