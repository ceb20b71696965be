package domain

import "time"

// VerificationRequest is a restaurant's request to be marked as verified,
// reviewed by an admin.
type VerificationRequest struct {
	ID              int64              `json:"id"`
	RestaurantID    int64              `json:"restaurantID"`
	BusinessLicense string             `json:"businessLicense"`
	Notes           string             `json:"notes"`
	Status          VerificationStatus `json:"status"`
	RejectionReason string             `json:"rejectionReason"`
	ReviewedBy      *int64             `json:"reviewedBy"`
	CreatedAt       time.Time          `json:"createdAt"`
}
