package domain

import "time"

type VerificationStatus string

const (
	VerificationStatusUnverified VerificationStatus = "unverified"
	VerificationStatusPending    VerificationStatus = "pending"
	VerificationStatusVerified   VerificationStatus = "verified"
	VerificationStatusRejected   VerificationStatus = "rejected"
)

type Restaurant struct {
	ID                 int64              `json:"id"`
	UserID             int64              `json:"userID"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Address            string             `json:"address"`
	Phone              string             `json:"phone"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	CreatedAt          time.Time          `json:"createdAt"`
}
