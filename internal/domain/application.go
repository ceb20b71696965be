package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

type Application struct {
	ID              int64             `json:"id"`
	JobPostingID    int64             `json:"jobPostingID"`
	WorkerProfileID int64             `json:"workerProfileID"`
	CoverNote       string            `json:"coverNote"`
	Status          ApplicationStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}
