package domain

import "time"

type ShiftType string

const (
	ShiftTypeInterview ShiftType = "interview"
	ShiftTypeWorkShift ShiftType = "work_shift"
)

type ShiftStatus string

const (
	ShiftStatusProposed        ShiftStatus = "proposed"
	ShiftStatusAccepted        ShiftStatus = "accepted"
	ShiftStatusDeclined        ShiftStatus = "declined"
	ShiftStatusCounterProposed ShiftStatus = "counter_proposed"
	ShiftStatusCompleted       ShiftStatus = "completed"
	ShiftStatusCancelled       ShiftStatus = "cancelled"
)

type ProposedBy string

const (
	ProposedByRestaurant ProposedBy = "restaurant"
	ProposedByWorker     ProposedBy = "worker"
)

// Shift is a single mutable negotiation record between a restaurant and a
// worker. A counter-proposal overwrites the counter fields in place; no
// history of prior proposals is kept.
type Shift struct {
	ID                  int64       `json:"id"`
	RestaurantID        int64       `json:"restaurantID"`
	WorkerProfileID     int64       `json:"workerProfileID"`
	ShiftType           ShiftType   `json:"shiftType"`
	ProposedDate        time.Time   `json:"proposedDate"`
	EndTime             *time.Time  `json:"endTime"`
	Location            string      `json:"location"`
	Notes               string      `json:"notes"`
	Status              ShiftStatus `json:"status"`
	ProposedBy          ProposedBy  `json:"proposedBy"`
	CounterProposalDate *time.Time  `json:"counterProposalDate"`
	CounterProposalEnd  *time.Time  `json:"counterProposalEnd"`
	ResponseNotes       string      `json:"responseNotes"`
	CreatedAt           time.Time   `json:"createdAt"`
}
