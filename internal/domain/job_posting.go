package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
	JobStatusFilled   JobStatus = "filled"
)

// WeeklySchedule maps lowercase day names to whether the posting needs
// coverage on that day. Absent days mean no coverage needed.
type WeeklySchedule map[string]bool

func (ws WeeklySchedule) Value() (driver.Value, error) {
	if ws == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(ws)
}

func (ws *WeeklySchedule) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, ws)
	case string:
		return json.Unmarshal([]byte(v), ws)
	case nil:
		*ws = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for WeeklySchedule", src)
	}
}

type JobPosting struct {
	ID                 int64          `json:"id"`
	RestaurantID       int64          `json:"restaurantID"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	HourlyRate         float64        `json:"hourlyRate"`
	Status             JobStatus      `json:"status"`
	Schedule           WeeklySchedule `json:"schedule"`
	StartDate          *time.Time     `json:"startDate"`
	EndDate            *time.Time     `json:"endDate"`
	PositionsAvailable int32          `json:"positionsAvailable"`
	PositionsFilled    int32          `json:"positionsFilled"`
	CreatedAt          time.Time      `json:"createdAt"`
}
