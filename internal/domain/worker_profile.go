package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DayAvailability is a worker's self-reported window for a single weekday.
// Start and End are only meaningful when Available is true.
type DayAvailability struct {
	Available bool   `json:"available"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
}

// WeeklyAvailability maps lowercase day names (monday..sunday) to windows.
// Absent days are treated as unavailable.
type WeeklyAvailability map[string]DayAvailability

func (wa WeeklyAvailability) Value() (driver.Value, error) {
	if wa == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(wa)
}

func (wa *WeeklyAvailability) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, wa)
	case string:
		return json.Unmarshal([]byte(v), wa)
	case nil:
		*wa = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for WeeklyAvailability", src)
	}
}

// StringList is stored as a jsonb column.
type StringList []string

func (sl StringList) Value() (driver.Value, error) {
	if sl == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(sl)
}

func (sl *StringList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, sl)
	case string:
		return json.Unmarshal([]byte(v), sl)
	case nil:
		*sl = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

type WorkerProfile struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"userID"`
	Headline     string             `json:"headline"`
	Bio          string             `json:"bio"`
	HourlyRate   float64            `json:"hourlyRate"`
	Skills       StringList         `json:"skills"`
	Availability WeeklyAvailability `json:"availability"`
	CreatedAt    time.Time          `json:"createdAt"`
}
