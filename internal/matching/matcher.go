package matching

import (
	"math"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

// Days is the fixed evaluation order for weekly comparisons.
var Days = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type DayStatus string

const (
	DayStatusMatch     DayStatus = "match"
	DayStatusConflict  DayStatus = "conflict"
	DayStatusNotNeeded DayStatus = "not_needed"
)

type DayResult struct {
	Day    string    `json:"day"`
	Status DayStatus `json:"status"`
	Start  string    `json:"start,omitempty"`
	End    string    `json:"end,omitempty"`
}

type Result struct {
	Days            []DayResult `json:"days"`
	NeededDays      int         `json:"neededDays"`
	MatchedDays     int         `json:"matchedDays"`
	MatchPercentage int         `json:"matchPercentage"`
}

// Match classifies each weekday of a job posting's schedule against a
// worker's availability and computes the aggregate match percentage.
// A day the schedule does not need is not_needed regardless of availability;
// a needed day is a match only when the worker marked it available. Nil or
// partially populated maps are fine: missing keys count as unavailable /
// not needed. A schedule with zero needed days yields 0%, never NaN.
func Match(availability domain.WeeklyAvailability, schedule domain.WeeklySchedule) Result {
	result := Result{
		Days: make([]DayResult, 0, len(Days)),
	}

	for _, day := range Days {
		dr := DayResult{Day: day}

		switch {
		case !schedule[day]:
			dr.Status = DayStatusNotNeeded
		case availability[day].Available:
			dr.Status = DayStatusMatch
			dr.Start = availability[day].Start
			dr.End = availability[day].End
			result.MatchedDays++
		default:
			dr.Status = DayStatusConflict
		}

		if schedule[day] {
			result.NeededDays++
		}

		result.Days = append(result.Days, dr)
	}

	if result.NeededDays > 0 {
		result.MatchPercentage = int(math.Round(float64(result.MatchedDays) / float64(result.NeededDays) * 100))
	}

	return result
}
