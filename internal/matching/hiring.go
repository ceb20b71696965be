package matching

import (
	"strings"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

// DayName returns the lowercase weekday name used as the key in
// WeeklySchedule and WeeklyAvailability maps.
func DayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// countsTowardDate reports whether a posting needs coverage on the given
// calendar date: it must be active, the date must fall within the posting's
// optional [StartDate, EndDate] window, and the posting's weekly schedule
// must need the date's weekday.
func countsTowardDate(posting *domain.JobPosting, date time.Time) bool {
	if posting.Status != domain.JobStatusActive {
		return false
	}

	day := truncateToDay(date)
	if posting.StartDate != nil && day.Before(truncateToDay(*posting.StartDate)) {
		return false
	}
	if posting.EndDate != nil && day.After(truncateToDay(*posting.EndDate)) {
		return false
	}

	return posting.Schedule[DayName(date)]
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// OpenPositionsOn sums the remaining open positions across all postings that
// count toward the given date. A posting with no explicit capacity counts as
// one position; an overfilled posting contributes zero, never a negative.
func OpenPositionsOn(date time.Time, postings []*domain.JobPosting) int {
	total := 0

	for _, posting := range postings {
		if !countsTowardDate(posting, date) {
			continue
		}

		available := posting.PositionsAvailable
		if available == 0 {
			available = 1
		}

		open := int(available - posting.PositionsFilled)
		if open > 0 {
			total += open
		}
	}

	return total
}

// IsHiringOn reports whether the date should be labeled as hiring. A date
// whose qualifying postings are all filled is not hiring.
func IsHiringOn(date time.Time, postings []*domain.JobPosting) bool {
	return OpenPositionsOn(date, postings) > 0
}
