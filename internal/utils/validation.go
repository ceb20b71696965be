package utils

import (
	"fmt"
	"slices"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

var dayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ValidateWeeklyAvailability checks day keys and, for available days, that
// the time window parses and ends after it starts. Unavailable days may
// carry leftover window values; those are ignored.
func ValidateWeeklyAvailability(availability domain.WeeklyAvailability) error {
	for day, window := range availability {
		if !slices.Contains(dayNames, day) {
			return fmt.Errorf("unknown day %q", day)
		}

		if !window.Available {
			continue
		}

		if window.Start == "" || window.End == "" {
			continue
		}

		start, err := time.Parse("15:04", window.Start)
		if err != nil {
			return fmt.Errorf("invalid start time for %s", day)
		}
		end, err := time.Parse("15:04", window.End)
		if err != nil {
			return fmt.Errorf("invalid end time for %s", day)
		}
		if !end.After(start) {
			return fmt.Errorf("end time must be after start time for %s", day)
		}
	}

	return nil
}

func ValidateWeeklySchedule(schedule domain.WeeklySchedule) error {
	for day := range schedule {
		if !slices.Contains(dayNames, day) {
			return fmt.Errorf("unknown day %q", day)
		}
	}

	return nil
}
