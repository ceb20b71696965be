package matching

import (
	"testing"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestOpenPositionsOn(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	postings := []*domain.JobPosting{
		{
			Status:             domain.JobStatusActive,
			Schedule:           domain.WeeklySchedule{"monday": true},
			PositionsAvailable: 3,
			PositionsFilled:    2,
		},
		{
			// overfilled postings never contribute a negative count
			Status:             domain.JobStatusActive,
			Schedule:           domain.WeeklySchedule{"monday": true},
			PositionsAvailable: 3,
			PositionsFilled:    5,
		},
	}

	assert.Equal(t, 1, OpenPositionsOn(monday, postings))
}

func TestOpenPositionsDefaultCapacity(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	postings := []*domain.JobPosting{
		{
			Status:   domain.JobStatusActive,
			Schedule: domain.WeeklySchedule{"monday": true},
			// no explicit capacity counts as a single position
		},
	}

	assert.Equal(t, 1, OpenPositionsOn(monday, postings))
	assert.True(t, IsHiringOn(monday, postings))
}

func TestOpenPositionsInactivePosting(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	postings := []*domain.JobPosting{
		{
			Status:             domain.JobStatusInactive,
			Schedule:           domain.WeeklySchedule{"monday": true},
			PositionsAvailable: 4,
		},
	}

	assert.Equal(t, 0, OpenPositionsOn(monday, postings))
	assert.False(t, IsHiringOn(monday, postings))
}

func TestOpenPositionsDateWindow(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	posting := &domain.JobPosting{
		Status:             domain.JobStatusActive,
		Schedule:           domain.WeeklySchedule{"monday": true},
		PositionsAvailable: 2,
		StartDate:          datePtr(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)),
	}

	// before the start date the posting never counts, schedule or not
	assert.Equal(t, 0, OpenPositionsOn(monday, []*domain.JobPosting{posting}))

	nextMonday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, OpenPositionsOn(nextMonday, []*domain.JobPosting{posting}))

	posting.EndDate = datePtr(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	afterEnd := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, OpenPositionsOn(afterEnd, []*domain.JobPosting{posting}))
}

func TestOpenPositionsUnboundedWindow(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	posting := &domain.JobPosting{
		Status:             domain.JobStatusActive,
		Schedule:           domain.WeeklySchedule{"monday": true},
		PositionsAvailable: 1,
	}

	assert.Equal(t, 1, OpenPositionsOn(monday, []*domain.JobPosting{posting}))
}

func TestOpenPositionsWeekdayMismatch(t *testing.T) {
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	posting := &domain.JobPosting{
		Status:             domain.JobStatusActive,
		Schedule:           domain.WeeklySchedule{"monday": true},
		PositionsAvailable: 5,
	}

	assert.Equal(t, 0, OpenPositionsOn(tuesday, []*domain.JobPosting{posting}))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "monday", DayName(time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, "sunday", DayName(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)))
}
