package matching

import (
	"testing"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchZeroNeededDays(t *testing.T) {
	result := Match(domain.WeeklyAvailability{
		"monday": {Available: true, Start: "09:00", End: "17:00"},
	}, domain.WeeklySchedule{})

	assert.Equal(t, 0, result.NeededDays)
	assert.Equal(t, 0, result.MatchedDays)
	assert.Equal(t, 0, result.MatchPercentage)
}

func TestMatchNilInputs(t *testing.T) {
	result := Match(nil, nil)

	assert.Equal(t, 0, result.MatchPercentage)
	require.Len(t, result.Days, 7)
	for _, dr := range result.Days {
		assert.Equal(t, DayStatusNotNeeded, dr.Status)
	}
}

func TestMatchPartialOverlap(t *testing.T) {
	schedule := domain.WeeklySchedule{"monday": true, "wednesday": true, "friday": true}
	availability := domain.WeeklyAvailability{
		"monday":    {Available: true, Start: "09:00", End: "17:00"},
		"wednesday": {Available: false},
		"friday":    {Available: true, Start: "12:00", End: "20:00"},
	}

	result := Match(availability, schedule)

	assert.Equal(t, 3, result.NeededDays)
	assert.Equal(t, 2, result.MatchedDays)
	assert.Equal(t, 67, result.MatchPercentage)
}

func TestMatchDayClassification(t *testing.T) {
	schedule := domain.WeeklySchedule{"tuesday": true, "thursday": true}
	availability := domain.WeeklyAvailability{
		"tuesday": {Available: true, Start: "08:00", End: "16:00"},
		// saturday availability is irrelevant because it is not needed
		"saturday": {Available: true},
	}

	result := Match(availability, schedule)

	byDay := map[string]DayResult{}
	for _, dr := range result.Days {
		byDay[dr.Day] = dr
	}

	assert.Equal(t, DayStatusMatch, byDay["tuesday"].Status)
	assert.Equal(t, "08:00", byDay["tuesday"].Start)
	assert.Equal(t, "16:00", byDay["tuesday"].End)
	assert.Equal(t, DayStatusConflict, byDay["thursday"].Status)
	assert.Equal(t, DayStatusNotNeeded, byDay["saturday"].Status)
	assert.Equal(t, DayStatusNotNeeded, byDay["monday"].Status)
}

func TestMatchFlippingFlagsFlipsClassification(t *testing.T) {
	schedule := domain.WeeklySchedule{"monday": true}

	withAvail := Match(domain.WeeklyAvailability{"monday": {Available: true}}, schedule)
	assert.Equal(t, DayStatusMatch, withAvail.Days[0].Status)

	withoutAvail := Match(domain.WeeklyAvailability{"monday": {Available: false}}, schedule)
	assert.Equal(t, DayStatusConflict, withoutAvail.Days[0].Status)

	notNeeded := Match(domain.WeeklyAvailability{"monday": {Available: true}}, domain.WeeklySchedule{"monday": false})
	assert.Equal(t, DayStatusNotNeeded, notNeeded.Days[0].Status)
}

func TestMatchFullOverlap(t *testing.T) {
	schedule := domain.WeeklySchedule{}
	availability := domain.WeeklyAvailability{}
	for _, day := range Days {
		schedule[day] = true
		availability[day] = domain.DayAvailability{Available: true, Start: "00:00", End: "23:59"}
	}

	result := Match(availability, schedule)

	assert.Equal(t, 7, result.NeededDays)
	assert.Equal(t, 7, result.MatchedDays)
	assert.Equal(t, 100, result.MatchPercentage)
}

func TestMatchedDaysNeverExceedNeededDays(t *testing.T) {
	availability := domain.WeeklyAvailability{}
	for _, day := range Days {
		availability[day] = domain.DayAvailability{Available: true}
	}

	result := Match(availability, domain.WeeklySchedule{"sunday": true})

	assert.Equal(t, 1, result.NeededDays)
	assert.Equal(t, 1, result.MatchedDays)
	assert.LessOrEqual(t, result.MatchedDays, result.NeededDays)
	assert.Equal(t, 100, result.MatchPercentage)
}

func TestMatchRounding(t *testing.T) {
	// 1 of 6 needed days is 16.67%, rounded to 17.
	schedule := domain.WeeklySchedule{}
	for _, day := range Days[:6] {
		schedule[day] = true
	}

	result := Match(domain.WeeklyAvailability{"monday": {Available: true}}, schedule)

	assert.Equal(t, 17, result.MatchPercentage)
}
