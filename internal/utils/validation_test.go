package utils

import (
	"testing"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateWeeklyAvailability(t *testing.T) {
	assert.NoError(t, ValidateWeeklyAvailability(domain.WeeklyAvailability{
		"monday": {Available: true, Start: "09:00", End: "17:00"},
		"friday": {Available: false, Start: "bogus"},
	}))

	assert.Error(t, ValidateWeeklyAvailability(domain.WeeklyAvailability{
		"funday": {Available: true},
	}))

	assert.Error(t, ValidateWeeklyAvailability(domain.WeeklyAvailability{
		"monday": {Available: true, Start: "17:00", End: "09:00"},
	}))

	assert.Error(t, ValidateWeeklyAvailability(domain.WeeklyAvailability{
		"monday": {Available: true, Start: "25:00", End: "26:00"},
	}))
}

func TestValidateWeeklySchedule(t *testing.T) {
	assert.NoError(t, ValidateWeeklySchedule(domain.WeeklySchedule{"monday": true, "sunday": false}))
	assert.Error(t, ValidateWeeklySchedule(domain.WeeklySchedule{"Monday": true}))
}
