package negotiation

import (
	"testing"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProposedShift() *domain.Shift {
	return &domain.Shift{
		ShiftType:    domain.ShiftTypeInterview,
		ProposedDate: time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC),
		Status:       domain.ShiftStatusProposed,
		ProposedBy:   domain.ProposedByRestaurant,
	}
}

func TestAcceptFromProposed(t *testing.T) {
	shift := newProposedShift()

	require.NoError(t, Accept(shift, "see you then"))
	assert.Equal(t, domain.ShiftStatusAccepted, shift.Status)
	assert.Equal(t, "see you then", shift.ResponseNotes)
}

func TestAcceptFromCounterProposed(t *testing.T) {
	shift := newProposedShift()
	shift.Status = domain.ShiftStatusCounterProposed

	require.NoError(t, Accept(shift, ""))
	assert.Equal(t, domain.ShiftStatusAccepted, shift.Status)
}

func TestAcceptTwiceIsAllowed(t *testing.T) {
	// accepted is not terminal: a second accept succeeds and its caller
	// emits a second notification.
	shift := newProposedShift()
	shift.Status = domain.ShiftStatusCounterProposed

	require.NoError(t, Accept(shift, ""))
	require.NoError(t, Accept(shift, ""))
	assert.Equal(t, domain.ShiftStatusAccepted, shift.Status)
}

func TestDeclineFromProposed(t *testing.T) {
	shift := newProposedShift()

	require.NoError(t, Decline(shift, "not available"))
	assert.Equal(t, domain.ShiftStatusDeclined, shift.Status)
	assert.Equal(t, "not available", shift.ResponseNotes)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(domain.ShiftStatusDeclined))
	assert.True(t, IsTerminal(domain.ShiftStatusCompleted))
	assert.True(t, IsTerminal(domain.ShiftStatusCancelled))

	assert.False(t, IsTerminal(domain.ShiftStatusProposed))
	assert.False(t, IsTerminal(domain.ShiftStatusCounterProposed))
	assert.False(t, IsTerminal(domain.ShiftStatusAccepted))
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	for _, status := range []domain.ShiftStatus{
		domain.ShiftStatusDeclined,
		domain.ShiftStatusCompleted,
		domain.ShiftStatusCancelled,
	} {
		shift := newProposedShift()
		shift.Status = status

		assert.ErrorIs(t, Accept(shift, ""), ErrInvalidTransition, "accept from %s", status)
		assert.ErrorIs(t, Decline(shift, ""), ErrInvalidTransition, "decline from %s", status)
		assert.ErrorIs(t, CounterPropose(shift, CounterProposal{Date: "2026-03-05", Time: "10:00"}), ErrInvalidTransition, "counter from %s", status)
		assert.Equal(t, status, shift.Status)
	}
}

func TestCounterProposeRequiresDateAndTime(t *testing.T) {
	shift := newProposedShift()

	err := CounterPropose(shift, CounterProposal{Date: "", Time: "10:00"})
	assert.ErrorIs(t, err, ErrMissingDateTime)
	assert.Equal(t, domain.ShiftStatusProposed, shift.Status)

	err = CounterPropose(shift, CounterProposal{Date: "2026-03-05", Time: ""})
	assert.ErrorIs(t, err, ErrMissingDateTime)
	assert.Equal(t, domain.ShiftStatusProposed, shift.Status)
	assert.Nil(t, shift.CounterProposalDate)
}

func TestCounterProposeCombinesDateAndTime(t *testing.T) {
	shift := newProposedShift()

	err := CounterPropose(shift, CounterProposal{
		Date:    "2026-03-05",
		Time:    "10:30",
		EndTime: "15:00",
		Notes:   "mornings work better",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ShiftStatusCounterProposed, shift.Status)
	require.NotNil(t, shift.CounterProposalDate)
	assert.Equal(t, time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC), *shift.CounterProposalDate)
	require.NotNil(t, shift.CounterProposalEnd)
	assert.Equal(t, time.Date(2026, 3, 5, 15, 0, 0, 0, time.UTC), *shift.CounterProposalEnd)
	assert.Equal(t, "mornings work better", shift.ResponseNotes)
}

func TestCounterProposeWithoutEndTime(t *testing.T) {
	shift := newProposedShift()

	require.NoError(t, CounterPropose(shift, CounterProposal{Date: "2026-03-05", Time: "10:30"}))
	assert.Nil(t, shift.CounterProposalEnd)
}

func TestCounterProposeOnlyFromProposed(t *testing.T) {
	shift := newProposedShift()
	shift.Status = domain.ShiftStatusCounterProposed

	// no counter-counter cycle
	err := CounterPropose(shift, CounterProposal{Date: "2026-03-05", Time: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNotificationMessage(t *testing.T) {
	when := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

	msg := NotificationMessage(domain.ShiftStatusAccepted, domain.ShiftTypeInterview, when)
	assert.Contains(t, msg, "interview")
	assert.Contains(t, msg, "accepted")

	msg = NotificationMessage(domain.ShiftStatusDeclined, domain.ShiftTypeWorkShift, when)
	assert.Contains(t, msg, "work shift")
	assert.Contains(t, msg, "declined")

	msg = NotificationMessage(domain.ShiftStatusCounterProposed, domain.ShiftTypeWorkShift, when)
	assert.Contains(t, msg, "new time")
}
