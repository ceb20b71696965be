// Package negotiation implements the shift proposal state machine: a
// proposal is answered with accept, decline, or a single counter-proposal,
// and a counter-proposal is in turn accepted or declined by the original
// proposer. Declined, completed, and cancelled are terminal.
package negotiation

import (
	"errors"
	"fmt"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

var (
	ErrInvalidTransition = errors.New("invalid shift status transition")
	ErrMissingDateTime   = errors.New("please select date and time")
)

// IsTerminal reports whether the status admits no further transitions.
func IsTerminal(status domain.ShiftStatus) bool {
	switch status {
	case domain.ShiftStatusDeclined, domain.ShiftStatusCompleted, domain.ShiftStatusCancelled:
		return true
	default:
		return false
	}
}

// CanAccept reports whether accept may be applied to the current status.
// Accepted is not terminal, so accepting an already accepted shift goes
// through again and emits another notification.
func CanAccept(status domain.ShiftStatus) bool {
	switch status {
	case domain.ShiftStatusProposed, domain.ShiftStatusCounterProposed, domain.ShiftStatusAccepted:
		return true
	default:
		return false
	}
}

func CanDecline(status domain.ShiftStatus) bool {
	switch status {
	case domain.ShiftStatusProposed, domain.ShiftStatusCounterProposed:
		return true
	default:
		return false
	}
}

func CanCounterPropose(status domain.ShiftStatus) bool {
	return status == domain.ShiftStatusProposed
}

// Accept applies the accept transition in place.
func Accept(shift *domain.Shift, notes string) error {
	if !CanAccept(shift.Status) {
		return ErrInvalidTransition
	}

	shift.Status = domain.ShiftStatusAccepted
	if notes != "" {
		shift.ResponseNotes = notes
	}

	return nil
}

// Decline applies the decline transition in place.
func Decline(shift *domain.Shift, notes string) error {
	if !CanDecline(shift.Status) {
		return ErrInvalidTransition
	}

	shift.Status = domain.ShiftStatusDeclined
	if notes != "" {
		shift.ResponseNotes = notes
	}

	return nil
}

// CounterProposal carries the recipient's alternative date and time. Date is
// "2006-01-02", Time and EndTime are "15:04"; EndTime and Notes are optional.
type CounterProposal struct {
	Date    string
	Time    string
	EndTime string
	Notes   string
}

// Resolve combines the date and time-of-day fields into timestamps.
func (cp CounterProposal) Resolve() (start time.Time, end *time.Time, err error) {
	if cp.Date == "" || cp.Time == "" {
		return time.Time{}, nil, ErrMissingDateTime
	}

	start, err = time.Parse("2006-01-02 15:04", cp.Date+" "+cp.Time)
	if err != nil {
		return time.Time{}, nil, ErrMissingDateTime
	}

	if cp.EndTime != "" {
		e, err := time.Parse("2006-01-02 15:04", cp.Date+" "+cp.EndTime)
		if err != nil {
			return time.Time{}, nil, ErrMissingDateTime
		}
		end = &e
	}

	return start, end, nil
}

// CounterPropose applies the counter-proposal transition in place. The shift
// is left untouched when validation fails, so the caller can surface the
// error and retry without reloading the record.
func CounterPropose(shift *domain.Shift, cp CounterProposal) error {
	if !CanCounterPropose(shift.Status) {
		return ErrInvalidTransition
	}

	start, end, err := cp.Resolve()
	if err != nil {
		return err
	}

	shift.Status = domain.ShiftStatusCounterProposed
	shift.CounterProposalDate = &start
	shift.CounterProposalEnd = end
	shift.ResponseNotes = cp.Notes

	return nil
}

// NotificationMessage builds the counterpart-facing message for a status
// change, keyed by the new status and the shift type.
func NotificationMessage(status domain.ShiftStatus, shiftType domain.ShiftType, when time.Time) string {
	kind := "work shift"
	if shiftType == domain.ShiftTypeInterview {
		kind = "interview"
	}

	ts := when.Format("Mon, Jan 2 at 3:04 PM")

	switch status {
	case domain.ShiftStatusAccepted:
		return fmt.Sprintf("Your %s proposal for %s was accepted.", kind, ts)
	case domain.ShiftStatusDeclined:
		return fmt.Sprintf("Your %s proposal for %s was declined.", kind, ts)
	case domain.ShiftStatusCounterProposed:
		return fmt.Sprintf("A new time was proposed for your %s: %s.", kind, ts)
	case domain.ShiftStatusProposed:
		return fmt.Sprintf("You have a new %s proposal for %s.", kind, ts)
	default:
		return fmt.Sprintf("Your %s for %s was updated.", kind, ts)
	}
}
