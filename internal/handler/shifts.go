package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/negotiation"
)

// workerProfileOf loads the worker profile owned by the current user. It
// writes the error response itself and returns nil when there is none.
func (h *Handler) workerProfileOf(w http.ResponseWriter, r *http.Request, user *domain.User) *domain.WorkerProfile {
	profile, err := h.repository.GetWorkerProfileByUserID(user.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "you do not have a worker profile yet")
		default:
			h.internalServerError(w, r, err)
		}
		return nil
	}
	return profile
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	restaurant := h.restaurantOf(w, r, myInfo)
	if restaurant == nil {
		return
	}

	var req struct {
		WorkerProfileID int64            `json:"workerProfileID" validate:"required"`
		ShiftType       domain.ShiftType `json:"shiftType" validate:"required,oneof=interview work_shift"`
		ProposedDate    time.Time        `json:"proposedDate" validate:"required"`
		EndTime         *time.Time       `json:"endTime"`
		Location        string           `json:"location"`
		Notes           string           `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	profile, err := h.repository.GetWorkerProfileByID(req.WorkerProfileID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "worker profile not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	shift := &domain.Shift{
		RestaurantID:    restaurant.ID,
		WorkerProfileID: profile.ID,
		ShiftType:       req.ShiftType,
		ProposedDate:    req.ProposedDate,
		EndTime:         req.EndTime,
		Location:        req.Location,
		Notes:           req.Notes,
		ProposedBy:      domain.ProposedByRestaurant,
	}

	if err := h.repository.CreateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	message := negotiation.NotificationMessage(domain.ShiftStatusProposed, shift.ShiftType, shift.ProposedDate)
	if !h.notifyUser(w, r, profile.UserID, domain.NotificationTypeShiftResponse, message) {
		return
	}

	h.successResponse(w, r, "shift proposed", shift)
}

func (h *Handler) GetMyShifts(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var shifts []*domain.Shift
	switch myInfo.AccountType {
	case domain.AccountTypeRestaurant:
		restaurant := h.restaurantOf(w, r, myInfo)
		if restaurant == nil {
			return
		}
		var err error
		shifts, err = h.repository.GetShiftsByRestaurantID(restaurant.ID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	default:
		profile := h.workerProfileOf(w, r, myInfo)
		if profile == nil {
			return
		}
		var err error
		shifts, err = h.repository.GetShiftsByWorkerProfileID(profile.ID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "shifts retrieved", shifts)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	h.successResponse(w, r, "shift retrieved", shift)
}

// counterpartUserID resolves which user should be notified about a response
// made by the current user: the restaurant owner when a worker responds, the
// worker when the restaurant responds.
func (h *Handler) counterpartUserID(w http.ResponseWriter, r *http.Request, shift *domain.Shift, responder *domain.User) (int64, bool) {
	if responder.AccountType == domain.AccountTypeWorker {
		restaurant, err := h.repository.GetRestaurantByID(shift.RestaurantID)
		if err != nil {
			h.internalServerError(w, r, err)
			return 0, false
		}
		return restaurant.UserID, true
	}

	profile, err := h.repository.GetWorkerProfileByID(shift.WorkerProfileID)
	if err != nil {
		h.internalServerError(w, r, err)
		return 0, false
	}
	return profile.UserID, true
}

// isParticipant reports whether the current user is one side of the shift.
func (h *Handler) isParticipant(shift *domain.Shift, user *domain.User) bool {
	if user.AccountType == domain.AccountTypeWorker {
		profile, err := h.repository.GetWorkerProfileByUserID(user.ID)
		return err == nil && profile.ID == shift.WorkerProfileID
	}

	restaurant, err := h.repository.GetRestaurantByUserID(user.ID)
	return err == nil && restaurant.ID == shift.RestaurantID
}

func (h *Handler) AcceptShift(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if !h.isParticipant(shift, myInfo) {
		h.errorResponse(w, r, "you are not part of this shift")
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	// an empty body is fine for accept
	if err := h.readJSON(r, &req); err != nil {
		req.Notes = ""
	}

	if err := negotiation.Accept(shift, req.Notes); err != nil {
		h.errorResponse(w, r, "this shift can no longer be accepted")
		return
	}

	if err := h.repository.UpdateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	counterpartID, ok := h.counterpartUserID(w, r, shift, myInfo)
	if !ok {
		return
	}

	when := shift.ProposedDate
	if shift.CounterProposalDate != nil {
		when = *shift.CounterProposalDate
	}
	message := negotiation.NotificationMessage(domain.ShiftStatusAccepted, shift.ShiftType, when)
	if !h.notifyUser(w, r, counterpartID, domain.NotificationTypeShiftResponse, message) {
		return
	}

	h.successResponse(w, r, "shift accepted", shift)
}

func (h *Handler) DeclineShift(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if !h.isParticipant(shift, myInfo) {
		h.errorResponse(w, r, "you are not part of this shift")
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := h.readJSON(r, &req); err != nil {
		req.Notes = ""
	}

	if err := negotiation.Decline(shift, req.Notes); err != nil {
		h.errorResponse(w, r, "this shift can no longer be declined")
		return
	}

	if err := h.repository.UpdateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	counterpartID, ok := h.counterpartUserID(w, r, shift, myInfo)
	if !ok {
		return
	}

	message := negotiation.NotificationMessage(domain.ShiftStatusDeclined, shift.ShiftType, shift.ProposedDate)
	if !h.notifyUser(w, r, counterpartID, domain.NotificationTypeShiftResponse, message) {
		return
	}

	h.successResponse(w, r, "shift declined", shift)
}

func (h *Handler) CounterProposeShift(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if !h.isParticipant(shift, myInfo) {
		h.errorResponse(w, r, "you are not part of this shift")
		return
	}

	var req struct {
		Date    string `json:"date"`
		Time    string `json:"time"`
		EndTime string `json:"endTime"`
		Notes   string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	err := negotiation.CounterPropose(shift, negotiation.CounterProposal{
		Date:    req.Date,
		Time:    req.Time,
		EndTime: req.EndTime,
		Notes:   req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, negotiation.ErrMissingDateTime):
			h.errorResponse(w, r, "Please select date and time")
		default:
			h.errorResponse(w, r, "this shift can no longer be counter-proposed")
		}
		return
	}

	if err := h.repository.UpdateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	counterpartID, ok := h.counterpartUserID(w, r, shift, myInfo)
	if !ok {
		return
	}

	message := negotiation.NotificationMessage(domain.ShiftStatusCounterProposed, shift.ShiftType, *shift.CounterProposalDate)
	if !h.notifyUser(w, r, counterpartID, domain.NotificationTypeShiftResponse, message) {
		return
	}

	h.successResponse(w, r, "counter-proposal sent", shift)
}

// SetShiftStatus lets an admin mark a shift completed or cancelled after the
// fact. These states are terminal and bypass the negotiation flow.
func (h *Handler) SetShiftStatus(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if negotiation.IsTerminal(shift.Status) {
		h.errorResponse(w, r, "this shift has already been finalized")
		return
	}

	var req struct {
		Status domain.ShiftStatus `json:"status" validate:"required,oneof=completed cancelled"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift.Status = req.Status

	if err := h.repository.UpdateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift status updated", shift)
}
