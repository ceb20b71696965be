package handler

import (
	"net/http"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (h *Handler) CreateVerificationRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	restaurant := h.restaurantOf(w, r, myInfo)
	if restaurant == nil {
		return
	}

	if restaurant.VerificationStatus == domain.VerificationStatusVerified {
		h.errorResponse(w, r, "your restaurant is already verified")
		return
	}

	var req struct {
		BusinessLicense string `json:"businessLicense" validate:"required"`
		Notes           string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	request := &domain.VerificationRequest{
		RestaurantID:    restaurant.ID,
		BusinessLicense: req.BusinessLicense,
		Notes:           req.Notes,
	}

	if err := h.repository.CreateVerificationRequest(request); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	restaurant.VerificationStatus = domain.VerificationStatusPending
	if err := h.repository.UpdateRestaurant(restaurant); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "verification request submitted", request)
}

func (h *Handler) GetPendingVerificationRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.repository.GetPendingVerificationRequests()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "verification requests retrieved", requests)
}

func (h *Handler) ApproveVerificationRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	request := r.Context().Value(VerificationRequestCtx).(*domain.VerificationRequest)

	if request.Status != domain.VerificationStatusPending {
		h.errorResponse(w, r, "this request has already been reviewed")
		return
	}

	request.Status = domain.VerificationStatusVerified
	request.ReviewedBy = &myInfo.ID

	if err := h.repository.ReviewVerificationRequest(request); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	restaurant, err := h.repository.GetRestaurantByID(request.RestaurantID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if !h.notifyUser(w, r, restaurant.UserID, domain.NotificationTypeVerificationUpdate, "Your restaurant has been verified.") {
		return
	}

	h.successResponse(w, r, "verification request approved", request)
}

func (h *Handler) RejectVerificationRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	request := r.Context().Value(VerificationRequestCtx).(*domain.VerificationRequest)

	if request.Status != domain.VerificationStatusPending {
		h.errorResponse(w, r, "this request has already been reviewed")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Reason == "" {
		h.errorResponse(w, r, "Please provide a rejection reason")
		return
	}

	request.Status = domain.VerificationStatusRejected
	request.RejectionReason = req.Reason
	request.ReviewedBy = &myInfo.ID

	if err := h.repository.ReviewVerificationRequest(request); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	restaurant, err := h.repository.GetRestaurantByID(request.RestaurantID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if !h.notifyUser(w, r, restaurant.UserID, domain.NotificationTypeVerificationUpdate, "Your verification request was rejected: "+req.Reason) {
		return
	}

	h.successResponse(w, r, "verification request rejected", request)
}
