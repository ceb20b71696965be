package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (h *Handler) GetMyNotifications(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	notifications, err := h.repository.GetNotificationsByUserID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "notifications retrieved", notifications)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	notificationIDParam := chi.URLParam(r, "id")
	notificationID, err := strconv.ParseInt(notificationIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid notification ID")
		return
	}

	if err := h.repository.MarkNotificationRead(notificationID, myInfo.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "notification marked as read", nil)
}

func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if err := h.repository.MarkAllNotificationsRead(myInfo.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "all notifications marked as read", nil)
}
