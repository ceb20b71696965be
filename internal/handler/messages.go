package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		RestaurantID    int64 `json:"restaurantID"`
		WorkerProfileID int64 `json:"workerProfileID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// fill in the caller's own side
	if myInfo.AccountType == domain.AccountTypeRestaurant {
		restaurant := h.restaurantOf(w, r, myInfo)
		if restaurant == nil {
			return
		}
		req.RestaurantID = restaurant.ID
	} else {
		profile := h.workerProfileOf(w, r, myInfo)
		if profile == nil {
			return
		}
		req.WorkerProfileID = profile.ID
	}

	if req.RestaurantID == 0 || req.WorkerProfileID == 0 {
		h.errorResponse(w, r, "both conversation participants are required")
		return
	}

	// reuse the existing conversation between this pair if there is one
	existing, err := h.repository.GetConversationByParticipants(req.RestaurantID, req.WorkerProfileID)
	if err == nil {
		h.successResponse(w, r, "conversation retrieved", existing)
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		h.internalServerError(w, r, err)
		return
	}

	conversation := &domain.Conversation{
		RestaurantID:    req.RestaurantID,
		WorkerProfileID: req.WorkerProfileID,
	}

	if err := h.repository.CreateConversation(conversation); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "conversations_restaurant_id_worker_profile_id_key":
				h.errorResponse(w, r, "conversation already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "conversation created", conversation)
}

func (h *Handler) GetMyConversations(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var conversations []*domain.Conversation
	if myInfo.AccountType == domain.AccountTypeRestaurant {
		restaurant := h.restaurantOf(w, r, myInfo)
		if restaurant == nil {
			return
		}
		var err error
		conversations, err = h.repository.GetConversationsByRestaurantID(restaurant.ID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	} else {
		profile := h.workerProfileOf(w, r, myInfo)
		if profile == nil {
			return
		}
		var err error
		conversations, err = h.repository.GetConversationsByWorkerProfileID(profile.ID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "conversations retrieved", conversations)
}

// isConversationParticipant reports whether the user is one side of the
// conversation.
func (h *Handler) isConversationParticipant(conversation *domain.Conversation, user *domain.User) bool {
	if user.AccountType == domain.AccountTypeRestaurant {
		restaurant, err := h.repository.GetRestaurantByUserID(user.ID)
		return err == nil && restaurant.ID == conversation.RestaurantID
	}

	profile, err := h.repository.GetWorkerProfileByUserID(user.ID)
	return err == nil && profile.ID == conversation.WorkerProfileID
}

// conversationCounterpartUserID resolves the user on the other side of the
// conversation. It writes the error response itself and returns false when
// the lookup fails.
func (h *Handler) conversationCounterpartUserID(w http.ResponseWriter, r *http.Request, conversation *domain.Conversation, sender *domain.User) (int64, bool) {
	if sender.AccountType == domain.AccountTypeWorker {
		restaurant, err := h.repository.GetRestaurantByID(conversation.RestaurantID)
		if err != nil {
			h.internalServerError(w, r, err)
			return 0, false
		}
		return restaurant.UserID, true
	}

	profile, err := h.repository.GetWorkerProfileByID(conversation.WorkerProfileID)
	if err != nil {
		h.internalServerError(w, r, err)
		return 0, false
	}
	return profile.UserID, true
}

// GetConversationMessages supports incremental polling via the after query
// parameter: clients pass the highest message ID they have seen.
func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	conversation := r.Context().Value(ConversationCtx).(*domain.Conversation)

	if !h.isConversationParticipant(conversation, myInfo) {
		h.errorResponse(w, r, "you are not part of this conversation")
		return
	}

	var afterID int64
	if afterParam := r.URL.Query().Get("after"); afterParam != "" {
		var err error
		afterID, err = strconv.ParseInt(afterParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "invalid after parameter")
			return
		}
	}

	messages, err := h.repository.GetDirectMessages(conversation.ID, afterID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "messages retrieved", messages)
}

func (h *Handler) SendDirectMessage(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	conversation := r.Context().Value(ConversationCtx).(*domain.Conversation)

	if !h.isConversationParticipant(conversation, myInfo) {
		h.errorResponse(w, r, "you are not part of this conversation")
		return
	}

	var req struct {
		Body string `json:"body" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	message := &domain.DirectMessage{
		ConversationID: conversation.ID,
		SenderUserID:   myInfo.ID,
		Body:           req.Body,
	}

	if err := h.repository.CreateDirectMessage(message); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	recipientID, ok := h.conversationCounterpartUserID(w, r, conversation, myInfo)
	if !ok {
		return
	}

	// in-app only; per-message emails would be noise
	notification := &domain.Notification{
		UserID:  recipientID,
		Type:    domain.NotificationTypeNewMessage,
		Message: "You have a new message from " + myInfo.FullName + ".",
	}
	if err := h.repository.CreateNotification(notification); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "message sent", message)
}
