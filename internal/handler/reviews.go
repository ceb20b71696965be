package handler

import (
	"net/http"
	"strconv"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		RestaurantID    int64  `json:"restaurantID" validate:"required"`
		WorkerProfileID int64  `json:"workerProfileID" validate:"required"`
		Rating          int32  `json:"rating" validate:"required,gte=1,lte=5"`
		Comment         string `json:"comment"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	review := &domain.Review{
		RestaurantID:    req.RestaurantID,
		WorkerProfileID: req.WorkerProfileID,
		AuthorUserID:    myInfo.ID,
		Rating:          req.Rating,
		Comment:         req.Comment,
	}

	if err := h.repository.CreateReview(review); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "review created", review)
}

func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	if profileIDParam := r.URL.Query().Get("worker_profile_id"); profileIDParam != "" {
		profileID, err := strconv.ParseInt(profileIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "invalid worker profile ID")
			return
		}

		reviews, err := h.repository.GetReviewsByWorkerProfileID(profileID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		h.successResponse(w, r, "reviews retrieved", reviews)
		return
	}

	if restaurantIDParam := r.URL.Query().Get("restaurant_id"); restaurantIDParam != "" {
		restaurantID, err := strconv.ParseInt(restaurantIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "invalid restaurant ID")
			return
		}

		reviews, err := h.repository.GetReviewsByRestaurantID(restaurantID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		h.successResponse(w, r, "reviews retrieved", reviews)
		return
	}

	h.errorResponse(w, r, "worker_profile_id or restaurant_id is required")
}
