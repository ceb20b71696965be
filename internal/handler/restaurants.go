package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (h *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if myInfo.AccountType != domain.AccountTypeRestaurant {
		h.errorResponse(w, r, "only restaurant accounts can create a restaurant")
		return
	}

	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		Address     string `json:"address" validate:"required"`
		Phone       string `json:"phone"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	restaurant := &domain.Restaurant{
		UserID:      myInfo.ID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
	}

	if err := h.repository.CreateRestaurant(restaurant); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "restaurants_user_id_key":
				h.errorResponse(w, r, "you already have a restaurant")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "restaurant created", restaurant)
}

func (h *Handler) GetAllRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.repository.GetAllRestaurants()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "restaurants retrieved", restaurants)
}

func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant := r.Context().Value(RestaurantCtx).(*domain.Restaurant)

	h.successResponse(w, r, "restaurant retrieved", restaurant)
}

func (h *Handler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	restaurant := r.Context().Value(RestaurantCtx).(*domain.Restaurant)

	if restaurant.UserID != myInfo.ID {
		h.errorResponse(w, r, "you can only update your own restaurant")
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Address     *string `json:"address"`
		Phone       *string `json:"phone"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}

	if err := h.repository.UpdateRestaurant(restaurant); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "restaurant updated", restaurant)
}
