package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/utils"
)

func (h *Handler) CreateWorkerProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if myInfo.AccountType != domain.AccountTypeWorker {
		h.errorResponse(w, r, "only worker accounts can create a worker profile")
		return
	}

	var req struct {
		Headline     string                    `json:"headline" validate:"required"`
		Bio          string                    `json:"bio"`
		HourlyRate   float64                   `json:"hourlyRate" validate:"gte=0"`
		Skills       []string                  `json:"skills"`
		Availability domain.WeeklyAvailability `json:"availability"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateWeeklyAvailability(req.Availability); err != nil {
		h.badRequest(w, r, err)
		return
	}

	profile := &domain.WorkerProfile{
		UserID:       myInfo.ID,
		Headline:     req.Headline,
		Bio:          req.Bio,
		HourlyRate:   req.HourlyRate,
		Skills:       req.Skills,
		Availability: req.Availability,
	}

	if err := h.repository.CreateWorkerProfile(profile); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "worker_profiles_user_id_key":
				h.errorResponse(w, r, "you already have a worker profile")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "worker profile created", profile)
}

func (h *Handler) GetAllWorkerProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.repository.GetAllWorkerProfiles()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "worker profiles retrieved", profiles)
}

func (h *Handler) GetWorkerProfile(w http.ResponseWriter, r *http.Request) {
	profile := r.Context().Value(WorkerProfileCtx).(*domain.WorkerProfile)

	h.successResponse(w, r, "worker profile retrieved", profile)
}

func (h *Handler) UpdateWorkerProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	profile := r.Context().Value(WorkerProfileCtx).(*domain.WorkerProfile)

	if profile.UserID != myInfo.ID {
		h.errorResponse(w, r, "you can only update your own profile")
		return
	}

	var req struct {
		Headline   *string   `json:"headline"`
		Bio        *string   `json:"bio"`
		HourlyRate *float64  `json:"hourlyRate" validate:"omitempty,gte=0"`
		Skills     *[]string `json:"skills"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = *req.HourlyRate
	}
	if req.Skills != nil {
		profile.Skills = *req.Skills
	}

	if err := h.repository.UpdateWorkerProfile(profile); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "worker profile updated", profile)
}

func (h *Handler) UpdateWorkerAvailability(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	profile := r.Context().Value(WorkerProfileCtx).(*domain.WorkerProfile)

	if profile.UserID != myInfo.ID {
		h.errorResponse(w, r, "you can only update your own availability")
		return
	}

	var req struct {
		Availability domain.WeeklyAvailability `json:"availability" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateWeeklyAvailability(req.Availability); err != nil {
		h.badRequest(w, r, err)
		return
	}

	profile.Availability = req.Availability

	if err := h.repository.UpdateWorkerProfile(profile); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability updated", profile)
}
