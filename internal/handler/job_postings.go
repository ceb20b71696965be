package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/matching"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/utils"
)

// restaurantOf loads the restaurant owned by the current user. It writes the
// error response itself and returns nil when there is none.
func (h *Handler) restaurantOf(w http.ResponseWriter, r *http.Request, user *domain.User) *domain.Restaurant {
	restaurant, err := h.repository.GetRestaurantByUserID(user.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "you do not have a restaurant yet")
		default:
			h.internalServerError(w, r, err)
		}
		return nil
	}
	return restaurant
}

func (h *Handler) CreateJobPosting(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	restaurant := h.restaurantOf(w, r, myInfo)
	if restaurant == nil {
		return
	}

	var req struct {
		Title              string                `json:"title" validate:"required"`
		Description        string                `json:"description"`
		HourlyRate         float64               `json:"hourlyRate" validate:"gte=0"`
		Schedule           domain.WeeklySchedule `json:"schedule" validate:"required"`
		StartDate          *string               `json:"startDate"`
		EndDate            *string               `json:"endDate"`
		PositionsAvailable int32                 `json:"positionsAvailable" validate:"omitempty,gte=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateWeeklySchedule(req.Schedule); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		h.errorResponse(w, r, "invalid start date")
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		h.errorResponse(w, r, "invalid end date")
		return
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		h.errorResponse(w, r, "end date cannot be before start date")
		return
	}

	positions := req.PositionsAvailable
	if positions == 0 {
		positions = 1
	}

	posting := &domain.JobPosting{
		RestaurantID:       restaurant.ID,
		Title:              req.Title,
		Description:        req.Description,
		HourlyRate:         req.HourlyRate,
		Status:             domain.JobStatusActive,
		Schedule:           req.Schedule,
		StartDate:          startDate,
		EndDate:            endDate,
		PositionsAvailable: positions,
	}

	if err := h.repository.CreateJobPosting(posting); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "job posting created", posting)
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *Handler) GetAllJobPostings(w http.ResponseWriter, r *http.Request) {
	if restaurantIDParam := r.URL.Query().Get("restaurant_id"); restaurantIDParam != "" {
		restaurantID, err := strconv.ParseInt(restaurantIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "invalid restaurant ID")
			return
		}

		postings, err := h.repository.GetJobPostingsByRestaurantID(restaurantID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		h.successResponse(w, r, "job postings retrieved", postings)
		return
	}

	postings, err := h.repository.GetAllJobPostings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "job postings retrieved", postings)
}

func (h *Handler) GetJobPosting(w http.ResponseWriter, r *http.Request) {
	posting := r.Context().Value(JobPostingCtx).(*domain.JobPosting)

	h.successResponse(w, r, "job posting retrieved", posting)
}

func (h *Handler) UpdateJobPosting(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	posting := r.Context().Value(JobPostingCtx).(*domain.JobPosting)

	restaurant := h.restaurantOf(w, r, myInfo)
	if restaurant == nil {
		return
	}
	if posting.RestaurantID != restaurant.ID {
		h.errorResponse(w, r, "you can only update your own job postings")
		return
	}

	var req struct {
		Title              *string                `json:"title"`
		Description        *string                `json:"description"`
		HourlyRate         *float64               `json:"hourlyRate" validate:"omitempty,gte=0"`
		Status             *domain.JobStatus      `json:"status" validate:"omitempty,oneof=active inactive filled"`
		Schedule           *domain.WeeklySchedule `json:"schedule"`
		PositionsAvailable *int32                 `json:"positionsAvailable" validate:"omitempty,gte=1"`
		PositionsFilled    *int32                 `json:"positionsFilled" validate:"omitempty,gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.HourlyRate != nil {
		posting.HourlyRate = *req.HourlyRate
	}
	if req.Status != nil {
		posting.Status = *req.Status
	}
	if req.Schedule != nil {
		if err := utils.ValidateWeeklySchedule(*req.Schedule); err != nil {
			h.badRequest(w, r, err)
			return
		}
		posting.Schedule = *req.Schedule
	}
	if req.PositionsAvailable != nil {
		posting.PositionsAvailable = *req.PositionsAvailable
	}
	if req.PositionsFilled != nil {
		posting.PositionsFilled = *req.PositionsFilled
	}

	if err := h.repository.UpdateJobPosting(posting); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "job posting updated", posting)
}

func (h *Handler) DeleteJobPosting(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	posting := r.Context().Value(JobPostingCtx).(*domain.JobPosting)

	restaurant := h.restaurantOf(w, r, myInfo)
	if restaurant == nil {
		return
	}
	if posting.RestaurantID != restaurant.ID {
		h.errorResponse(w, r, "you can only delete your own job postings")
		return
	}

	if err := h.repository.DeleteJobPosting(posting.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "job posting deleted", nil)
}

// GetScheduleMatch compares a worker's weekly availability against the
// posting's weekly schedule and returns the per-day classification and the
// aggregate match percentage.
func (h *Handler) GetScheduleMatch(w http.ResponseWriter, r *http.Request) {
	posting := r.Context().Value(JobPostingCtx).(*domain.JobPosting)

	profileIDParam := chi.URLParam(r, "profileID")
	profileID, err := strconv.ParseInt(profileIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid worker profile ID")
		return
	}

	profile, err := h.repository.GetWorkerProfileByID(profileID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "worker profile not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	result := matching.Match(profile.Availability, posting.Schedule)

	h.successResponse(w, r, "schedule match computed", result)
}

// GetHiringNeeds reports whether a calendar date counts as hiring and how
// many open positions it has, optionally limited to a single restaurant.
func (h *Handler) GetHiringNeeds(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		h.errorResponse(w, r, "invalid date, expected YYYY-MM-DD")
		return
	}

	var postings []*domain.JobPosting
	if restaurantIDParam := r.URL.Query().Get("restaurant_id"); restaurantIDParam != "" {
		restaurantID, err := strconv.ParseInt(restaurantIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "invalid restaurant ID")
			return
		}
		postings, err = h.repository.GetJobPostingsByRestaurantID(restaurantID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	} else {
		postings, err = h.repository.GetAllJobPostings()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	openPositions := matching.OpenPositionsOn(date, postings)

	h.successResponse(w, r, "hiring needs computed", map[string]any{
		"date":          date.Format("2006-01-02"),
		"hiring":        openPositions > 0,
		"openPositions": openPositions,
	})
}
