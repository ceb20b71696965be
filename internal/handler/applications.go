package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
)

func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	profile := h.workerProfileOf(w, r, myInfo)
	if profile == nil {
		return
	}

	var req struct {
		JobPostingID int64  `json:"jobPostingID" validate:"required"`
		CoverNote    string `json:"coverNote"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	posting, err := h.repository.GetJobPostingByID(req.JobPostingID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "job posting not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if posting.Status != domain.JobStatusActive {
		h.errorResponse(w, r, "this job posting is no longer accepting applications")
		return
	}

	application := &domain.Application{
		JobPostingID:    posting.ID,
		WorkerProfileID: profile.ID,
		CoverNote:       req.CoverNote,
	}

	if err := h.repository.CreateApplication(application); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "applications_job_posting_id_worker_profile_id_key":
				h.errorResponse(w, r, "you have already applied to this job")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "application submitted", application)
}

func (h *Handler) GetMyApplications(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if myInfo.AccountType == domain.AccountTypeWorker {
		profile := h.workerProfileOf(w, r, myInfo)
		if profile == nil {
			return
		}

		applications, err := h.repository.GetApplicationsByWorkerProfileID(profile.ID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		h.successResponse(w, r, "applications retrieved", applications)
		return
	}

	// restaurants list applications per posting
	postingIDParam := r.URL.Query().Get("job_posting_id")
	if postingIDParam == "" {
		h.errorResponse(w, r, "job_posting_id is required")
		return
	}

	postingID, err := strconv.ParseInt(postingIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid job posting ID")
		return
	}

	applications, err := h.repository.GetApplicationsByJobPostingID(postingID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications retrieved", applications)
}

func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	application := r.Context().Value(ApplicationCtx).(*domain.Application)

	var req struct {
		Status domain.ApplicationStatus `json:"status" validate:"required,oneof=pending accepted rejected withdrawn"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// workers may only withdraw their own application; the posting's
	// restaurant decides everything else
	if myInfo.AccountType == domain.AccountTypeWorker {
		profile := h.workerProfileOf(w, r, myInfo)
		if profile == nil {
			return
		}
		if application.WorkerProfileID != profile.ID || req.Status != domain.ApplicationStatusWithdrawn {
			h.errorResponse(w, r, "you can only withdraw your own application")
			return
		}
	} else {
		restaurant := h.restaurantOf(w, r, myInfo)
		if restaurant == nil {
			return
		}
		posting, err := h.repository.GetJobPostingByID(application.JobPostingID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if posting.RestaurantID != restaurant.ID {
			h.errorResponse(w, r, "you can only manage applications to your own postings")
			return
		}
	}

	application.Status = req.Status

	if err := h.repository.UpdateApplicationStatus(application); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// tell the worker when the restaurant decided
	if myInfo.AccountType == domain.AccountTypeRestaurant &&
		(req.Status == domain.ApplicationStatusAccepted || req.Status == domain.ApplicationStatusRejected) {
		profile, err := h.repository.GetWorkerProfileByID(application.WorkerProfileID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		message := fmt.Sprintf("Your application was %s.", req.Status)
		if !h.notifyUser(w, r, profile.UserID, domain.NotificationTypeApplicationUpdate, message) {
			return
		}
	}

	h.successResponse(w, r, "application updated", application)
}
