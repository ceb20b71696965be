package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/config"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin})).Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleSuperAdmin})).Delete("/", h.DeleteUser)
			})
		})

		r.Route("/worker-profiles", func(r chi.Router) {
			r.With(h.myInfo).Post("/", h.CreateWorkerProfile)
			r.Get("/", h.GetAllWorkerProfiles)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.workerProfile)
				r.Get("/", h.GetWorkerProfile)
				r.With(h.myInfo).Patch("/", h.UpdateWorkerProfile)
				r.With(h.myInfo).Put("/availability", h.UpdateWorkerAvailability)
			})
		})

		r.Route("/restaurants", func(r chi.Router) {
			r.With(h.myInfo).Post("/", h.CreateRestaurant)
			r.Get("/", h.GetAllRestaurants)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.restaurant)
				r.Get("/", h.GetRestaurant)
				r.With(h.myInfo).Patch("/", h.UpdateRestaurant)
			})
		})

		r.Route("/job-postings", func(r chi.Router) {
			r.With(h.myInfo).Post("/", h.CreateJobPosting)
			r.Get("/", h.GetAllJobPostings)
			r.Get("/hiring-needs", h.GetHiringNeeds)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.jobPosting)
				r.Get("/", h.GetJobPosting)
				r.With(h.myInfo).Patch("/", h.UpdateJobPosting)
				r.With(h.myInfo).Delete("/", h.DeleteJobPosting)
				r.Get("/match/{profileID}", h.GetScheduleMatch)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.CreateShift)
			r.Get("/", h.GetMyShifts)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shift)
				r.Get("/", h.GetShift)
				r.Post("/accept", h.AcceptShift)
				r.Post("/decline", h.DeclineShift)
				r.Post("/counter", h.CounterProposeShift)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin})).Patch("/status", h.SetShiftStatus)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.CreateApplication)
			r.Get("/", h.GetMyApplications)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.application)
				r.Patch("/", h.UpdateApplicationStatus)
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.With(h.myInfo).Post("/", h.CreateReview)
			r.Get("/", h.GetReviews)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyNotifications)
			r.Post("/{id}/read", h.MarkNotificationRead)
			r.Post("/read-all", h.MarkAllNotificationsRead)
		})

		r.Route("/verification-requests", func(r chi.Router) {
			r.With(h.myInfo).Post("/", h.CreateVerificationRequest)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin})).Get("/", h.GetPendingVerificationRequests)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.verificationRequest)
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}))
				r.Use(h.myInfo)
				r.Post("/approve", h.ApproveVerificationRequest)
				r.Post("/reject", h.RejectVerificationRequest)
			})
		})

		r.Route("/conversations", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.CreateConversation)
			r.Get("/", h.GetMyConversations)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.conversation)
				r.Get("/messages", h.GetConversationMessages)
				r.Post("/messages", h.SendDirectMessage)
			})
		})
	})
}
