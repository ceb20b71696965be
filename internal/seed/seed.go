package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/config"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/repository"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/utils"
)

// SeedWorkers inserts n worker accounts, each with a profile.
func SeedWorkers(r *repository.Repository, cfg *config.Config, n int) {
	cnt := 0
	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain, domain.AccountTypeWorker)
		if err != nil {
			slog.Error("failed to generate random worker", slog.String("error", err.Error()))
			continue
		}

		if err := r.CreateUser(user); err != nil {
			slog.Error("failed to insert worker", slog.String("error", err.Error()))
			continue
		}

		profile := &domain.WorkerProfile{
			UserID:       user.ID,
			Headline:     "Experienced hospitality worker",
			Bio:          fmt.Sprintf("Hi, I'm %s. Available for hourly restaurant work.", user.FullName),
			HourlyRate:   float64(rand.Intn(15) + 16),
			Skills:       utils.GenerateRandomSkills(),
			Availability: utils.GenerateRandomAvailability(),
		}

		if err := r.CreateWorkerProfile(profile); err != nil {
			slog.Error("failed to insert worker profile", slog.String("error", err.Error()))
			continue
		}

		cnt++
	}

	slog.Info("inserted workers", slog.Int("count", cnt))
}

// SeedRestaurants inserts n restaurant accounts, each with a couple of active
// job postings.
func SeedRestaurants(r *repository.Repository, cfg *config.Config, n int) {
	cnt := 0
	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain, domain.AccountTypeRestaurant)
		if err != nil {
			slog.Error("failed to generate random restaurant owner", slog.String("error", err.Error()))
			continue
		}

		if err := r.CreateUser(user); err != nil {
			slog.Error("failed to insert restaurant owner", slog.String("error", err.Error()))
			continue
		}

		restaurant := &domain.Restaurant{
			UserID:             user.ID,
			Name:               utils.GenerateRandomRestaurantName(),
			Description:        "Neighborhood spot looking for reliable hourly staff.",
			Address:            fmt.Sprintf("%d Main Street", rand.Intn(900)+100),
			Phone:              fmt.Sprintf("555-%04d", rand.Intn(10000)),
			VerificationStatus: domain.VerificationStatusVerified,
		}

		if err := r.CreateRestaurant(restaurant); err != nil {
			slog.Error("failed to insert restaurant", slog.String("error", err.Error()))
			continue
		}

		for j := 0; j < rand.Intn(2)+1; j++ {
			posting := utils.GenerateRandomJobPosting(restaurant.ID)
			if err := r.CreateJobPosting(posting); err != nil {
				slog.Error("failed to insert job posting", slog.String("error", err.Error()))
			}
		}

		cnt++
	}

	slog.Info("inserted restaurants", slog.Int("count", cnt))
}

// SeedApplications makes every worker profile apply to one random posting.
func SeedApplications(r *repository.Repository) {
	postings, err := r.GetAllJobPostings()
	if err != nil {
		slog.Error("failed to load job postings", slog.String("error", err.Error()))
		return
	}
	if len(postings) == 0 {
		slog.Error("no job postings to apply to")
		return
	}

	profiles, err := r.GetAllWorkerProfiles()
	if err != nil {
		slog.Error("failed to load worker profiles", slog.String("error", err.Error()))
		return
	}

	cnt := 0
	for _, profile := range profiles {
		posting := postings[rand.Intn(len(postings))]

		application := &domain.Application{
			JobPostingID:    posting.ID,
			WorkerProfileID: profile.ID,
			CoverNote:       "I'd love to help cover these shifts.",
		}

		if err := r.CreateApplication(application); err != nil {
			slog.Error("failed to insert application", slog.String("error", err.Error()))
			continue
		}

		cnt++
	}

	slog.Info("inserted applications", slog.Int("count", cnt))
}

// SeedShifts proposes an interview shift from every restaurant to a random
// worker profile.
func SeedShifts(r *repository.Repository) {
	restaurants, err := r.GetAllRestaurants()
	if err != nil {
		slog.Error("failed to load restaurants", slog.String("error", err.Error()))
		return
	}

	profiles, err := r.GetAllWorkerProfiles()
	if err != nil {
		slog.Error("failed to load worker profiles", slog.String("error", err.Error()))
		return
	}
	if len(profiles) == 0 {
		slog.Error("no worker profiles to propose shifts to")
		return
	}

	cnt := 0
	for _, restaurant := range restaurants {
		profile := profiles[rand.Intn(len(profiles))]

		proposedDate := time.Now().AddDate(0, 0, rand.Intn(7)+1).Truncate(time.Hour)
		endTime := proposedDate.Add(time.Hour)

		shift := &domain.Shift{
			RestaurantID:    restaurant.ID,
			WorkerProfileID: profile.ID,
			ShiftType:       domain.ShiftTypeInterview,
			ProposedDate:    proposedDate,
			EndTime:         &endTime,
			Location:        restaurant.Address,
			Notes:           "Quick chat before we put you on the schedule.",
			Status:          domain.ShiftStatusProposed,
			ProposedBy:      domain.ProposedByRestaurant,
		}

		if err := r.CreateShift(shift); err != nil {
			slog.Error("failed to insert shift", slog.String("error", err.Error()))
			continue
		}

		cnt++
	}

	slog.Info("inserted shifts", slog.Int("count", cnt))
}
