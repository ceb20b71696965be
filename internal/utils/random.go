package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery",
	"Quinn", "Dakota", "Reese", "Rowan", "Sam", "Charlie", "Drew", "Elliot",
	"Frankie", "Harper", "Kendall", "Logan",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Moore", "Jackson", "Martin", "Lee",
}

var restaurantAdjectives = []string{
	"Golden", "Rustic", "Urban", "Coastal", "Smoky", "Crimson", "Velvet",
	"Copper", "Wildflower", "Harbor",
}

var restaurantNouns = []string{
	"Fork", "Table", "Kitchen", "Bistro", "Grill", "Cantina", "Tavern",
	"Diner", "Oven", "Spoon",
}

var skills = []string{
	"line cook", "prep cook", "server", "host", "bartender", "barista",
	"dishwasher", "busser", "food runner", "expeditor",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

var digits = "0123456789"

func GenerateEmailFromFullName(fullName string, domainName string) string {
	local := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + domainName
}

func GenerateRandomRestaurantName() string {
	return "The " + restaurantAdjectives[rand.Intn(len(restaurantAdjectives))] + " " + restaurantNouns[rand.Intn(len(restaurantNouns))]
}

func GenerateRandomSkills() []string {
	n := rand.Intn(3) + 1
	chosen := make([]string, 0, n)
	for _, i := range rand.Perm(len(skills))[:n] {
		chosen = append(chosen, skills[i])
	}
	return chosen
}

func GenerateRandomUser(password string, emailDomainName string, accountType domain.AccountType) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        GenerateEmailFromFullName(fullName, emailDomainName),
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Role:         domain.RoleUser,
		AccountType:  accountType,
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

// GenerateRandomAvailability marks a random subset of days available with a
// plausible window.
func GenerateRandomAvailability() domain.WeeklyAvailability {
	availability := domain.WeeklyAvailability{}

	for _, day := range dayNames {
		if rand.Float64() < 0.4 {
			continue
		}

		startHour := rand.Intn(6) + 7 // 07:00 ~ 12:00
		endHour := startHour + rand.Intn(8) + 4

		if endHour > 23 {
			endHour = 23
		}

		availability[day] = domain.DayAvailability{
			Available: true,
			Start:     fmt.Sprintf("%02d:00", startHour),
			End:       fmt.Sprintf("%02d:00", endHour),
		}
	}

	return availability
}

// GenerateRandomSchedule needs coverage on a random non-empty subset of days.
func GenerateRandomSchedule() domain.WeeklySchedule {
	schedule := domain.WeeklySchedule{}

	n := rand.Intn(len(dayNames)) + 1
	for _, i := range rand.Perm(len(dayNames))[:n] {
		schedule[dayNames[i]] = true
	}

	return schedule
}

var jobTitles = []string{
	"Line Cook", "Server", "Host", "Bartender", "Prep Cook", "Dishwasher",
	"Barista", "Busser",
}

func GenerateRandomJobPosting(restaurantID int64) *domain.JobPosting {
	startDate := time.Now().AddDate(0, 0, rand.Intn(14)-7)
	endDate := startDate.AddDate(0, rand.Intn(3)+1, 0)

	return &domain.JobPosting{
		RestaurantID:       restaurantID,
		Title:              jobTitles[rand.Intn(len(jobTitles))],
		Description:        "Weekly coverage needed, see schedule for details.",
		HourlyRate:         float64(rand.Intn(15) + 16),
		Status:             domain.JobStatusActive,
		Schedule:           GenerateRandomSchedule(),
		StartDate:          &startDate,
		EndDate:            &endDate,
		PositionsAvailable: int32(rand.Intn(4) + 1),
	}
}
