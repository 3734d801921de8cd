package services

import (
	"errors"
	"time"

	"github.com/Khushal2406/stayfit/models"
	"gorm.io/gorm"
)

// NutritionService glues the pieces together: meals in a window feed the
// aggregator, the user's profile feeds the target calculator, and the
// composer merges both into the report the API returns.
type NutritionService struct {
	db     *gorm.DB
	meals  *MealService
	policy MacroPolicy
}

func NewNutritionService(db *gorm.DB, policy MacroPolicy) *NutritionService {
	return &NutritionService{db: db, meals: NewMealService(db), policy: policy}
}

// DailySummary reports consumed vs. target for one calendar day.
func (s *NutritionService) DailySummary(userID uint, date time.Time) (*DailySummary, error) {
	user, err := s.user(userID)
	if err != nil {
		return nil, err
	}
	meals, err := s.meals.MealsForDay(userID, date)
	if err != nil {
		return nil, err
	}

	targets := CalculateTargets(user, s.policy)
	totals := SumMeals(meals)
	summary := ComposeSummary(targets, totals)
	return &summary, nil
}

// Weekly reports calories per day for the trailing 7 days against the
// user's calorie target.
func (s *NutritionService) Weekly(userID uint, today time.Time) (*WeeklyReport, error) {
	user, err := s.user(userID)
	if err != nil {
		return nil, err
	}
	meals, err := s.meals.MealsForWeek(userID, today)
	if err != nil {
		return nil, err
	}

	targets := CalculateTargets(user, s.policy)
	report := ComposeWeekly(WeeklyTotals(meals, today), targets.Calories.Target)
	return &report, nil
}

func (s *NutritionService) user(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}
