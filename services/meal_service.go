package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Khushal2406/stayfit/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// FlexFloat coerces loosely-typed nutrition JSON — numbers, numeric
// strings, null or garbage — to a float exactly once, at the request
// boundary. Anything non-numeric becomes 0 so a malformed snapshot can
// never block logging or reporting.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// NutritionInput is the snapshot payload sent when adding a food. Missing
// fields coerce to zero.
type NutritionInput struct {
	Calories FlexFloat `json:"calories"`
	Protein  FlexFloat `json:"protein"`
	Carbs    FlexFloat `json:"carbs"`
	Fat      FlexFloat `json:"fat"`
	Fiber    FlexFloat `json:"fiber"`
	Sugars   FlexFloat `json:"sugars"`
}

type LoggedFoodInput struct {
	ID          string         `json:"id"`
	Name        string         `json:"name" binding:"required"`
	Brand       string         `json:"brand"`
	ServingSize string         `json:"servingSize"`
	Nutrition   NutritionInput `json:"nutrition"`
}

// AddFood appends a food snapshot to the user's meal for (date, mealType),
// creating the meal on first add. Empty meals are never written ahead of
// time; absence of a row means nothing logged.
func (s *MealService) AddFood(userID uint, date time.Time, mealType string, in LoggedFoodInput) (*models.Meal, error) {
	if !models.ValidMealType(mealType) {
		return nil, fmt.Errorf("invalid meal type %q", mealType)
	}
	day := StartOfDay(date)

	var meal models.Meal
	err := s.db.
		Where("user_id = ? AND type = ? AND date >= ? AND date < ?",
			userID, mealType, day, day.AddDate(0, 0, 1)).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		meal = models.Meal{UserID: userID, Type: mealType, Date: day}
		if err := s.db.Create(&meal).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	foodID := in.ID
	if foodID == "" {
		foodID = uuid.NewString()
	}
	serving := in.ServingSize
	if serving == "" {
		serving = "serving"
	}

	food := models.LoggedFood{
		MealID:      meal.ID,
		FoodID:      foodID,
		Name:        in.Name,
		Brand:       in.Brand,
		ServingSize: serving,
		Calories:    float64(in.Nutrition.Calories),
		Protein:     float64(in.Nutrition.Protein),
		Carbs:       float64(in.Nutrition.Carbs),
		Fat:         float64(in.Nutrition.Fat),
		Fiber:       float64(in.Nutrition.Fiber),
		Sugars:      float64(in.Nutrition.Sugars),
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}

	var populated models.Meal
	if err := s.db.Preload("Foods").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// RemoveFood deletes one logged food from a meal the user owns.
func (s *MealService) RemoveFood(userID, mealID, foodID uint) error {
	var meal models.Meal
	err := s.db.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: meal %d", ErrMealNotFound, mealID)
	} else if err != nil {
		return err
	}

	res := s.db.Where("id = ? AND meal_id = ?", foodID, mealID).Delete(&models.LoggedFood{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: logged food %d", ErrFoodNotFound, foodID)
	}
	return nil
}

// MealsForDay returns the user's meals whose Date falls on the given
// calendar day, foods included, in logging order.
func (s *MealService) MealsForDay(userID uint, date time.Time) ([]models.Meal, error) {
	day := StartOfDay(date)
	return s.mealsInRange(userID, day, day.AddDate(0, 0, 1))
}

// MealsForWeek returns meals for the 7-day window ending today, bucketing
// input for WeeklyTotals. The window is keyed on the meal Date field —
// the same field daily summaries use.
func (s *MealService) MealsForWeek(userID uint, today time.Time) ([]models.Meal, error) {
	end := StartOfDay(today).AddDate(0, 0, 1)
	return s.mealsInRange(userID, end.AddDate(0, 0, -7), end)
}

func (s *MealService) mealsInRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Foods").
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, id ASC").
		Find(&meals).Error
	return meals, err
}

// GroupedFoods flattens a day's meals into the four canonical slots for
// the tracker UI. Empty slots come back as empty lists, not nulls.
func GroupedFoods(meals []models.Meal) map[string][]models.LoggedFood {
	grouped := map[string][]models.LoggedFood{
		models.MealTypeBreakfast: {},
		models.MealTypeLunch:     {},
		models.MealTypeSnack:     {},
		models.MealTypeDinner:    {},
	}
	for _, m := range meals {
		if _, ok := grouped[m.Type]; ok {
			grouped[m.Type] = append(grouped[m.Type], m.Foods...)
		}
	}
	return grouped
}

// ensure FlexFloat keeps satisfying json.Unmarshaler
var _ json.Unmarshaler = (*FlexFloat)(nil)
