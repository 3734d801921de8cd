package services

import (
	"testing"
	"time"

	"github.com/Khushal2406/stayfit/models"
	"github.com/stretchr/testify/assert"
)

func mealOn(date time.Time, foods ...models.LoggedFood) models.Meal {
	return models.Meal{Date: StartOfDay(date), Type: models.MealTypeLunch, Foods: foods}
}

func food(cal, prot, carbs, fat float64) models.LoggedFood {
	return models.LoggedFood{Calories: cal, Protein: prot, Carbs: carbs, Fat: fat}
}

func TestSumMealsEmpty(t *testing.T) {
	totals := SumMeals(nil)
	assert.Equal(t, NutritionTotals{}, totals)

	totals = SumMeals([]models.Meal{{Type: models.MealTypeBreakfast}})
	assert.Equal(t, NutritionTotals{}, totals)
}

func TestSumMeals(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		mealOn(day, food(300, 20, 30, 10), food(150, 5, 25, 3)),
		mealOn(day, food(500, 40, 45, 18)),
	}

	totals := SumMeals(meals)

	assert.InDelta(t, 950, totals.Calories, 1e-9)
	assert.InDelta(t, 65, totals.Protein, 1e-9)
	assert.InDelta(t, 100, totals.Carbs, 1e-9)
	assert.InDelta(t, 31, totals.Fats, 1e-9)
}

func TestSumMealsMissingNutrientContributesZero(t *testing.T) {
	// A snapshot logged without a fat value carries 0, never an error.
	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	meals := []models.Meal{mealOn(day, models.LoggedFood{Calories: 200, Protein: 10})}

	totals := SumMeals(meals)

	assert.InDelta(t, 0, totals.Fats, 1e-9)
	assert.InDelta(t, 200, totals.Calories, 1e-9)
}

func TestSumMealsAssociative(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	a := mealOn(day, food(300, 20, 30, 10))
	b := mealOn(day, food(150, 5, 25, 3))
	c := mealOn(day, food(500, 40, 45, 18))

	direct := SumMeals([]models.Meal{a, b, c})

	split := SumMeals([]models.Meal{a, b})
	split.Merge(SumMeals([]models.Meal{c}))

	assert.Equal(t, direct, split)
}

func TestWeeklyTotalsExactlySevenBuckets(t *testing.T) {
	today := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	days := WeeklyTotals(nil, today)

	assert.Len(t, days, 7)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), days[6].Date)
	for _, d := range days {
		assert.Equal(t, NutritionTotals{}, d.Totals)
	}
}

func TestWeeklyTotalsBucketsByMealDate(t *testing.T) {
	today := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		mealOn(today, food(800, 0, 0, 0)),
		mealOn(today.AddDate(0, 0, -3), food(600, 0, 0, 0)),
		mealOn(today.AddDate(0, 0, -3), food(400, 0, 0, 0)),
		mealOn(today.AddDate(0, 0, -8), food(9999, 0, 0, 0)), // outside window
		mealOn(today.AddDate(0, 0, 1), food(9999, 0, 0, 0)),  // tomorrow, ignored
	}

	days := WeeklyTotals(meals, today)

	assert.Len(t, days, 7)
	assert.InDelta(t, 1000, days[3].Totals.Calories, 1e-9) // three days ago
	assert.InDelta(t, 800, days[6].Totals.Calories, 1e-9)  // today
	assert.InDelta(t, 0, days[0].Totals.Calories, 1e-9)

	// oldest to newest
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].Date.After(days[i-1].Date))
	}
}
