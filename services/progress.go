package services

import (
	"time"

	"github.com/Khushal2406/stayfit/models"
)

// NutritionTotals is the consumed-nutrient sum over a set of logged foods.
// Derived only, never persisted.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

func (t *NutritionTotals) add(f models.LoggedFood) {
	t.Calories += f.Calories
	t.Protein += f.Protein
	t.Carbs += f.Carbs
	t.Fats += f.Fat
}

// Merge folds another total into t. Summing per-meal partitions and
// merging gives the same result as one pass over all meals.
func (t *NutritionTotals) Merge(other NutritionTotals) {
	t.Calories += other.Calories
	t.Protein += other.Protein
	t.Carbs += other.Carbs
	t.Fats += other.Fats
}

// SumMeals totals every logged food across the given meals. Snapshot
// values were coerced to numbers when logged, so a plain sum is safe; an
// empty meal set yields the zero total.
func SumMeals(meals []models.Meal) NutritionTotals {
	var totals NutritionTotals
	for _, m := range meals {
		for _, f := range m.Foods {
			totals.add(f)
		}
	}
	return totals
}

// DayTotals is one bucket of the weekly view.
type DayTotals struct {
	Date   time.Time
	Totals NutritionTotals
}

// WeeklyTotals buckets meals into exactly 7 calendar days — today and the
// six preceding — keyed by the meal's Date field, zero-filled for days
// without meals, oldest first. Meals outside the window are ignored.
func WeeklyTotals(meals []models.Meal, today time.Time) []DayTotals {
	start := StartOfDay(today).AddDate(0, 0, -6)

	days := make([]DayTotals, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		days[i].Date = d
		index[dayKey(d)] = i
	}

	for _, m := range meals {
		i, ok := index[dayKey(m.Date)]
		if !ok {
			continue
		}
		for _, f := range m.Foods {
			days[i].Totals.add(f)
		}
	}
	return days
}

// StartOfDay truncates t to 00:00 in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
