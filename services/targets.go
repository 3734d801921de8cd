package services

import (
	"math"
	"os"

	"github.com/Khushal2406/stayfit/models"
)

// MacroPolicy selects how macro gram targets are derived from the calorie
// target. A deployment runs one policy; they are never mixed.
type MacroPolicy string

const (
	// MacroPolicyWeight: 2 g/kg protein, 1 g/kg fat, carbs from the
	// remaining calories.
	MacroPolicyWeight MacroPolicy = "weight"
	// MacroPolicyPercent: 30% protein / 45% carbs / 25% fat of calories.
	MacroPolicyPercent MacroPolicy = "percent"
)

// MacroPolicyFromEnv reads MACRO_POLICY; the weight-based split is the
// default.
func MacroPolicyFromEnv() MacroPolicy {
	if os.Getenv("MACRO_POLICY") == string(MacroPolicyPercent) {
		return MacroPolicyPercent
	}
	return MacroPolicyWeight
}

type CalorieTarget struct {
	Target int `json:"target"`
	// Signed kcal adjustment applied for the weight goal; 0 without a goal.
	Adjustment int `json:"adjustment"`
}

type MacroTarget struct {
	Target int `json:"target"`
}

type NutritionTargets struct {
	Calories CalorieTarget `json:"calories"`
	Protein  MacroTarget   `json:"protein"`
	Carbs    MacroTarget   `json:"carbs"`
	Fats     MacroTarget   `json:"fats"`
}

const (
	// One kilogram of body mass is treated as 7700 kcal.
	kcalPerKg = 7700
	// Hard safety floor for the daily calorie target.
	minCalories = 1200
	// Fixed "moderate activity" multiplier on BMR. Other activity levels
	// are not supported.
	activityFactor = 1.55

	defaultWeeklyRate    = 0.5
	defaultCaloriesMale  = 2500
	defaultCaloriesOther = 2000
)

// CalculateTargets turns a user's biometrics and weight goal into daily
// calorie and macro targets. It never fails: missing inputs fall back to
// documented defaults, the result just gets rougher.
func CalculateTargets(u *models.User, policy MacroPolicy) NutritionTargets {
	base := baseCalories(u)
	adj := calorieAdjustment(u)

	target := base + adj
	if target < minCalories {
		target = minCalories
	}

	t := NutritionTargets{Calories: CalorieTarget{Target: target, Adjustment: adj}}

	switch policy {
	case MacroPolicyPercent:
		t.Protein.Target = round(0.30 * float64(target) / 4)
		t.Carbs.Target = round(0.45 * float64(target) / 4)
		t.Fats.Target = round(0.25 * float64(target) / 9)
	default:
		weight := u.Weight
		if weight <= 0 {
			weight = 70
		}
		t.Protein.Target = round(weight * 2)
		t.Fats.Target = round(weight * 1)
		carbs := round((float64(target) - float64(t.Protein.Target*4+t.Fats.Target*9)) / 4)
		if carbs < 0 {
			carbs = 0
		}
		t.Carbs.Target = carbs
	}
	return t
}

// baseCalories resolves the pre-adjustment calorie budget: explicit
// override, else Mifflin-St Jeor BMR at moderate activity, else a
// gender-based default.
func baseCalories(u *models.User) int {
	if u.DailyCalorieTarget != nil && *u.DailyCalorieTarget > 0 {
		return round(*u.DailyCalorieTarget)
	}
	if u.Age > 0 && u.Weight > 0 && u.Height > 0 && u.Gender != "" {
		bmr := 10*u.Weight + 6.25*u.Height - 5*float64(u.Age)
		if u.Gender == "male" {
			bmr += 5
		} else {
			bmr -= 161
		}
		return round(bmr * activityFactor)
	}
	if u.Gender == "male" {
		return defaultCaloriesMale
	}
	return defaultCaloriesOther
}

// calorieAdjustment is the daily surplus (bulk) or deficit (cut) implied by
// the weekly rate. Zero unless both current weight and goal are known.
func calorieAdjustment(u *models.User) int {
	if u.WeightGoal == nil || *u.WeightGoal <= 0 || u.Weight <= 0 {
		return 0
	}
	rate := u.WeeklyRate
	if rate <= 0 {
		rate = defaultWeeklyRate
	}
	adj := round(kcalPerKg * rate / 7)
	if *u.WeightGoal > u.Weight {
		return adj
	}
	return -adj
}

func round(v float64) int {
	return int(math.Round(v))
}
