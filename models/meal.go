package models

import (
	"time"

	"gorm.io/gorm"
)

// Canonical meal slots. The legacy dataset's "evening_snacks" variant maps
// onto MealTypeSnack.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeSnack     = "snack"
	MealTypeDinner    = "dinner"
)

// One Meal is the user's food log for a single (date, slot) pair. It is
// created lazily on the first food add; a missing row means nothing was
// logged for that slot.
type Meal struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncated to the start of day
	Type   string    `gorm:"size:16;not null"`
	Foods  []LoggedFood
}

// LoggedFood stores the nutrition snapshot taken when the food was added.
// It deliberately does not reference the food database live: edits to the
// reference data must never rewrite historical logs.
type LoggedFood struct {
	gorm.Model
	MealID uint `gorm:"index;not null"`

	FoodID      string `gorm:"type:varchar(255);not null"`
	Name        string `gorm:"not null"`
	Brand       string
	ServingSize string

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugars   float64
}

func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeSnack, MealTypeDinner:
		return true
	}
	return false
}
