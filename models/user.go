package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`

	// Biometrics. Zero means "not provided yet" — target calculation
	// degrades to defaults rather than failing.
	Age    int     // 1–120
	Gender string  `gorm:"size:10"` // "male" | "female" | "other"
	Weight float64 // kg, 20–300
	Height float64 // cm, 100–250

	// Weight-change goal. WeightGoal nil means no goal set.
	WeightGoal *float64 // kg, 20–300
	WeeklyRate float64  `gorm:"default:0.5"` // kg/week: 0.25, 0.5, 0.75 or 1.0

	// Explicit calorie override; nil falls back to the computed BMR base.
	DailyCalorieTarget *float64
}
