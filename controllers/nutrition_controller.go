package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Khushal2406/stayfit/config"
	"github.com/Khushal2406/stayfit/services"

	"github.com/gin-gonic/gin"
)

// GET /nutrition/summary?date=YYYY-MM-DD — consumed vs. target for one day.
func GetSummary(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	svc := services.NewNutritionService(config.DB, services.MacroPolicyFromEnv())
	summary, err := svc.DailySummary(userID, date)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"calories": summary.Calories,
		"protein":  summary.Protein,
		"carbs":    summary.Carbs,
		"fats":     summary.Fats,
	})
}

// GET /nutrition/weekly — calories per day for the trailing 7 days.
func GetWeekly(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	svc := services.NewNutritionService(config.DB, services.MacroPolicyFromEnv())
	report, err := svc.Weekly(userID, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"weeklyData":  report.Days,
		"calorieGoal": report.CalorieGoal,
	})
}
