package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Khushal2406/stayfit/config"
	"github.com/Khushal2406/stayfit/services"

	"github.com/gin-gonic/gin"
)

type logFoodInput struct {
	MealType string                   `json:"mealType" binding:"required"`
	Date     string                   `json:"date"` // YYYY-MM-DD, defaults to today
	Food     services.LoggedFoodInput `json:"food" binding:"required"`
}

// POST /meals — add one food to today's (or the given day's) meal slot.
func LogFood(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input logFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.AddFood(userID, date, input.MealType, input.Food)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "meal": meal})
}

// GET /meals?date=YYYY-MM-DD — the day's foods grouped by meal slot.
func GetMeals(c *gin.Context) {
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

	mealSvc := services.NewMealService(config.DB)
	meals, err := mealSvc.MealsForDay(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "meals": services.GroupedFoods(meals)})
}

// DELETE /meals/:mealId/foods/:foodId
func DeleteLoggedFood(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	mealID, err := strconv.ParseUint(c.Param("mealId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	mealSvc := services.NewMealService(config.DB)
	if err := mealSvc.RemoveFood(userID, uint(mealID), uint(foodID)); err != nil {
		if errors.Is(err, services.ErrMealNotFound) || errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
