package controllers

import (
	"errors"
	"net/http"

	"github.com/Khushal2406/stayfit/services"

	"github.com/gin-gonic/gin"
)

// GET /food/search?q=chicken
func SearchFoods(c *gin.Context) {
	results, err := services.DefaultFoodService().Search(c.Query("q"))
	if err != nil {
		if errors.Is(err, services.ErrFoodUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "food provider unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "results": results})
}

// GET /food/:name — exact lookup for the detail view.
func GetFood(c *gin.Context) {
	rec, err := services.DefaultFoodService().Get(c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		case errors.Is(err, services.ErrFoodUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "food provider unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, rec)
}
