package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/albertkemp/home-cooking/pkg/resp"
	"github.com/albertkemp/home-cooking/services"
)

type BrowseController struct {
	Meals *services.MealService
}

func NewBrowseController(meals *services.MealService) *BrowseController {
	return &BrowseController{Meals: meals}
}

// GET /browse/meals?q= — public browse and search, available first
func (bc *BrowseController) List(c *gin.Context) {
	items, err := bc.Meals.Browse(c.Query("q"), time.Now())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
