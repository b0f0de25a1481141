package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/resp"
	"github.com/albertkemp/home-cooking/repository"
	"github.com/albertkemp/home-cooking/services"
)

type CookController struct {
	Users   *repository.UserRepository
	Reviews *services.ReviewService
}

func NewCookController(users *repository.UserRepository, reviews *services.ReviewService) *CookController {
	return &CookController{Users: users, Reviews: reviews}
}

// GET /cooks/:id — public cook profile: menu with items (availability
// resolved at read time), profile images, reviews and the average rating
func (cc *CookController) Profile(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cook, err := cc.Users.FindCookProfile(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cook not found")
			return
		}
		resp.Error(c, err)
		return
	}
	if cook.Role != entity.RoleCook {
		resp.NotFound(c, "cook not found")
		return
	}

	now := time.Now()
	type mealOut struct {
		entity.FoodItem
		Availability services.Availability `json:"availability"`
	}
	meals := []mealOut{}
	for mi := range cook.Menus {
		for fi := range cook.Menus[mi].FoodItems {
			item := cook.Menus[mi].FoodItems[fi]
			meals = append(meals, mealOut{
				FoodItem:     item,
				Availability: services.ResolveAvailability(&item, now),
			})
		}
	}

	agg, err := cc.Reviews.ListForCook(cook.ID, 20, 0)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.OK(c, gin.H{
		"cook": gin.H{
			"id": cook.ID, "name": cook.Name, "bio": cook.Bio,
			"address": cook.Address, "image": cook.Image,
		},
		"meals":     meals,
		"images":    cook.Images,
		"reviews":   agg.Items,
		"aggregate": agg.Aggregate,
	})
}
