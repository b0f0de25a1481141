package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/albertkemp/home-cooking/pkg/resp"
	"github.com/albertkemp/home-cooking/services"
	"github.com/albertkemp/home-cooking/utils"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

func principal(c *gin.Context) services.Principal {
	return services.Principal{UserID: utils.CurrentUserID(c), Role: utils.CurrentRole(c)}
}

// GET /meals — the cook's own items
func (mc *MealController) ListForMe(c *gin.Context) {
	items, err := mc.Meals.ListForCook(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /meals
func (mc *MealController) Create(c *gin.Context) {
	var req services.CreateMealIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Meals.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /meals/:id
func (mc *MealController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := mc.Meals.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"meal":         item,
		"availability": services.ResolveAvailability(item, time.Now()),
	})
}

// PATCH /meals/:id
func (mc *MealController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateMealIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Meals.Update(principal(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /meals/:id (?type=image deletes only the images)
func (mc *MealController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	imagesOnly := c.Query("type") == "image"

	if err := mc.Meals.Delete(principal(c), uint(id), imagesOnly); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
