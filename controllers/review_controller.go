package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/albertkemp/home-cooking/pkg/resp"
	"github.com/albertkemp/home-cooking/services"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// POST /reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var req services.AddReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Reviews.Add(principal(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /reviews?cookId=|foodItemId= — list plus aggregate rating
func (rc *ReviewController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	if v := c.Query("foodItemId"); v != "" {
		id, _ := strconv.Atoi(v)
		out, err := rc.Reviews.ListForFoodItem(uint(id), limit, offset)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, out)
		return
	}
	if v := c.Query("cookId"); v != "" {
		id, _ := strconv.Atoi(v)
		out, err := rc.Reviews.ListForCook(uint(id), limit, offset)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, out)
		return
	}
	resp.BadRequest(c, "either cookId or foodItemId is required")
}
