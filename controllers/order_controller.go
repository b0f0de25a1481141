package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/albertkemp/home-cooking/pkg/resp"
	"github.com/albertkemp/home-cooking/services"
	"github.com/albertkemp/home-cooking/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// DELETE /orders/:id — eater cancels a pending order
func (oc *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Orders.Cancel(principal(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order cancelled", "order": order})
}

type UpdateOrderStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id — cook marks a pending order completed
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Complete(principal(c), uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /my-orders — the eater's order history
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Orders.ListForEater(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /cook/orders — the cook's pending queue
func (oc *OrderController) ListForCook(c *gin.Context) {
	orders, err := oc.Orders.ListPendingForCook(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}
