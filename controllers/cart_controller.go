package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/albertkemp/home-cooking/pkg/resp"
	"github.com/albertkemp/home-cooking/services"
	"github.com/albertkemp/home-cooking/utils"
)

type CartController struct {
	Cart   *services.CartService
	Orders *services.OrderService
}

func NewCartController(cart *services.CartService, orders *services.OrderService) *CartController {
	return &CartController{Cart: cart, Orders: orders}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	cart, subtotal, err := cc.Cart.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Cart.Add(utils.CurrentUserID(c), &req); err != nil {
		resp.Error(c, err)
		return
	}
	cc.Get(c)
}

type UpdateCartQtyReq struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// PATCH /cart/items/:id
func (cc *CartController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateCartQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Cart.UpdateQty(utils.CurrentUserID(c), uint(id), req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	cc.Get(c)
}

// DELETE /cart/items/:id
func (cc *CartController) RemoveItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.Cart.RemoveItem(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	cc.Get(c)
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	if err := cc.Cart.Clear(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// POST /cart/checkout
func (cc *CartController) Checkout(c *gin.Context) {
	order, err := cc.Orders.CreateFromCart(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}
