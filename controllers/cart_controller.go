package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solveighty/restaurant-mechita/pkg/resp"
	"github.com/solveighty/restaurant-mechita/services"
	"github.com/solveighty/restaurant-mechita/utils"
)

type CartController struct {
	Svc    *services.CartService
	Orders *services.OrderService
}

func NewCartController(s *services.CartService, o *services.OrderService) *CartController {
	return &CartController{Svc: s, Orders: o}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.GetOrCreate(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": h.Svc.Subtotal(cart)})
}

type AddToCartRequest struct {
	MenuID uint `json:"menuId" binding:"required"`
	Qty    int  `json:"qty" binding:"required"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.Add(utils.CurrentUserID(c), req.MenuID, req.Qty)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"cart": cart, "subtotal": h.Svc.Subtotal(cart)})
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req struct {
		Qty int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(utils.CurrentUserID(c), uint(id), req.Qty); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	cart, err := h.Svc.FindForUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.Svc.RemoveItem(cart.ID, uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /cart/checkout
func (h *CartController) Checkout(c *gin.Context) {
	cart, err := h.Svc.FindForUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	order, err := h.Orders.Checkout(cart.ID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}
