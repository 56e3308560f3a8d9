package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solveighty/restaurant-mechita/pkg/resp"
	"github.com/solveighty/restaurant-mechita/services"
	"github.com/solveighty/restaurant-mechita/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders
func (h *OrderController) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/orders
func (h *OrderController) ListAll(c *gin.Context) {
	orders, err := h.Svc.ListAll(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=IN_PROGRESS IN_TRANSIT DELIVERED"`
}

// PATCH /admin/orders/:id/status
func (h *OrderController) SetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.SetStatus(utils.CurrentUserID(c), uint(id), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /admin/orders/sales?start=...&end=... (RFC3339)
func (h *OrderController) Sales(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		resp.BadRequest(c, "invalid start")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		resp.BadRequest(c, "invalid end")
		return
	}

	report, err := h.Svc.SalesInRange(utils.CurrentUserID(c), start, end)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /admin/stats
func (h *OrderController) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, stats)
}
