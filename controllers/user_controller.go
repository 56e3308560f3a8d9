package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solveighty/restaurant-mechita/pkg/resp"
	"github.com/solveighty/restaurant-mechita/services"
	"github.com/solveighty/restaurant-mechita/utils"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// GET /admin/users
func (h *UserController) List(c *gin.Context) {
	users, err := h.Svc.ListAll(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /auth/me/addresses
func (h *UserController) Addresses(c *gin.Context) {
	out, err := h.Svc.TempAddresses(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /auth/me/addresses
func (h *UserController) AddAddress(c *gin.Context) {
	var req struct {
		Address string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a, err := h.Svc.AddTempAddress(utils.CurrentUserID(c), req.Address)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, a)
}

// DELETE /auth/me/addresses/:id
func (h *UserController) RemoveAddress(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.RemoveTempAddress(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
