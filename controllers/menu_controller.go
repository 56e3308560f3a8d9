package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/pkg/resp"
	"github.com/solveighty/restaurant-mechita/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu
func (h *MenuController) List(c *gin.Context) {
	menus, err := h.Svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	m, err := h.Svc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

type CreateMenuRequest struct {
	MenuName string `json:"menuName" binding:"required"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price" binding:"min=0"`
	Picture  string `json:"picture"`
	Category string `json:"category" binding:"required,oneof=SPECIALS FAST_FOOD SNACKS"`
}

// POST /admin/menu
func (h *MenuController) Create(c *gin.Context) {
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m := entity.Menu{
		MenuName: req.MenuName,
		Detail:   req.Detail,
		Price:    req.Price,
		Picture:  req.Picture,
		Category: req.Category,
	}
	if err := h.Svc.Create(&m); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, m)
}

type UpdateMenuRequest struct {
	MenuName *string `json:"menuName"`
	Detail   *string `json:"detail"`
	Price    *int64  `json:"price"`
	Picture  *string `json:"picture"`
	Category *string `json:"category"`
}

// PATCH /admin/menu/:id
func (h *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := h.Svc.Update(uint(id), services.UpdateMenuIn{
		MenuName: req.MenuName,
		Detail:   req.Detail,
		Price:    req.Price,
		Picture:  req.Picture,
		Category: req.Category,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /admin/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
