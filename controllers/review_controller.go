package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/solveighty/restaurant-mechita/pkg/resp"
	"github.com/solveighty/restaurant-mechita/services"
	"github.com/solveighty/restaurant-mechita/utils"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

type CreateReviewRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=PAGE ORDER"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
	OrderID *uint  `json:"orderId"`
}

// POST /reviews
func (h *ReviewController) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rv, err := h.Svc.Create(utils.CurrentUserID(c), req.Kind, req.Rating, req.Comment, req.OrderID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rv)
}

// GET /reviews/me
func (h *ReviewController) Mine(c *gin.Context) {
	out, err := h.Svc.ListByUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /reviews/page
func (h *ReviewController) Page(c *gin.Context) {
	out, err := h.Svc.PageReviews()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/reviews/orders
func (h *ReviewController) Orders(c *gin.Context) {
	out, err := h.Svc.OrderReviews(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}
