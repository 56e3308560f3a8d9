package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/solveighty/restaurant-mechita/pkg/resp"
	"github.com/solveighty/restaurant-mechita/services"
)

type VerificationController struct{ Svc *services.VerificationService }

func NewVerificationController(s *services.VerificationService) *VerificationController {
	return &VerificationController{Svc: s}
}

// POST /verification/send
func (h *VerificationController) Send(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SendCode(req.Email); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"sent": true})
}

// POST /verification/verify
func (h *VerificationController) Verify(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required,len=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Verify(req.Email, req.Code); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"verified": true})
}
