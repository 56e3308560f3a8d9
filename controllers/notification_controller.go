package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solveighty/restaurant-mechita/pkg/resp"
	"github.com/solveighty/restaurant-mechita/services"
	"github.com/solveighty/restaurant-mechita/utils"
)

type NotificationController struct{ Svc *services.NotificationService }

func NewNotificationController(s *services.NotificationService) *NotificationController {
	return &NotificationController{Svc: s}
}

// GET /notifications
func (h *NotificationController) Unread(c *gin.Context) {
	out, err := h.Svc.UnreadForUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /notifications/:id/read
func (h *NotificationController) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.MarkRead(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"read": true})
}
