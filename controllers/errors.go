package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/pkg/resp"
	"github.com/solveighty/restaurant-mechita/services"
)

// fail maps service errors onto the HTTP taxonomy: NotFound 404,
// Forbidden 403, duplicate uniques 409, rule violations 400, rest 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case services.IsConflict(err), errors.Is(err, services.ErrMenuExists):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrUnknownStatus),
		errors.Is(err, services.ErrBadTransition),
		errors.Is(err, services.ErrReviewLimit),
		errors.Is(err, services.ErrInvalidReview),
		errors.Is(err, services.ErrNotAdmin),
		errors.Is(err, services.ErrCodeInvalid):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
