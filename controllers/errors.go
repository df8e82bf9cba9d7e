package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ger123348/NgopiBareng/pkg/resp"
	"github.com/ger123348/NgopiBareng/services"
)

// map sentinel error จาก services เป็น HTTP status
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrAlreadyReviewed),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrCampusExists):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
