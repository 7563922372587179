package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/stretch/internal/helpers"
	"github.com/joshua-takyi/stretch/internal/models"
	"github.com/joshua-takyi/stretch/internal/services"
)

// respondError writes the client-facing response for known failures and
// hands everything else to middleware.ErrorHandler.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError

	switch {
	case errors.As(err, &ve):
		c.String(http.StatusBadRequest, ve.Message)
	case errors.Is(err, models.ErrEventNotFound):
		c.String(http.StatusNotFound, "Event not found")
	case errors.Is(err, helpers.ErrInvalidID):
		c.String(http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
	}
}
