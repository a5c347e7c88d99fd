package controllers

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"invalid request: envelopeName is required"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	// Validation errors, conflicts and everything unknown
	return http.StatusBadRequest
}

// writeError aborts the request with the status for err.
//
// Not found responses have an empty body. Server errors are logged and
// answered with a general message.
func writeError(c *gin.Context, err error) {
	s := status(err)

	switch s {
	case http.StatusNotFound:
		c.AbortWithStatus(s)
	case http.StatusInternalServerError:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.AbortWithStatusJSON(s, httpError{
			Error: models.ErrGeneral.Error(),
		})
	default:
		c.AbortWithStatusJSON(s, httpError{
			Error: err.Error(),
		})
	}
}
