package controllers

import (
	"net/http"

	"github.com/envelope-zero/personal-budget/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterHealthzRoutes registers the routes for the healthz endpoint.
func (co Controller) RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsHealthz)
	r.GET("", co.GetHealthz)
}

// OptionsHealthz returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func (co Controller) OptionsHealthz(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetHealthz returns data about the application health
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		500	{object}	httpError
//	@Router			/healthz [get]
func (co Controller) GetHealthz(c *gin.Context) {
	err := co.Service.Store().Ping(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
