package controllers

import (
	"net/http"

	"github.com/envelope-zero/personal-budget/internal/budget"
	"github.com/envelope-zero/personal-budget/internal/httputil"
	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func (co Controller) RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsEnvelopeList)
		r.GET("", co.GetEnvelopes)
		r.POST("", co.CreateEnvelope)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", co.OptionsEnvelopeDetail)
		r.GET("/:id", co.GetEnvelope)
		r.PUT("/:id", co.UpdateEnvelope)
		r.DELETE("/:id", co.DeleteEnvelope)
	}
}

// envelopeFromPath resolves the envelope in the path. If it does not exist,
// the request is aborted.
func (co Controller) envelopeFromPath(c *gin.Context) (uint, bool) {
	id, err := models.ParseID("envelope", c.Param("id"))
	if err != nil {
		writeError(c, err)
		return 0, false
	}

	_, err = co.Service.GetEnvelope(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return 0, false
	}

	return id, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/envelopes [options]
func (co Controller) OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		404
// @Failure		500	{object}	httpError
// @Param			id	path		integer	true	"ID of the envelope"
// @Router			/envelopes/{id} [options]
func (co Controller) OptionsEnvelopeDetail(c *gin.Context) {
	if _, ok := co.envelopeFromPath(c); !ok {
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get envelopes
// @Description	Returns all envelopes ordered by ID
// @Tags			Envelopes
// @Produce		json
// @Success		200		{array}		Envelope
// @Failure		500		{object}	httpError
// @Param			name	query		string	false	"Filter by name. Supports * as wildcard"
// @Router			/envelopes [get]
func (co Controller) GetEnvelopes(c *gin.Context) {
	var filter QueryEnvelopes

	// The filter contains only strings, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	envelopes, err := co.Service.ListEnvelopes(c.Request.Context(), filter.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEnvelopes(envelopes))
}

// @Summary		Create envelope
// @Description	Creates a new envelope
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200			{object}	Envelope
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			envelope	body		budget.EnvelopeInput	true	"Envelope"
// @Router			/envelopes [post]
func (co Controller) CreateEnvelope(c *gin.Context) {
	var in budget.EnvelopeInput
	if err := httputil.BindData(c, &in); err != nil {
		writeError(c, err)
		return
	}

	envelope, err := co.Service.CreateEnvelope(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEnvelope(envelope))
}

// @Summary		Get envelope
// @Description	Returns a specific envelope
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	Envelope
// @Failure		404
// @Failure		500	{object}	httpError
// @Param			id	path		integer	true	"ID of the envelope"
// @Router			/envelopes/{id} [get]
func (co Controller) GetEnvelope(c *gin.Context) {
	id, err := models.ParseID("envelope", c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	envelope, err := co.Service.GetEnvelope(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEnvelope(envelope))
}

// @Summary		Update envelope
// @Description	Replaces name, description and balance of an existing envelope
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200			{object}	Envelope
// @Failure		400			{object}	httpError
// @Failure		404
// @Failure		500			{object}	httpError
// @Param			id			path		integer					true	"ID of the envelope"
// @Param			envelope	body		budget.EnvelopeInput	true	"Envelope"
// @Router			/envelopes/{id} [put]
func (co Controller) UpdateEnvelope(c *gin.Context) {
	id, ok := co.envelopeFromPath(c)
	if !ok {
		return
	}

	var in budget.EnvelopeInput
	if err := httputil.BindData(c, &in); err != nil {
		writeError(c, err)
		return
	}

	envelope, err := co.Service.UpdateEnvelope(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEnvelope(envelope))
}

// @Summary		Delete envelope
// @Description	Deletes an envelope. Envelopes that have expenses can not be deleted.
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404
// @Failure		500	{object}	httpError
// @Param			id	path		integer	true	"ID of the envelope"
// @Router			/envelopes/{id} [delete]
func (co Controller) DeleteEnvelope(c *gin.Context) {
	id, err := models.ParseID("envelope", c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	_, err = co.Service.DeleteEnvelope(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
