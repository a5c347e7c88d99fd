package controllers

import (
	"net/http"

	"github.com/envelope-zero/personal-budget/internal/budget"
	"github.com/envelope-zero/personal-budget/internal/httputil"
	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransferRoutes registers the routes for transfers with
// the RouterGroup that is passed.
func (co Controller) RegisterTransferRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsTransfers)
	r.POST("", co.CreateTransfer)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Router			/transfers [options]
func (co Controller) OptionsTransfers(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Transfer between envelopes
// @Description	Moves an amount from the source to the target envelope and returns both envelopes, source first. The amount must be lower than the balance of the source envelope.
// @Tags			Transfers
// @Accept			json
// @Produce		json
// @Success		200			{array}		Envelope
// @Failure		400			{object}	httpError
// @Failure		404
// @Failure		500			{object}	httpError
// @Param			transfer	body		TransferRequest	true	"Transfer"
// @Router			/transfers [post]
func (co Controller) CreateTransfer(c *gin.Context) {
	var body TransferRequest
	if err := httputil.BindData(c, &body); err != nil {
		writeError(c, err)
		return
	}

	source, err := models.ParseID("envelope", string(body.SourceEnvelopeID))
	if err != nil {
		writeError(c, err)
		return
	}

	target, err := models.ParseID("envelope", string(body.TargetEnvelopeID))
	if err != nil {
		writeError(c, err)
		return
	}

	envelopes, err := co.Service.Transfer(c.Request.Context(), budget.TransferRequest{
		SourceEnvelopeID: source,
		TargetEnvelopeID: target,
		TransferAmount:   body.TransferAmount,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEnvelopes(envelopes))
}
