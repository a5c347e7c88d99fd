package controllers

import (
	"net/http"

	"github.com/envelope-zero/personal-budget/internal/budget"
	"github.com/envelope-zero/personal-budget/internal/httputil"
	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for the expenses of an envelope
// with the RouterGroup that is passed. The group path must contain the
// envelope ID as :id parameter.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:expenseId", co.OptionsExpenseDetail)
		r.GET("/:expenseId", co.GetExpense)
		r.PUT("/:expenseId", co.UpdateExpense)
		r.DELETE("/:expenseId", co.DeleteExpense)
	}
}

// RegisterAllExpensesRoutes registers the routes for the collection of the
// expenses of all envelopes with the RouterGroup that is passed.
func (co Controller) RegisterAllExpensesRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsAllExpenses)
	r.GET("", co.GetAllExpenses)
}

// expenseIDs parses the envelope and expense IDs from the path.
func expenseIDs(c *gin.Context) (envelopeID, id uint, err error) {
	envelopeID, err = models.ParseID("envelope", c.Param("id"))
	if err != nil {
		return 0, 0, err
	}

	id, err = models.ParseID("expense", c.Param("expenseId"))
	if err != nil {
		return 0, 0, err
	}

	return envelopeID, id, nil
}

// expenseFromPath resolves the envelope and the expense in the path. The
// request is aborted unless both exist and the envelope owns the expense.
func (co Controller) expenseFromPath(c *gin.Context) (envelopeID, id uint, ok bool) {
	envelopeID, id, err := expenseIDs(c)
	if err == nil {
		_, err = co.Service.GetExpense(c.Request.Context(), envelopeID, id)
	}

	if err != nil {
		writeError(c, err)
		return 0, 0, false
	}

	return envelopeID, id, true
}

func newExpenses(expenses []models.Expense) []Expense {
	data := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, newExpense(e))
	}
	return data
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		404
// @Failure		500	{object}	httpError
// @Param			id	path		integer	true	"ID of the envelope"
// @Router			/envelopes/{id}/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	if _, ok := co.envelopeFromPath(c); !ok {
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		404
// @Failure		500			{object}	httpError
// @Param			id			path		integer	true	"ID of the envelope"
// @Param			expenseId	path		integer	true	"ID of the expense"
// @Router			/envelopes/{id}/expenses/{expenseId} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	if _, _, ok := co.expenseFromPath(c); !ok {
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get expenses
// @Description	Returns all expenses of an envelope
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}		Expense
// @Failure		404
// @Failure		500	{object}	httpError
// @Param			id	path		integer	true	"ID of the envelope"
// @Router			/envelopes/{id}/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	envelopeID, err := models.ParseID("envelope", c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	expenses, err := co.Service.ListExpenses(c.Request.Context(), envelopeID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpenses(expenses))
}

// @Summary		Create expense
// @Description	Creates a new expense. The envelopeId in the body must match the envelope in the path.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	Expense
// @Failure		400		{object}	httpError
// @Failure		404
// @Failure		500		{object}	httpError
// @Param			id		path		integer				true	"ID of the envelope"
// @Param			expense	body		budget.ExpenseInput	true	"Expense"
// @Router			/envelopes/{id}/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	envelopeID, ok := co.envelopeFromPath(c)
	if !ok {
		return
	}

	var in budget.ExpenseInput
	if err := httputil.BindData(c, &in); err != nil {
		writeError(c, err)
		return
	}

	expense, err := co.Service.CreateExpense(c.Request.Context(), envelopeID, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	Expense
// @Failure		404
// @Failure		500			{object}	httpError
// @Param			id			path		integer	true	"ID of the envelope"
// @Param			expenseId	path		integer	true	"ID of the expense"
// @Router			/envelopes/{id}/expenses/{expenseId} [get]
func (co Controller) GetExpense(c *gin.Context) {
	envelopeID, id, err := expenseIDs(c)
	if err != nil {
		writeError(c, err)
		return
	}

	expense, err := co.Service.GetExpense(c.Request.Context(), envelopeID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Update expense
// @Description	Replaces an expense. The expenseId in the body must match the path. Setting a different envelopeId moves the expense.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200			{object}	Expense
// @Failure		400			{object}	httpError
// @Failure		404
// @Failure		500			{object}	httpError
// @Param			id			path		integer					true	"ID of the envelope"
// @Param			expenseId	path		integer					true	"ID of the expense"
// @Param			expense		body		budget.ExpenseUpdate	true	"Expense"
// @Router			/envelopes/{id}/expenses/{expenseId} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	envelopeID, id, ok := co.expenseFromPath(c)
	if !ok {
		return
	}

	var in budget.ExpenseUpdate
	if err := httputil.BindData(c, &in); err != nil {
		writeError(c, err)
		return
	}

	expense, err := co.Service.UpdateExpense(c.Request.Context(), envelopeID, id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Delete expense
// @Description	Deletes an expense. The balance of the envelope is not changed.
// @Tags			Expenses
// @Success		204
// @Failure		404
// @Failure		500			{object}	httpError
// @Param			id			path		integer	true	"ID of the envelope"
// @Param			expenseId	path		integer	true	"ID of the expense"
// @Router			/envelopes/{id}/expenses/{expenseId} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	envelopeID, id, ok := co.expenseFromPath(c)
	if !ok {
		return
	}

	_, err := co.Service.DeleteExpense(c.Request.Context(), envelopeID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/expenses [options]
func (co Controller) OptionsAllExpenses(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get all expenses
// @Description	Returns the expenses of all envelopes, ordered by ID
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}		Expense
// @Failure		500	{object}	httpError
// @Router			/expenses [get]
func (co Controller) GetAllExpenses(c *gin.Context) {
	expenses, err := co.Service.ListAllExpenses(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpenses(expenses))
}
