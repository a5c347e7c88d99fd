package budget_test

import (
	"testing"

	"github.com/envelope-zero/personal-budget/internal/budget"
	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestListExpenses() {
	e := suite.createTestEnvelope("Stuff", "$400.00")

	expenses, err := suite.service.ListExpenses(suite.ctx, e.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 0)

	suite.createTestExpense(e.ID, "$1.00")
	suite.createTestExpense(e.ID, "$2.00")

	expenses, err = suite.service.ListExpenses(suite.ctx, e.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 2)

	_, err = suite.service.ListExpenses(suite.ctx, e.ID+1)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestListAllExpenses() {
	expenses, err := suite.service.ListAllExpenses(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 0)

	stuff := suite.createTestEnvelope("Stuff", "$400.00")
	other := suite.createTestEnvelope("Other", "$100.00")
	first := suite.createTestExpense(stuff.ID, "$1.00")
	second := suite.createTestExpense(other.ID, "$2.00")

	expenses, err = suite.service.ListAllExpenses(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal(first.ID, expenses[0].ID)
	suite.Assert().Equal(second.ID, expenses[1].ID)
	suite.Assert().Equal(other.ID, expenses[1].EnvelopeID)
}

func (suite *TestSuiteStandard) TestExpensesDoNotChangeBalance() {
	e := suite.createTestEnvelope("Stuff", "$400.00")
	expense := suite.createTestExpense(e.ID, "$150.00")

	got, err := suite.service.GetEnvelope(suite.ctx, e.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("$400.00", got.TotalAmountUSD.Format())

	_, err = suite.service.DeleteExpense(suite.ctx, e.ID, expense.ID)
	suite.Require().Nil(err)

	got, err = suite.service.GetEnvelope(suite.ctx, e.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("$400.00", got.TotalAmountUSD.Format())
}

func (suite *TestSuiteStandard) TestCreateExpenseErrors() {
	e := suite.createTestEnvelope("Stuff", "$400.00")

	tests := []struct {
		name       string
		envelopeID uint
		in         budget.ExpenseInput
		err        error
	}{
		{"invalid body", e.ID, budget.ExpenseInput{EnvelopeID: e.ID}, models.ErrValidation},
		{"zero amount", e.ID, budget.ExpenseInput{Description: "Zero", AmountUSD: amount("$0"), EnvelopeID: e.ID}, models.ErrValidation},
		{"envelope mismatch", e.ID, budget.ExpenseInput{Description: "Coffee", AmountUSD: amount("$3"), EnvelopeID: e.ID + 1}, budget.ErrEnvelopeIDMismatch},
		{"missing envelope", e.ID + 1, budget.ExpenseInput{Description: "Coffee", AmountUSD: amount("$3"), EnvelopeID: e.ID + 1}, models.ErrEnvelopeReference},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.service.CreateExpense(suite.ctx, tt.envelopeID, tt.in)
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpenseOwnership() {
	a := suite.createTestEnvelope("Stuff", "$400.00")
	b := suite.createTestEnvelope("Things", "$400.00")
	expense := suite.createTestExpense(a.ID, "$5.00")

	got, err := suite.service.GetExpense(suite.ctx, a.ID, expense.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("$5.00", got.AmountUSD.Format())
	suite.Assert().Equal("Test expense", got.Description)

	_, err = suite.service.GetExpense(suite.ctx, b.ID, expense.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.service.GetExpense(suite.ctx, b.ID+1, expense.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.service.GetExpense(suite.ctx, a.ID, expense.ID+1)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.service.DeleteExpense(suite.ctx, b.ID, expense.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	a := suite.createTestEnvelope("Stuff", "$400.00")
	b := suite.createTestEnvelope("Things", "$400.00")
	expense := suite.createTestExpense(a.ID, "$5.00")

	updated, err := suite.service.UpdateExpense(suite.ctx, a.ID, expense.ID, budget.ExpenseUpdate{
		ExpenseID: expense.ID,
		ExpenseInput: budget.ExpenseInput{
			Description: "Moved",
			AmountUSD:   amount("$6.00"),
			EnvelopeID:  b.ID,
		},
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(b.ID, updated.EnvelopeID)
	suite.Assert().Equal("$6.00", updated.AmountUSD.Format())

	// The expense now belongs to b
	_, err = suite.service.GetExpense(suite.ctx, a.ID, expense.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.service.GetExpense(suite.ctx, b.ID, expense.ID)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestUpdateExpenseErrors() {
	e := suite.createTestEnvelope("Stuff", "$400.00")
	expense := suite.createTestExpense(e.ID, "$5.00")

	valid := budget.ExpenseUpdate{
		ExpenseID: expense.ID,
		ExpenseInput: budget.ExpenseInput{
			Description: "Changed",
			AmountUSD:   amount("$6.00"),
			EnvelopeID:  e.ID,
		},
	}

	_, err := suite.service.UpdateExpense(suite.ctx, e.ID, expense.ID+1, valid)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	mismatch := valid
	mismatch.ExpenseID = expense.ID + 1
	_, err = suite.service.UpdateExpense(suite.ctx, e.ID, expense.ID, mismatch)
	suite.Assert().ErrorIs(err, budget.ErrExpenseIDMismatch)

	missingID := valid
	missingID.ExpenseID = 0
	_, err = suite.service.UpdateExpense(suite.ctx, e.ID, expense.ID, missingID)
	suite.Assert().ErrorIs(err, models.ErrValidation)
	suite.Assert().Contains(err.Error(), "expenseId is required")

	missingOwner := valid
	missingOwner.EnvelopeID = e.ID + 10
	_, err = suite.service.UpdateExpense(suite.ctx, e.ID, expense.ID, missingOwner)
	suite.Assert().ErrorIs(err, models.ErrEnvelopeReference)

	invalid := valid
	invalid.AmountUSD = amount("-$6.00")
	_, err = suite.service.UpdateExpense(suite.ctx, e.ID, expense.ID, invalid)
	suite.Assert().ErrorIs(err, models.ErrValidation)

	got, err := suite.service.GetExpense(suite.ctx, e.ID, expense.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Test expense", got.Description)
	suite.Assert().Equal("$5.00", got.AmountUSD.Format())
}
