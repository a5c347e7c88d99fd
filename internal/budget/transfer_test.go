package budget_test

import (
	"errors"
	"sync"

	"github.com/envelope-zero/personal-budget/internal/budget"
	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/envelope-zero/personal-budget/internal/money"
)

func (suite *TestSuiteStandard) TestTransfer() {
	a := suite.createTestEnvelope("Stuff", "$400.00")
	b := suite.createTestEnvelope("Things", "$100.00")

	result, err := suite.service.Transfer(suite.ctx, budget.TransferRequest{
		SourceEnvelopeID: a.ID,
		TargetEnvelopeID: b.ID,
		TransferAmount:   amount("$100.00"),
	})
	suite.Require().Nil(err)
	suite.Require().Len(result, 2)

	suite.Assert().Equal(a.ID, result[0].ID)
	suite.Assert().Equal("$300.00", result[0].TotalAmountUSD.Format())
	suite.Assert().Equal(b.ID, result[1].ID)
	suite.Assert().Equal("$200.00", result[1].TotalAmountUSD.Format())

	// Name and description are kept
	suite.Assert().Equal("Stuff", result[0].Name)
	suite.Assert().Equal("Test envelope", result[1].Description)

	got, err := suite.service.GetEnvelope(suite.ctx, a.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("$300.00", got.TotalAmountUSD.Format())
}

func (suite *TestSuiteStandard) TestTransferConservesTotal() {
	a := suite.createTestEnvelope("Stuff", "$0.30")
	b := suite.createTestEnvelope("Things", "$0.10")
	before := a.TotalAmountUSD.Add(b.TotalAmountUSD)

	result, err := suite.service.Transfer(suite.ctx, budget.TransferRequest{
		SourceEnvelopeID: a.ID,
		TargetEnvelopeID: b.ID,
		TransferAmount:   amount("$0.10"),
	})
	suite.Require().Nil(err)

	after := result[0].TotalAmountUSD.Add(result[1].TotalAmountUSD)
	suite.Assert().True(before.Equal(after), "Total changed from %s to %s", before, after)
	suite.Assert().Equal("$0.20", result[0].TotalAmountUSD.Format())
	suite.Assert().Equal("$0.20", result[1].TotalAmountUSD.Format())
}

func (suite *TestSuiteStandard) TestTransferErrors() {
	a := suite.createTestEnvelope("Stuff", "$400.00")
	b := suite.createTestEnvelope("Things", "$100.00")

	tests := []struct {
		name string
		req  budget.TransferRequest
		err  error
	}{
		{"whole balance", budget.TransferRequest{SourceEnvelopeID: a.ID, TargetEnvelopeID: b.ID, TransferAmount: amount("$400.00")}, budget.ErrTransferExceedsBalance},
		{"more than balance", budget.TransferRequest{SourceEnvelopeID: a.ID, TargetEnvelopeID: b.ID, TransferAmount: amount("$400.01")}, budget.ErrTransferExceedsBalance},
		{"zero amount", budget.TransferRequest{SourceEnvelopeID: a.ID, TargetEnvelopeID: b.ID, TransferAmount: amount("$0")}, budget.ErrTransferAmountNotPositive},
		{"negative amount", budget.TransferRequest{SourceEnvelopeID: a.ID, TargetEnvelopeID: b.ID, TransferAmount: amount("-$5")}, budget.ErrTransferAmountNotPositive},
		{"missing amount", budget.TransferRequest{SourceEnvelopeID: a.ID, TargetEnvelopeID: b.ID}, models.ErrValidation},
		{"same envelope", budget.TransferRequest{SourceEnvelopeID: a.ID, TargetEnvelopeID: a.ID, TransferAmount: amount("$1")}, budget.ErrTransferSameEnvelope},
		{"missing source", budget.TransferRequest{SourceEnvelopeID: b.ID + 1, TargetEnvelopeID: b.ID, TransferAmount: amount("$1")}, models.ErrResourceNotFound},
		{"missing target", budget.TransferRequest{SourceEnvelopeID: a.ID, TargetEnvelopeID: b.ID + 1, TransferAmount: amount("$1")}, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.Transfer(suite.ctx, tt.req)
			suite.Assert().ErrorIs(err, tt.err)
		})
	}

	// No transfer changed the balances
	got, err := suite.service.GetEnvelope(suite.ctx, a.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("$400.00", got.TotalAmountUSD.Format())

	got, err = suite.service.GetEnvelope(suite.ctx, b.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("$100.00", got.TotalAmountUSD.Format())
}

// TestConcurrentTransfers verifies that concurrent transfers from the same
// source can not overdraw it.
func (suite *TestSuiteStandard) TestConcurrentTransfers() {
	a := suite.createTestEnvelope("Stuff", "$400.00")
	b := suite.createTestEnvelope("Things", "$100.00")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := suite.service.Transfer(suite.ctx, budget.TransferRequest{
				SourceEnvelopeID: a.ID,
				TargetEnvelopeID: b.ID,
				TransferAmount:   amount("$100.00"),
			})

			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}

			// Losing transfers are rejected, never applied partially
			if !errors.Is(err, budget.ErrTransferExceedsBalance) && !errors.Is(err, models.ErrEnvelopeModified) {
				suite.T().Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	source, err := suite.service.GetEnvelope(suite.ctx, a.ID)
	suite.Require().Nil(err)
	target, err := suite.service.GetEnvelope(suite.ctx, b.ID)
	suite.Require().Nil(err)

	suite.Assert().Equal(3, succeeded)
	suite.Assert().Equal("$100.00", source.TotalAmountUSD.Format())
	suite.Assert().Equal("$400.00", target.TotalAmountUSD.Format())
	suite.Assert().True(source.TotalAmountUSD.Add(target.TotalAmountUSD).Equal(money.MustParse("$500.00")))
}

// TestDeleteRacesExpenseCreation verifies that an expense never references
// a deleted envelope, whichever request wins.
func (suite *TestSuiteStandard) TestDeleteRacesExpenseCreation() {
	for i := 0; i < 10; i++ {
		e := suite.createTestEnvelope("Stuff", "$400.00")

		var (
			wg        sync.WaitGroup
			deleteErr error
			createErr error
			expenseID uint
		)

		wg.Add(2)
		go func() {
			defer wg.Done()
			_, deleteErr = suite.service.DeleteEnvelope(suite.ctx, e.ID)
		}()
		go func() {
			defer wg.Done()
			var expense models.Expense
			expense, createErr = suite.service.CreateExpense(suite.ctx, e.ID, budget.ExpenseInput{
				Description: "Racing",
				AmountUSD:   amount("$1.00"),
				EnvelopeID:  e.ID,
			})
			expenseID = expense.ID
		}()
		wg.Wait()

		if deleteErr == nil {
			suite.Assert().ErrorIs(createErr, models.ErrEnvelopeReference)

			_, err := suite.store.GetExpense(suite.ctx, expenseID)
			suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
			continue
		}

		suite.Assert().ErrorIs(deleteErr, models.ErrEnvelopeHasExpenses)
		suite.Assert().Nil(createErr)

		_, err := suite.service.GetExpense(suite.ctx, e.ID, expenseID)
		suite.Assert().Nil(err)
	}
}
