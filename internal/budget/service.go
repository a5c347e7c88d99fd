// Package budget implements the rules that keep envelope balances, their
// expenses and transfers between envelopes consistent.
//
// All multi-step operations run inside a single store transaction.
package budget

import (
	"fmt"

	"github.com/envelope-zero/personal-budget/internal/models"
)

var (
	ErrEnvelopeIDMismatch        = fmt.Errorf("%w: envelopeId in the request body does not match the envelope ID in the URL", models.ErrValidation)
	ErrExpenseIDMismatch         = fmt.Errorf("%w: expenseId in the request body does not match the expense ID in the URL", models.ErrValidation)
	ErrTransferAmountNotPositive = fmt.Errorf("%w: transferAmount must be greater than zero", models.ErrValidation)
	ErrTransferSameEnvelope      = fmt.Errorf("%w: source and target envelope must be different", models.ErrValidation)
	ErrTransferExceedsBalance    = fmt.Errorf("%w: transfer amount exceeds source balance", models.ErrValidation)
)

// Service exposes the budget operations on top of a Store.
type Service struct {
	store models.Store
}

func New(store models.Store) *Service {
	return &Service{store: store}
}

// Store returns the underlying store.
func (s *Service) Store() models.Store {
	return s.store
}
