package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/envelope-zero/personal-budget/internal/models"
)

// ownedExpense returns the expense if the envelope exists and owns it.
func ownedExpense(ctx context.Context, r models.Repositories, envelopeID, id uint) (models.Expense, error) {
	if _, err := r.GetEnvelope(ctx, envelopeID); err != nil {
		return models.Expense{}, err
	}

	expense, err := r.GetExpense(ctx, id)
	if err != nil {
		return models.Expense{}, err
	}

	if expense.EnvelopeID != envelopeID {
		return models.Expense{}, fmt.Errorf("%w expense with ID %d in envelope %d", models.ErrResourceNotFound, id, envelopeID)
	}

	return expense, nil
}

// ensureEnvelope verifies that an expense can reference the envelope.
func ensureEnvelope(ctx context.Context, r models.Repositories, envelopeID uint) error {
	_, err := r.GetEnvelope(ctx, envelopeID)
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.ErrEnvelopeReference
	}
	return err
}

// ListExpenses returns the expenses of an envelope. An envelope without
// expenses yields an empty list, a missing envelope yields ErrResourceNotFound.
func (s *Service) ListExpenses(ctx context.Context, envelopeID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.store.WithTx(ctx, func(r models.Repositories) error {
		if _, err := r.GetEnvelope(ctx, envelopeID); err != nil {
			return err
		}

		var err error
		expenses, err = r.ListExpensesByEnvelope(ctx, envelopeID)
		return err
	})

	return expenses, err
}

// ListAllExpenses returns the expenses of all envelopes.
func (s *Service) ListAllExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.store.ListAllExpenses(ctx)
}

func (s *Service) GetExpense(ctx context.Context, envelopeID, id uint) (models.Expense, error) {
	return ownedExpense(ctx, s.store, envelopeID, id)
}

// CreateExpense creates an expense in the envelope with ID envelopeID.
func (s *Service) CreateExpense(ctx context.Context, envelopeID uint, in ExpenseInput) (models.Expense, error) {
	if err := ValidateExpense(in); err != nil {
		return models.Expense{}, err
	}

	if in.EnvelopeID != envelopeID {
		return models.Expense{}, ErrEnvelopeIDMismatch
	}

	var created models.Expense
	err := s.store.WithTx(ctx, func(r models.Repositories) error {
		if err := ensureEnvelope(ctx, r, in.EnvelopeID); err != nil {
			return err
		}

		var err error
		created, err = r.CreateExpense(ctx, models.Expense{
			Description: in.Description,
			AmountUSD:   *in.AmountUSD,
			EnvelopeID:  in.EnvelopeID,
		})
		return err
	})

	return created, err
}

// UpdateExpense replaces an expense. The expense can be moved to another
// envelope by setting a different envelopeId in the body.
func (s *Service) UpdateExpense(ctx context.Context, envelopeID, id uint, in ExpenseUpdate) (models.Expense, error) {
	var updated models.Expense
	err := s.store.WithTx(ctx, func(r models.Repositories) error {
		expense, err := ownedExpense(ctx, r, envelopeID, id)
		if err != nil {
			return err
		}

		if err := validateExpenseUpdate(in); err != nil {
			return err
		}

		if in.ExpenseID != id {
			return ErrExpenseIDMismatch
		}

		if in.EnvelopeID != expense.EnvelopeID {
			if err := ensureEnvelope(ctx, r, in.EnvelopeID); err != nil {
				return err
			}
		}

		expense.Description = in.Description
		expense.AmountUSD = *in.AmountUSD
		expense.EnvelopeID = in.EnvelopeID

		updated, err = r.UpdateExpense(ctx, expense)
		return err
	})

	return updated, err
}

// DeleteExpense deletes an expense and returns its ID. The balance of the
// envelope is not changed.
func (s *Service) DeleteExpense(ctx context.Context, envelopeID, id uint) (uint, error) {
	err := s.store.WithTx(ctx, func(r models.Repositories) error {
		if _, err := ownedExpense(ctx, r, envelopeID, id); err != nil {
			return err
		}

		return r.DeleteExpense(ctx, id)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}
