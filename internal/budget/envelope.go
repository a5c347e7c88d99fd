package budget

import (
	"context"

	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// ListEnvelopes returns all envelopes ordered by ID. If name is not empty,
// only envelopes with a name matching the glob pattern are returned.
func (s *Service) ListEnvelopes(ctx context.Context, name string) ([]models.Envelope, error) {
	envelopes, err := s.store.ListEnvelopes(ctx)
	if err != nil {
		return nil, err
	}

	if name != "" {
		envelopes = slices.DeleteFunc(envelopes, func(e models.Envelope) bool {
			return !glob.Glob(name, e.Name)
		})
	}

	return envelopes, nil
}

func (s *Service) GetEnvelope(ctx context.Context, id uint) (models.Envelope, error) {
	return s.store.GetEnvelope(ctx, id)
}

func (s *Service) CreateEnvelope(ctx context.Context, in EnvelopeInput) (models.Envelope, error) {
	if err := ValidateEnvelope(in); err != nil {
		return models.Envelope{}, err
	}

	return s.store.CreateEnvelope(ctx, models.Envelope{
		Name:           in.Name,
		Description:    in.Description,
		TotalAmountUSD: *in.TotalAmountUSD,
	})
}

// UpdateEnvelope replaces name, description and balance of an envelope.
func (s *Service) UpdateEnvelope(ctx context.Context, id uint, in EnvelopeInput) (models.Envelope, error) {
	var updated models.Envelope
	err := s.store.WithTx(ctx, func(r models.Repositories) error {
		envelope, err := r.GetEnvelope(ctx, id)
		if err != nil {
			return err
		}

		if err := ValidateEnvelope(in); err != nil {
			return err
		}

		if in.EnvelopeID != 0 && in.EnvelopeID != id {
			return ErrEnvelopeIDMismatch
		}

		envelope.Name = in.Name
		envelope.Description = in.Description
		envelope.TotalAmountUSD = *in.TotalAmountUSD

		updated, err = r.UpdateEnvelope(ctx, envelope)
		return err
	})

	return updated, err
}

// DeleteEnvelope deletes an envelope if no expenses reference it and
// returns the ID of the deleted envelope.
//
// The check and the deletion run in one transaction. The foreign key on
// expenses additionally restricts the deletion in the database.
func (s *Service) DeleteEnvelope(ctx context.Context, id uint) (uint, error) {
	err := s.store.WithTx(ctx, func(r models.Repositories) error {
		if _, err := r.GetEnvelope(ctx, id); err != nil {
			return err
		}

		count, err := r.CountExpensesByEnvelope(ctx, id)
		if err != nil {
			return err
		}

		if count > 0 {
			return models.ErrEnvelopeHasExpenses
		}

		return r.DeleteEnvelope(ctx, id)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}
