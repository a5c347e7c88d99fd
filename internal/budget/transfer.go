package budget

import (
	"context"

	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/rs/zerolog/log"
)

type transferState string

const (
	stateValidating     transferState = "validating"
	stateFetching       transferState = "fetching"
	stateComputing      transferState = "computing"
	stateUpdatingSource transferState = "updating source"
	stateUpdatingTarget transferState = "updating target"
	stateDone           transferState = "done"
	stateAborted        transferState = "aborted"
)

// Transfer moves the transfer amount from the source to the target envelope
// and returns both updated envelopes, source first.
//
// A transfer of the whole source balance or more is rejected. Both updates
// run in one transaction, a failure at any step leaves both envelopes
// unchanged.
func (s *Service) Transfer(ctx context.Context, req TransferRequest) ([]models.Envelope, error) {
	logger := log.With().
		Uint("source", req.SourceEnvelopeID).
		Uint("target", req.TargetEnvelopeID).
		Logger()

	state := stateValidating
	transition := func(next transferState) {
		logger.Debug().Str("from", string(state)).Str("to", string(next)).Msg("Transfer")
		state = next
	}

	var result []models.Envelope
	err := s.store.WithTx(ctx, func(r models.Repositories) error {
		if err := ValidateTransfer(req); err != nil {
			return err
		}

		transition(stateFetching)
		source, err := r.GetEnvelope(ctx, req.SourceEnvelopeID)
		if err != nil {
			return err
		}

		target, err := r.GetEnvelope(ctx, req.TargetEnvelopeID)
		if err != nil {
			return err
		}

		if source.ID == target.ID {
			return ErrTransferSameEnvelope
		}

		transition(stateComputing)
		amount := *req.TransferAmount
		if amount.Cmp(source.TotalAmountUSD) >= 0 {
			return ErrTransferExceedsBalance
		}

		source.TotalAmountUSD = source.TotalAmountUSD.Sub(amount)
		target.TotalAmountUSD = target.TotalAmountUSD.Add(amount)

		transition(stateUpdatingSource)
		source, err = r.UpdateEnvelope(ctx, source)
		if err != nil {
			return err
		}

		transition(stateUpdatingTarget)
		target, err = r.UpdateEnvelope(ctx, target)
		if err != nil {
			return err
		}

		result = []models.Envelope{source, target}
		return nil
	})
	if err != nil {
		logger.Debug().Err(err).Str("from", string(state)).Str("to", string(stateAborted)).Msg("Transfer")
		return nil, err
	}

	transition(stateDone)
	return result, nil
}
