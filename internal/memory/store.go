// Package memory provides an in-memory models.Store for development and tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/envelope-zero/personal-budget/internal/models"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Store keeps envelopes and expenses in maps guarded by a single mutex.
type Store struct {
	mu    sync.Mutex
	state state
}

type state struct {
	envelopes    map[uint]models.Envelope
	expenses     map[uint]models.Expense
	lastEnvelope uint
	lastExpense  uint
}

var _ models.Store = &Store{}

func NewStore() *Store {
	return &Store{
		state: state{
			envelopes: make(map[uint]models.Envelope),
			expenses:  make(map[uint]models.Expense),
		},
	}
}

// WithTx executes fn within a transaction.
// The store is locked for the whole transaction, a snapshot is restored
// if fn fails.
func (s *Store) WithTx(ctx context.Context, fn func(models.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	snapshot := s.state.clone()
	if err := fn(&s.state); err != nil {
		s.state = snapshot
		return err
	}

	return nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) ListEnvelopes(ctx context.Context) ([]models.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ListEnvelopes(ctx)
}

func (s *Store) GetEnvelope(ctx context.Context, id uint) (models.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.GetEnvelope(ctx, id)
}

func (s *Store) CreateEnvelope(ctx context.Context, envelope models.Envelope) (models.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CreateEnvelope(ctx, envelope)
}

func (s *Store) UpdateEnvelope(ctx context.Context, envelope models.Envelope) (models.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UpdateEnvelope(ctx, envelope)
}

func (s *Store) DeleteEnvelope(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DeleteEnvelope(ctx, id)
}

func (s *Store) ListAllExpenses(ctx context.Context) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ListAllExpenses(ctx)
}

func (s *Store) ListExpensesByEnvelope(ctx context.Context, envelopeID uint) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ListExpensesByEnvelope(ctx, envelopeID)
}

func (s *Store) CountExpensesByEnvelope(ctx context.Context, envelopeID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CountExpensesByEnvelope(ctx, envelopeID)
}

func (s *Store) GetExpense(ctx context.Context, id uint) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.GetExpense(ctx, id)
}

func (s *Store) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CreateExpense(ctx, expense)
}

func (s *Store) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UpdateExpense(ctx, expense)
}

func (s *Store) DeleteExpense(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DeleteExpense(ctx, id)
}

// The methods on state expect the caller to hold the store lock.

func (st *state) clone() state {
	return state{
		envelopes:    maps.Clone(st.envelopes),
		expenses:     maps.Clone(st.expenses),
		lastEnvelope: st.lastEnvelope,
		lastExpense:  st.lastExpense,
	}
}

func (st *state) ListEnvelopes(_ context.Context) ([]models.Envelope, error) {
	ids := maps.Keys(st.envelopes)
	slices.Sort(ids)

	envelopes := make([]models.Envelope, 0, len(ids))
	for _, id := range ids {
		envelopes = append(envelopes, st.envelopes[id])
	}
	return envelopes, nil
}

func (st *state) GetEnvelope(_ context.Context, id uint) (models.Envelope, error) {
	envelope, ok := st.envelopes[id]
	if !ok {
		return models.Envelope{}, fmt.Errorf("%w envelope matching your query", models.ErrResourceNotFound)
	}
	return envelope, nil
}

func (st *state) CreateEnvelope(_ context.Context, envelope models.Envelope) (models.Envelope, error) {
	st.lastEnvelope++

	now := time.Now().UTC()
	envelope.ID = st.lastEnvelope
	envelope.Version = 1
	envelope.CreatedAt = now
	envelope.UpdatedAt = now

	st.envelopes[envelope.ID] = envelope
	return envelope, nil
}

func (st *state) UpdateEnvelope(ctx context.Context, envelope models.Envelope) (models.Envelope, error) {
	current, err := st.GetEnvelope(ctx, envelope.ID)
	if err != nil {
		return models.Envelope{}, err
	}

	if current.Version != envelope.Version {
		return models.Envelope{}, models.ErrEnvelopeModified
	}

	current.Name = envelope.Name
	current.Description = envelope.Description
	current.TotalAmountUSD = envelope.TotalAmountUSD
	current.Version++
	current.UpdatedAt = time.Now().UTC()

	st.envelopes[current.ID] = current
	return current, nil
}

func (st *state) DeleteEnvelope(ctx context.Context, id uint) error {
	if _, err := st.GetEnvelope(ctx, id); err != nil {
		return err
	}

	// Same restriction as the foreign key in the database
	count, err := st.CountExpensesByEnvelope(ctx, id)
	if err != nil {
		return err
	}

	if count > 0 {
		return models.ErrEnvelopeHasExpenses
	}

	delete(st.envelopes, id)
	return nil
}

func (st *state) ListAllExpenses(_ context.Context) ([]models.Expense, error) {
	ids := maps.Keys(st.expenses)
	slices.Sort(ids)

	expenses := make([]models.Expense, 0, len(ids))
	for _, id := range ids {
		expenses = append(expenses, st.expenses[id])
	}
	return expenses, nil
}

func (st *state) ListExpensesByEnvelope(ctx context.Context, envelopeID uint) ([]models.Expense, error) {
	expenses, err := st.ListAllExpenses(ctx)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(expenses, func(e models.Expense) bool {
		return e.EnvelopeID != envelopeID
	}), nil
}

func (st *state) CountExpensesByEnvelope(_ context.Context, envelopeID uint) (int64, error) {
	var count int64
	for _, expense := range st.expenses {
		if expense.EnvelopeID == envelopeID {
			count++
		}
	}
	return count, nil
}

func (st *state) GetExpense(_ context.Context, id uint) (models.Expense, error) {
	expense, ok := st.expenses[id]
	if !ok {
		return models.Expense{}, fmt.Errorf("%w expense matching your query", models.ErrResourceNotFound)
	}
	return expense, nil
}

func (st *state) CreateExpense(_ context.Context, expense models.Expense) (models.Expense, error) {
	if _, ok := st.envelopes[expense.EnvelopeID]; !ok {
		return models.Expense{}, models.ErrEnvelopeReference
	}

	st.lastExpense++

	now := time.Now().UTC()
	expense.ID = st.lastExpense
	expense.Envelope = models.Envelope{}
	expense.CreatedAt = now
	expense.UpdatedAt = now

	st.expenses[expense.ID] = expense
	return expense, nil
}

func (st *state) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	current, err := st.GetExpense(ctx, expense.ID)
	if err != nil {
		return models.Expense{}, err
	}

	if _, ok := st.envelopes[expense.EnvelopeID]; !ok {
		return models.Expense{}, models.ErrEnvelopeReference
	}

	current.Description = expense.Description
	current.AmountUSD = expense.AmountUSD
	current.EnvelopeID = expense.EnvelopeID
	current.UpdatedAt = time.Now().UTC()

	st.expenses[current.ID] = current
	return current, nil
}

func (st *state) DeleteExpense(ctx context.Context, id uint) error {
	if _, err := st.GetExpense(ctx, id); err != nil {
		return err
	}

	delete(st.expenses, id)
	return nil
}
