package models

import "context"

// EnvelopeRepository persists envelopes.
type EnvelopeRepository interface {
	ListEnvelopes(ctx context.Context) ([]Envelope, error)
	GetEnvelope(ctx context.Context, id uint) (Envelope, error)
	CreateEnvelope(ctx context.Context, envelope Envelope) (Envelope, error)

	// UpdateEnvelope replaces name, description and balance of the
	// envelope. It only succeeds if the stored version equals the version
	// of the passed envelope and increments the version.
	UpdateEnvelope(ctx context.Context, envelope Envelope) (Envelope, error)
	DeleteEnvelope(ctx context.Context, id uint) error
}

// ExpenseRepository persists expenses.
type ExpenseRepository interface {
	// ListAllExpenses returns the expenses of all envelopes ordered by ID.
	ListAllExpenses(ctx context.Context) ([]Expense, error)
	ListExpensesByEnvelope(ctx context.Context, envelopeID uint) ([]Expense, error)
	CountExpensesByEnvelope(ctx context.Context, envelopeID uint) (int64, error)
	GetExpense(ctx context.Context, id uint) (Expense, error)
	CreateExpense(ctx context.Context, expense Expense) (Expense, error)
	UpdateExpense(ctx context.Context, expense Expense) (Expense, error)
	DeleteExpense(ctx context.Context, id uint) error
}

type Repositories interface {
	EnvelopeRepository
	ExpenseRepository
}

// Store is the persistence layer of the API.
type Store interface {
	Repositories

	// WithTx runs fn in a transaction. If fn returns an error, all changes
	// made through the Repositories passed to fn are rolled back.
	WithTx(ctx context.Context, fn func(Repositories) error) error

	// Ping verifies that the store is reachable.
	Ping(ctx context.Context) error
}
