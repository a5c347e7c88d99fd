package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on a gorm database.
type GormStore struct {
	db *gorm.DB
}

var _ Store = &GormStore{}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB returns the underlying gorm database.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

// Close closes the underlying database connection.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	err = sqlDB.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGeneral, err)
	}

	return nil
}

func (s *GormStore) WithTx(ctx context.Context, fn func(Repositories) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})

	// Errors from beginning or committing the transaction are not
	// passed through the callbacks
	if err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, ErrValidation) && !errors.Is(err, ErrConflict) && !errors.Is(err, ErrGeneral) {
		return fmt.Errorf("%w: %w", ErrGeneral, err)
	}

	return err
}

func (s *GormStore) ListEnvelopes(ctx context.Context) ([]Envelope, error) {
	var envelopes []Envelope
	err := s.db.WithContext(ctx).Order("id").Find(&envelopes).Error
	if err != nil {
		return nil, err
	}

	return envelopes, nil
}

func (s *GormStore) GetEnvelope(ctx context.Context, id uint) (Envelope, error) {
	var envelope Envelope
	err := s.db.WithContext(ctx).First(&envelope, id).Error
	return envelope, err
}

func (s *GormStore) CreateEnvelope(ctx context.Context, envelope Envelope) (Envelope, error) {
	envelope.ID = 0
	envelope.Version = 1

	err := s.db.WithContext(ctx).Create(&envelope).Error
	if err != nil {
		return Envelope{}, err
	}

	return s.GetEnvelope(ctx, envelope.ID)
}

func (s *GormStore) UpdateEnvelope(ctx context.Context, envelope Envelope) (Envelope, error) {
	tx := s.db.WithContext(ctx).Model(&Envelope{}).
		Where("id = ? AND version = ?", envelope.ID, envelope.Version).
		Updates(map[string]any{
			"name":             envelope.Name,
			"description":      envelope.Description,
			"total_amount_usd": envelope.TotalAmountUSD,
			"version":          gorm.Expr("version + 1"),
		})
	if tx.Error != nil {
		return Envelope{}, tx.Error
	}

	if tx.RowsAffected == 0 {
		// Either the envelope does not exist or its version changed
		_, err := s.GetEnvelope(ctx, envelope.ID)
		if err != nil {
			return Envelope{}, err
		}

		return Envelope{}, ErrEnvelopeModified
	}

	return s.GetEnvelope(ctx, envelope.ID)
}

func (s *GormStore) DeleteEnvelope(ctx context.Context, id uint) error {
	tx := s.db.WithContext(ctx).Delete(&Envelope{}, id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return notFound("envelope", id)
	}

	return nil
}

func (s *GormStore) ListAllExpenses(ctx context.Context) ([]Expense, error) {
	var expenses []Expense
	err := s.db.WithContext(ctx).Order("id").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (s *GormStore) ListExpensesByEnvelope(ctx context.Context, envelopeID uint) ([]Expense, error) {
	var expenses []Expense
	err := s.db.WithContext(ctx).Where("envelope_id = ?", envelopeID).Order("id").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (s *GormStore) CountExpensesByEnvelope(ctx context.Context, envelopeID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Expense{}).Where("envelope_id = ?", envelopeID).Count(&count).Error
	return count, err
}

func (s *GormStore) GetExpense(ctx context.Context, id uint) (Expense, error) {
	var expense Expense
	err := s.db.WithContext(ctx).First(&expense, id).Error
	return expense, err
}

func (s *GormStore) CreateExpense(ctx context.Context, expense Expense) (Expense, error) {
	expense.ID = 0

	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&expense).Error
	if err != nil {
		return Expense{}, err
	}

	return s.GetExpense(ctx, expense.ID)
}

func (s *GormStore) UpdateExpense(ctx context.Context, expense Expense) (Expense, error) {
	tx := s.db.WithContext(ctx).Model(&Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]any{
			"description": expense.Description,
			"amount_usd":  expense.AmountUSD,
			"envelope_id": expense.EnvelopeID,
		})
	if tx.Error != nil {
		return Expense{}, tx.Error
	}

	if tx.RowsAffected == 0 {
		return Expense{}, notFound("expense", expense.ID)
	}

	return s.GetExpense(ctx, expense.ID)
}

func (s *GormStore) DeleteExpense(ctx context.Context, id uint) error {
	tx := s.db.WithContext(ctx).Delete(&Expense{}, id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return notFound("expense", id)
	}

	return nil
}
