package models

import (
	"github.com/envelope-zero/personal-budget/internal/money"
)

// Expense is a spending record owned by exactly one envelope.
//
// The envelope can not be deleted as long as it owns expenses.
type Expense struct {
	ID          uint        `gorm:"primaryKey;autoIncrement"`
	Description string      `gorm:"not null"`
	AmountUSD   money.Money `gorm:"not null"`
	EnvelopeID  uint        `gorm:"not null;index"`
	Envelope    Envelope    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Timestamps
}
