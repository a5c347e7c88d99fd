package models

import (
	"github.com/envelope-zero/personal-budget/internal/money"
)

// Envelope is a named budget category holding a USD balance.
type Envelope struct {
	ID             uint        `gorm:"primaryKey;autoIncrement"`
	Name           string      `gorm:"not null"`
	Description    string      `gorm:"not null"`
	TotalAmountUSD money.Money `gorm:"not null"`

	// Version is incremented on every update and used to detect
	// concurrent modifications
	Version uint `gorm:"not null;default:1"`

	Timestamps
}
