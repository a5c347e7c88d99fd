package controllers

import (
	"bytes"
	"encoding/json"

	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/envelope-zero/personal-budget/internal/money"
)

// Envelope is the API representation of an envelope.
type Envelope struct {
	ID             uint        `json:"envelopeId" example:"1"`
	Name           string      `json:"envelopeName" example:"Groceries"`
	Description    string      `json:"envelopeDescription" example:"Food and household."`
	TotalAmountUSD money.Money `json:"totalAmountUSD" swaggertype:"string" example:"$400.00"`
}

func newEnvelope(e models.Envelope) Envelope {
	return Envelope{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		TotalAmountUSD: e.TotalAmountUSD,
	}
}

func newEnvelopes(envelopes []models.Envelope) []Envelope {
	data := make([]Envelope, 0, len(envelopes))
	for _, e := range envelopes {
		data = append(data, newEnvelope(e))
	}
	return data
}

// Expense is the API representation of an expense.
type Expense struct {
	ID          uint        `json:"expenseId" example:"3"`
	Description string      `json:"expenseDescription" example:"Weekly shopping."`
	AmountUSD   money.Money `json:"expenseAmountUSD" swaggertype:"string" example:"$52.30"`
	EnvelopeID  uint        `json:"envelopeId" example:"1"`
}

func newExpense(e models.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Description: e.Description,
		AmountUSD:   e.AmountUSD,
		EnvelopeID:  e.EnvelopeID,
	}
}

// TransferRequest is the body for a transfer between envelopes.
type TransferRequest struct {
	SourceEnvelopeID flexibleID   `json:"sourceEnvelopeId" swaggertype:"integer" example:"1"`
	TargetEnvelopeID flexibleID   `json:"targetEnvelopeId" swaggertype:"integer" example:"2"`
	TransferAmount   *money.Money `json:"transferAmount" swaggertype:"string" example:"$100.00"`
}

// flexibleID accepts an ID as JSON number or string. Decoding never fails,
// values that are not IDs are rejected when they are parsed.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexibleID(s)
		return nil
	}

	*f = flexibleID(bytes.TrimSpace(data))
	return nil
}

// QueryEnvelopes filters the envelope list.
type QueryEnvelopes struct {
	Name string `form:"name" example:"G*"`
}
