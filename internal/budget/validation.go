package budget

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/envelope-zero/personal-budget/internal/money"
	"github.com/go-playground/validator/v10"
)

var (
	descriptionPattern = regexp.MustCompile(`^[a-zA-Z\s]+\.?$`)
	validate           = newValidator()
)

// EnvelopeInput contains the fields of an envelope that clients set.
type EnvelopeInput struct {
	Name           string       `json:"envelopeName" validate:"required,max=29,alpha" example:"Groceries"`
	Description    string       `json:"envelopeDescription" validate:"required,max=99,description" example:"Food and household items."`
	TotalAmountUSD *money.Money `json:"totalAmountUSD" validate:"required" swaggertype:"string" example:"$400.00"`

	// EnvelopeID is optional. If set on update, it must match the envelope that is updated
	EnvelopeID uint `json:"envelopeId,omitempty" example:"1"`
}

// ExpenseInput contains the fields of an expense that clients set.
type ExpenseInput struct {
	Description string       `json:"expenseDescription" validate:"required,max=99,description" example:"Weekly shopping."`
	AmountUSD   *money.Money `json:"expenseAmountUSD" validate:"required" swaggertype:"string" example:"$52.30"`
	EnvelopeID  uint         `json:"envelopeId" validate:"required" example:"1"`
}

// ExpenseUpdate is the body for replacing an expense.
type ExpenseUpdate struct {
	ExpenseID uint `json:"expenseId" validate:"required" example:"3"`
	ExpenseInput
}

// TransferRequest moves TransferAmount from the source to the target envelope.
type TransferRequest struct {
	SourceEnvelopeID uint
	TargetEnvelopeID uint
	TransferAmount   *money.Money
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields with the names clients use
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	err := v.RegisterValidation("description", func(fl validator.FieldLevel) bool {
		return descriptionPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	return v
}

func validationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s characters", e.Field(), e.Param())
	case "alpha":
		return fmt.Sprintf("%s must only contain letters", e.Field())
	case "description":
		return fmt.Sprintf("%s must only contain letters and whitespace with an optional period at the end", e.Field())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// problems runs the struct validation and returns all violations as text.
func problems(s any) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}

	texts := make([]string, 0, len(errs))
	for _, e := range errs {
		texts = append(texts, validationErrorToText(e))
	}
	return texts
}

func toError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", models.ErrValidation, strings.Join(problems, ", "))
}

// ValidateEnvelope checks an envelope payload and reports all problems at once.
func ValidateEnvelope(in EnvelopeInput) error {
	return toError(problems(in))
}

// ValidateExpense checks an expense payload and reports all problems at once.
//
// Whether the envelope exists is checked when the expense is written.
func ValidateExpense(in ExpenseInput) error {
	p := problems(in)
	if in.AmountUSD != nil && !in.AmountUSD.IsPositive() {
		p = append(p, "expenseAmountUSD must be greater than zero")
	}

	return toError(p)
}

func validateExpenseUpdate(in ExpenseUpdate) error {
	p := problems(in)
	if in.AmountUSD != nil && !in.AmountUSD.IsPositive() {
		p = append(p, "expenseAmountUSD must be greater than zero")
	}

	return toError(p)
}

func IsValidEnvelope(in EnvelopeInput) bool {
	return ValidateEnvelope(in) == nil
}

func IsValidExpense(in ExpenseInput) bool {
	return ValidateExpense(in) == nil
}

// ValidateTransfer checks the transfer amount. Envelope existence and the
// balance of the source envelope are checked by Transfer.
func ValidateTransfer(req TransferRequest) error {
	if req.TransferAmount == nil {
		return fmt.Errorf("%w: transferAmount is required", models.ErrValidation)
	}

	if !req.TransferAmount.IsPositive() {
		return ErrTransferAmountNotPositive
	}

	return nil
}
