package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid request")
	ErrConflict         = errors.New("conflict")
)

var (
	ErrEnvelopeHasExpenses = fmt.Errorf("%w: envelope with associated expenses can't be deleted", ErrConflict)
	ErrEnvelopeModified    = fmt.Errorf("%w: the envelope was modified by another request, please try again", ErrConflict)
	ErrEnvelopeReference   = fmt.Errorf("%w: envelopeId does not reference an existing envelope", ErrValidation)
)

// notFound returns the error for a resource that does not exist.
func notFound(resource string, id any) error {
	return fmt.Errorf("%w %s with ID %v", ErrResourceNotFound, resource, id)
}
