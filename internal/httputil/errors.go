package httputil

import (
	"fmt"

	"github.com/envelope-zero/personal-budget/internal/models"
)

var (
	ErrInvalidBody      = fmt.Errorf("%w: the body of your request contains invalid or un-parseable data. Please check and try again", models.ErrValidation)
	ErrRequestBodyEmpty = fmt.Errorf("%w: the request body must not be empty", models.ErrValidation)
)
