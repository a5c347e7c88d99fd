package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/envelope-zero/personal-budget/internal/money"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data.
//
// All returned errors wrap models.ErrValidation.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		if errors.Is(err, money.ErrInvalidAmount) {
			return fmt.Errorf("%w: %w", models.ErrValidation, err)
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return fmt.Errorf("%w: %s must be of type %s", models.ErrValidation, jsonUnmarshalTypeError.Field, jsonUnmarshalTypeError.Type)
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}
