package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrUnknownDepartment):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrDuplicateSubmission):
		return http.StatusConflict
	// Upstream timeouts wrap both, they are a timeout
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, models.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// fail writes the error response for err. The message is the error so that
// clients reading only success and message can show it.
func fail(c *gin.Context, err error) {
	code := status(err)
	message := err.Error()

	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err)

		if !errors.Is(err, models.ErrGeneral) {
			message = fmt.Sprintf("%s. The request id is '%s'", models.ErrGeneral, requestid.Get(c))
		}
	}

	var validation models.ValidationError
	field := ""
	if errors.As(err, &validation) {
		field = validation.Field
	}

	c.JSON(code, Response{
		Message: message,
		Error:   message,
		Field:   field,
	})
}

// Import errors
var (
	errNoFilePost      = fmt.Errorf("%w: you must send a file to this endpoint", models.ErrValidation)
	errWrongFileSuffix = fmt.Errorf("%w: this endpoint only supports files of the following types", models.ErrValidation)
	errUnknownSource   = fmt.Errorf("%w: the source must be 'file' or 'sheet'", models.ErrValidation)
	errSheetsDisabled  = fmt.Errorf("%w: no spreadsheet is configured, set SPREADSHEET_ID", models.ErrValidation)
)
