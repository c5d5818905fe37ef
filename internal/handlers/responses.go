package handlers

import (
	"log/slog"
	"net/http"

	"family-ledger/internal/errors"
	"family-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// TraceIDContextKey is where RequestID stores the trace id on the echo context.
const TraceIDContextKey = "trace_id"

type ErrorResponse = errors.ErrorResponse

func traceID(c echo.Context) string {
	id, _ := c.Get(TraceIDContextKey).(string)
	return id
}

func writeError(c echo.Context, response *errors.ErrorResponse) error {
	return c.JSON(response.Status(), response)
}

// SendError answers with a fixed code, e.g. a missing token or a malformed
// path parameter.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	return writeError(c, errors.NewErrorResponse(code, traceID(c), opts...))
}

// SendDomainError answers a service failure. Unclassified errors become
// SYSTEM_001; missing and foreign resources share one body.
func SendDomainError(c echo.Context, err error) error {
	if domainErr, ok := errors.AsDomainError(err); ok {
		return writeError(c, errors.NewDomainErrorResponse(domainErr, traceID(c)))
	}
	return SendSystemError(c, err)
}

// SendValidationError lists the failing fields of a bound request.
func SendValidationError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errors.NewValidationErrorFromList(validation.FormatErrors(err), traceID(c)))
}

// SendSystemError logs err and answers with the generic SYSTEM_001 body.
func SendSystemError(c echo.Context, err error) error {
	id := traceID(c)
	response, internal := errors.WrapSystemError(err, id)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", id,
		"route", c.Path(),
		"method", c.Request().Method,
		"error", internal,
	)
	return writeError(c, response)
}
