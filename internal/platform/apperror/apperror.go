// Package apperror defines the error taxonomy shared by all domain services
// and the echo error handler that maps it onto HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Kind classifies an error for transport mapping and caller recovery.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindPrecondition Kind = "precondition"
	KindUpstream     Kind = "upstream"
	KindInternal     Kind = "internal"
)

// FieldViolation names a single invalid input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries a kind, a caller-safe message and, for validation failures,
// the full batch of field violations.
type Error struct {
	Kind       Kind             `json:"kind"`
	Message    string           `json:"message"`
	Violations []FieldViolation `json:"violations,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if len(e.Violations) > 0 {
		parts := make([]string, len(e.Violations))
		for i, v := range e.Violations {
			parts[i] = v.Field + ": " + v.Message
		}
		return e.Message + " (" + strings.Join(parts, "; ") + ")"
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func Precondition(msg string) *Error {
	return &Error{Kind: KindPrecondition, Message: msg}
}

func Upstream(msg string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: msg, cause: cause}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", cause: cause}
}

func Validation(violations []FieldViolation) *Error {
	return &Error{Kind: KindValidation, Message: "invalid input", Violations: violations}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// Collector accumulates field violations so a caller sees every invalid
// field at once instead of only the first.
type Collector struct {
	violations []FieldViolation
}

func (c *Collector) Add(field, message string) {
	c.violations = append(c.violations, FieldViolation{Field: field, Message: message})
}

func (c *Collector) Addf(field, format string, args ...interface{}) {
	c.Add(field, fmt.Sprintf(format, args...))
}

// Err returns a validation Error when any violation was recorded, nil otherwise.
func (c *Collector) Err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return Validation(c.violations)
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindPrecondition:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HTTPErrorHandler returns an echo error handler that renders *Error values
// as structured JSON. Internal and upstream causes are logged but never
// leaked to the caller.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		rid, _ := c.Get("request_id").(string)

		var ae *Error
		if errors.As(err, &ae) {
			if ae.Kind == KindInternal || ae.Kind == KindUpstream {
				logger.Error().
					Str("request_id", rid).
					Str("kind", string(ae.Kind)).
					Err(errors.Unwrap(ae)).
					Msg(ae.Message)
			}
			body := map[string]interface{}{
				"error": ae.Message,
				"kind":  ae.Kind,
			}
			if len(ae.Violations) > 0 {
				body["violations"] = ae.Violations
			}
			_ = c.JSON(statusFor(ae.Kind), body)
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, map[string]interface{}{
				"error": fmt.Sprintf("%v", he.Message),
			})
			return
		}

		logger.Error().Str("request_id", rid).Err(err).Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "internal error",
			"kind":  KindInternal,
		})
	}
}
