package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestIsKind(t *testing.T) {
	if !IsKind(NotFound("patient"), KindNotFound) {
		t.Error("NotFound must match KindNotFound")
	}
	if IsKind(NotFound("patient"), KindValidation) {
		t.Error("NotFound must not match KindValidation")
	}
	if IsKind(errors.New("plain"), KindInternal) {
		t.Error("plain errors have no kind")
	}

	wrapped := fmt.Errorf("outer: %w", Precondition("clinical data not available"))
	if !IsKind(wrapped, KindPrecondition) {
		t.Error("IsKind must unwrap")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("service unreachable", cause)
	if !errors.Is(err, cause) {
		t.Error("Upstream must preserve its cause")
	}
}

func TestErrorString(t *testing.T) {
	err := Validation([]FieldViolation{
		{Field: "name", Message: "is required"},
		{Field: "age", Message: "is required"},
	})
	got := err.Error()
	if !strings.Contains(got, "name: is required") || !strings.Contains(got, "age: is required") {
		t.Errorf("violations missing from message: %q", got)
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	if c.Err() != nil {
		t.Error("empty collector must return nil")
	}

	c.Add("name", "is required")
	c.Addf("age", "must be at least %d", 0)

	err := c.Err()
	if !IsKind(err, KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var ae *Error
	errors.As(err, &ae)
	if len(ae.Violations) != 2 {
		t.Errorf("expected 2 violations, got %d", len(ae.Violations))
	}
}

func doRequest(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation([]FieldViolation{{Field: "name", Message: "is required"}}), http.StatusBadRequest},
		{"precondition", Precondition("clinical data not available"), http.StatusBadRequest},
		{"not_found", NotFound("patient"), http.StatusNotFound},
		{"upstream", Upstream("service unreachable", errors.New("dial tcp")), http.StatusInternalServerError},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doRequest(t, tt.err)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestHTTPErrorHandler_ValidationBody(t *testing.T) {
	_, body := doRequest(t, Validation([]FieldViolation{
		{Field: "name", Message: "is required"},
		{Field: "age", Message: "is required"},
	}))

	violations, ok := body["violations"].([]interface{})
	if !ok {
		t.Fatalf("expected violations array, got %v", body)
	}
	if len(violations) != 2 {
		t.Errorf("expected 2 violations, got %d", len(violations))
	}
}

func TestHTTPErrorHandler_CauseNotLeaked(t *testing.T) {
	rec, body := doRequest(t, Upstream("text generation service unreachable", errors.New("dial tcp 10.0.0.1: secret-host refused")))

	if strings.Contains(rec.Body.String(), "secret-host") {
		t.Error("cause must not leak to the caller")
	}
	if body["error"] != "text generation service unreachable" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec, _ := doRequest(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
