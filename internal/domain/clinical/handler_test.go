package clinical

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wardscribe/wardscribe/internal/platform/apperror"
)

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerCreate(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}))

	body := `{
		"final_diagnosis": "Sepsis",
		"chief_complaints": "Fever",
		"hospital_course": "IV antibiotics",
		"investigations": "Blood cultures positive"
	}`
	c, rec := newTestContext(http.MethodPost, "/patients/1/clinical-data", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var got Data
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.PatientID != 1 {
		t.Errorf("expected patient_id 1, got %d", got.PatientID)
	}
}

func TestHandlerCreate_BadID(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}))

	c, _ := newTestContext(http.MethodPost, "/patients/abc/clinical-data", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Create(c)
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHandlerCreate_MissingFields(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}))

	c, _ := newTestContext(http.MethodPost, "/patients/1/clinical-data", `{"final_diagnosis":"Sepsis"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.Create(c)
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHandlerGetLatest(t *testing.T) {
	svc := NewService(&mockRepo{})
	if _, err := svc.Create(context.Background(), 1, validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	h := NewHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/patients/1/clinical-data", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.GetLatest(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandlerGetLatest_NotFound(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}))

	c, _ := newTestContext(http.MethodGet, "/patients/1/clinical-data", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.GetLatest(c)
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not_found error, got %v", err)
	}
}

func TestHandlerList(t *testing.T) {
	svc := NewService(&mockRepo{})
	for i := 0; i < 2; i++ {
		if _, err := svc.Create(context.Background(), 1, validInput()); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	h := NewHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/patients/1/clinical-data/history", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []*Data `json:"data"`
		Total int     `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected total 2, got %d", resp.Total)
	}
}
