package appointment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	body := `{"pat_id":1,"doc_id":2,"app_date":"2024-06-01","app_time":"10:30"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var created Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Status != "Scheduled" {
		t.Errorf("expected status Scheduled, got %q", created.Status)
	}
	if created.Time != "10:30:00" {
		t.Errorf("expected canonical app_time, got %q", created.Time)
	}
}

func TestHandler_Create_BadDate(t *testing.T) {
	h, e := newTestHandler()
	body := `{"pat_id":1,"doc_id":2,"app_date":"01/06/2024","app_time":"10:30"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Update_NotFound(t *testing.T) {
	h, e := newTestHandler()
	body := `{"pat_id":1,"doc_id":2,"app_date":"2024-06-01","app_time":"10:30","status":"Confirmed"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
