package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/api/middleware"
)

func entryShow(t *testing.T, query string) entryResponse {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/assessment"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewEntryHandler().Show(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp entryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestEntryHandler_NoParams(t *testing.T) {
	resp := entryShow(t, "")
	if resp.Message != "" || resp.ClearParams {
		t.Fatalf("plain visit must carry no message: %+v", resp)
	}
}

func TestEntryHandler_LoginRequired(t *testing.T) {
	resp := entryShow(t, "?message="+middleware.ReasonLoginRequired+"&redirect=%2Fdashboard%2Fdoctor")
	if resp.Message != "Please log in to access this page." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Redirect != "/dashboard/doctor" {
		t.Fatalf("original destination lost: %q", resp.Redirect)
	}
	if !resp.ClearParams {
		t.Fatalf("client must be told to strip the parameters")
	}
}

func TestEntryHandler_Swahili(t *testing.T) {
	resp := entryShow(t, "?message="+middleware.ReasonSessionExpired+"&lang=sw")
	if resp.Message != "Muda wa kipindi chako umeisha. Tafadhali ingia tena." {
		t.Fatalf("unexpected swahili message: %q", resp.Message)
	}
}

func TestEntryHandler_AllReasonCodesResolve(t *testing.T) {
	codes := []string{
		middleware.ReasonLoginRequired,
		middleware.ReasonSessionExpired,
		middleware.ReasonInvalidSession,
		middleware.ReasonAccessDenied,
		middleware.ReasonDoctorAccessRequired,
		middleware.ReasonAdminAccessRequired,
	}
	for _, code := range codes {
		for _, lang := range []string{"en", "sw"} {
			resp := entryShow(t, "?message="+code+"&lang="+lang)
			if resp.Message == "" {
				t.Errorf("reason %s has no %s message", code, lang)
			}
		}
	}
}

func TestEntryHandler_UnknownCode(t *testing.T) {
	resp := entryShow(t, "?message=made_up_code")
	if resp.Message != "" {
		t.Fatalf("unknown code must not resolve to text, got %q", resp.Message)
	}
	if !resp.ClearParams {
		t.Fatalf("unknown codes must still be stripped from the URL")
	}
}
