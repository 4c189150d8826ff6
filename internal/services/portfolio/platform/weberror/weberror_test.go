package weberror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/portfolio/internal/backend"
	"github.com/louisbranch/portfolio/internal/platform/i18n"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	apperrors "github.com/louisbranch/portfolio/internal/services/portfolio/platform/errors"
)

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]bool{
		http.StatusNotFound:            true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusUnprocessableEntity: false,
		http.StatusBadRequest:          false,
	} {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestPublicMessagePrefersLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := i18n.Printer(i18n.Default())
	err := apperrors.Invalid("contact.failed", errors.New("insert failed"))
	if got := PublicMessage(loc, err); got != "Failed to send. Please try again." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(loc, errors.New("boom")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
}

func TestWriteAppErrorRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/missing", nil), http.StatusNotFound, module.Dependencies{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Page not found") || !strings.Contains(body, "<!doctype html>") {
		t.Fatalf("expected full not found page, got %q", body)
	}
}

func TestWriteAppErrorCoercesClientStatuses(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, module.Dependencies{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestWriteModuleErrorMapsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		want     int
		wantPage bool
	}{
		{name: "no rows", err: fmt.Errorf("project: %w", backend.ErrNoRows), want: http.StatusNotFound, wantPage: true},
		{name: "remote outage", err: &backend.Error{Status: http.StatusServiceUnavailable}, want: http.StatusBadGateway, wantPage: true},
		{name: "invalid input", err: apperrors.Invalid("", errors.New("bad form")), want: http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteModuleError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tc.err, module.Dependencies{})
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
			if got := strings.Contains(rr.Body.String(), "<!doctype html>"); got != tc.wantPage {
				t.Fatalf("full page = %v, want %v", got, tc.wantPage)
			}
		})
	}
}
