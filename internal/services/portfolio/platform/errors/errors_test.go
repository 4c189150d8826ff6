package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/louisbranch/portfolio/internal/backend"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: Invalid("contact.failed", stderrors.New("bad form")), want: http.StatusUnprocessableEntity},
		{name: "not found", err: NotFound("error.not_found.title"), want: http.StatusNotFound},
		{name: "remote wrapped", err: Remote("error.server.body", stderrors.New("timeout")), want: http.StatusBadGateway},
		{name: "wrapped no rows", err: fmt.Errorf("project: %w", backend.ErrNoRows), want: http.StatusNotFound},
		{name: "remote 503", err: fmt.Errorf("select: %w", &backend.Error{Status: 503}), want: http.StatusBadGateway},
		{name: "remote 400", err: &backend.Error{Status: 400}, want: http.StatusInternalServerError},
		{name: "plain", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLocalizationKeySurvivesWrapping(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("timeout")
	err := fmt.Errorf("load: %w", Remote(" error.server.body ", cause))
	if got := LocalizationKey(err); got != "error.server.body" {
		t.Fatalf("LocalizationKey() = %q, want %q", got, "error.server.body")
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("wrapped error should unwrap to cause")
	}
	if got := err.Error(); got != "load: remote query failed: timeout" {
		t.Fatalf("Error() = %q", got)
	}
	if Remote("k", nil) != nil {
		t.Fatal("Remote(nil) should be nil")
	}
	if got := LocalizationKey(cause); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q", got)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	if got := KindOf(NotFound("x")); got != KindNotFound {
		t.Fatalf("KindOf(NotFound) = %v", got)
	}
	if got := KindOf(stderrors.New("boom")); got != KindInternal {
		t.Fatalf("KindOf(plain) = %v", got)
	}
	if got := KindOf(&backend.Error{Status: 502}); got.String() != "remote query failed" {
		t.Fatalf("KindOf(502).String() = %q", got.String())
	}
}
