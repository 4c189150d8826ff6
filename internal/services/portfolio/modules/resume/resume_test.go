package resume

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

type staticSettings struct {
	settings content.Settings
	err      error
}

func (s staticSettings) Settings(context.Context) (content.Settings, error) {
	return s.settings, s.err
}

func getResume(t *testing.T, source module.SettingsSource) string {
	t.Helper()
	mount, err := NewWithSettings(source).Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Resume, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	return rr.Body.String()
}

func TestResumeRendersLinksWhenConfigured(t *testing.T) {
	t.Parallel()

	body := getResume(t, staticSettings{settings: content.Settings{ResumeURL: "https://cdn.example.com/cv.pdf"}})
	if got := strings.Count(body, `href="https://cdn.example.com/cv.pdf"`); got != 2 {
		t.Fatalf("resume links = %d, want 2", got)
	}
	if !strings.Contains(body, "View Resume") || !strings.Contains(body, "Download") {
		t.Fatalf("missing resume actions")
	}
	if strings.Contains(body, "Resume coming soon.") {
		t.Fatalf("placeholder should be hidden")
	}
}

func TestResumePlaceholderWithoutURL(t *testing.T) {
	t.Parallel()

	for name, source := range map[string]staticSettings{
		"blank":  {settings: content.Settings{ResumeURL: "  "}},
		"failed": {err: errors.New("down")},
	} {
		body := getResume(t, source)
		if !strings.Contains(body, "Resume coming soon.") {
			t.Fatalf("%s: placeholder missing", name)
		}
		if strings.Contains(body, ">Download<") {
			t.Fatalf("%s: download link should be hidden", name)
		}
	}
}

func TestMountRequiresSettings(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatalf("expected error without settings source")
	}
}
