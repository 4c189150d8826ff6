package home

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/portfolio/internal/backend/backendtest"
	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/platform/i18n"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seededFake() *backendtest.Fake {
	return backendtest.NewFake().
		Seed(content.TableSettings, backendtest.Row{"name": "Ada", "summary": "Builds analytical engines."}).
		Seed(content.TableProjects,
			backendtest.Row{"id": 1, "slug": "engine", "title": "Engine", "is_published": true, "is_featured": true, "created_at": "2024-01-01"},
			backendtest.Row{"id": 2, "slug": "notes", "title": "Notes", "is_published": true, "is_featured": false, "created_at": "2024-02-01"},
			backendtest.Row{"id": 3, "slug": "draft", "title": "Draft", "is_published": false, "is_featured": true, "created_at": "2024-03-01"},
		).
		Seed(content.TableSkills, backendtest.Row{"id": 1, "group_name": "Languages", "items": []string{"Go"}, "order_index": 0})
}

func mountHome(t *testing.T, fake *backendtest.Fake) http.Handler {
	t.Helper()
	deps := module.Dependencies{
		Content:     content.NewRepository(fake),
		PortraitURL: "https://cdn.example.com/me.jpg",
		Now:         func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/" {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, "/")
	}
	return mount.Handler
}

func TestMountRequiresGateway(t *testing.T) {
	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatalf("expected error without content gateway")
	}
}

func TestHomeRendersSnapshot(t *testing.T) {
	handler := mountHome(t, seededFake())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"<h1>Ada</h1>",
		"Builds analytical engines.",
		"Full-Stack Developer",
		"Available for work",
		`href="/projects/engine"`,
		"Languages",
		"https://cdn.example.com/me.jpg",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if strings.Contains(body, `href="/projects/draft"`) || strings.Contains(body, `href="/projects/notes"`) {
		t.Fatalf("only published featured projects should render")
	}
	if strings.Contains(body, "could not be loaded") {
		t.Fatalf("unexpected load error")
	}
}

func TestHomeMetricsUseProjectCountWithFloor(t *testing.T) {
	tests := []struct {
		name string
		fake *backendtest.Fake
		want string
	}{
		{name: "published count", fake: seededFake(), want: `data-target="2"`},
		{name: "zero falls back to three", fake: backendtest.NewFake(), want: `data-target="3"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			mountHome(t, tc.fake).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			body := rr.Body.String()
			if !strings.Contains(body, tc.want) {
				t.Fatalf("body missing %q", tc.want)
			}
			for _, label := range []string{"Platforms", "Hackathons", "Yrs Experience"} {
				if !strings.Contains(body, label) {
					t.Fatalf("body missing metric %q", label)
				}
			}
		})
	}
}

func TestHomeHeroDefaults(t *testing.T) {
	rr := httptest.NewRecorder()
	mountHome(t, backendtest.NewFake()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rr.Body.String()
	for _, want := range []string{"Mohd Irfan", "Building production software that solves real problems."} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing default %q", want)
		}
	}
	if strings.Contains(body, "Featured Projects") {
		t.Fatalf("featured section should be hidden without projects")
	}
}

func TestHomeAggregatesFailuresIntoOneMessage(t *testing.T) {
	fake := seededFake().
		Fail(content.TableProjects, errors.New("projects down")).
		Fail(content.TableSkills, errors.New("skills down"))
	rr := httptest.NewRecorder()
	mountHome(t, fake).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if got := strings.Count(body, `role="alert"`); got != 1 {
		t.Fatalf("alerts = %d, want 1", got)
	}
	if !strings.Contains(body, "Some content could not be loaded: featured projects, project count, skills") {
		t.Fatalf("unexpected aggregated error in %q", body)
	}
	if !strings.Contains(body, "<h1>Ada</h1>") {
		t.Fatalf("successful settings read should still render")
	}
}

func TestHomeLocalizesFailedSectionNames(t *testing.T) {
	fake := seededFake().
		Fail(content.TableProjects, errors.New("projects down")).
		Fail(content.TableSkills, errors.New("skills down"))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?"+i18n.LangParam+"=pt-BR", nil)
	mountHome(t, fake).ServeHTTP(rr, req)

	body := rr.Body.String()
	want := "Parte do conteúdo não pôde ser carregada: projetos em destaque, contagem de projetos, habilidades"
	if !strings.Contains(body, want) {
		t.Fatalf("body missing %q", want)
	}
	if strings.Contains(body, "featured projects") {
		t.Fatalf("section names should follow the page language")
	}
}

func TestHomeLocalizesMetrics(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?"+i18n.LangParam+"=pt-BR", nil)
	mountHome(t, seededFake()).ServeHTTP(rr, req)
	if strings.Contains(rr.Body.String(), "Yrs Experience") {
		t.Fatalf("expected localized metric labels")
	}
}

func TestHomeDiscardsResultsWhenRequestIsCancelled(t *testing.T) {
	fake := seededFake()
	fake.Block = make(chan struct{})
	handler := mountHome(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		handler.ServeHTTP(rr, req)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("handler did not return after cancellation")
	}
	// Release the shared settings load, which outlives the request.
	close(fake.Block)
	if rr.Body.Len() != 0 {
		t.Fatalf("expected nothing rendered, got %q", rr.Body.String())
	}
}

func TestHomeRejectsUnknownMethods(t *testing.T) {
	rr := httptest.NewRecorder()
	mountHome(t, seededFake()).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
