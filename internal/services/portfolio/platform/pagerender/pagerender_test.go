package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/backend/backendtest"
	"github.com/louisbranch/portfolio/internal/content"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/flash"
)

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

func testDependencies(fake *backendtest.Fake) module.Dependencies {
	return module.Dependencies{
		Content: content.NewRepository(fake),
		Now:     func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestWritePageRendersLayoutWithSettings(t *testing.T) {
	t.Parallel()

	fake := backendtest.NewFake().Seed(content.TableSettings, backendtest.Row{"name": "Ada Lovelace", "github": "https://github.com/ada"})
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, testDependencies(fake), Page{
		Title:      "About",
		StatusCode: http.StatusAccepted,
		Body:       textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"<!doctype html>",
		`id="fragment-root"`,
		"<title>About | Ada Lovelace</title>",
		"https://github.com/ada",
		"© 2026",
		`href="/about" aria-current="page"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestWritePageFallsBackWhenSettingsFail(t *testing.T) {
	t.Parallel()

	fake := backendtest.NewFake().Fail(content.TableSettings, errors.New("boom"))
	rr := httptest.NewRecorder()
	err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), testDependencies(fake), Page{Body: textComponent("home")})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Mohd Irfan") {
		t.Fatalf("expected default owner name in chrome")
	}
}

func TestWritePageConsumesFlashNotice(t *testing.T) {
	t.Parallel()

	seed := httptest.NewRecorder()
	flash.Write(seed, httptest.NewRequest(http.MethodPost, "/contact", nil), flash.Success("contact.sent"))
	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	for _, cookie := range seed.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()

	if err := WritePage(rr, req, module.Dependencies{}, Page{Body: textComponent("form")}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Message sent! I&#39;ll respond soon.") {
		t.Fatalf("body missing flash notice: %q", body)
	}
	cleared := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flash.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected flash cookie to be cleared")
	}
}

func TestWritePageUsesRequestedLanguage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	if err := WritePage(rr, req, module.Dependencies{}, Page{}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if !strings.Contains(rr.Body.String(), `<html lang="pt-BR">`) {
		t.Fatalf("expected pt-BR document")
	}
}

func TestWritePageSkipsCancelledRequests(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, module.Dependencies{}, Page{Body: textComponent("late")})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("WritePage() error = %v, want context.Canceled", err)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected no body for cancelled request, got %q", rr.Body.String())
	}
}

func TestWritePageReportsRenderErrorsWithoutWriting(t *testing.T) {
	t.Parallel()

	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("render failed") })
	rr := httptest.NewRecorder()
	err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), module.Dependencies{}, Page{Body: failing})
	if err == nil {
		t.Fatalf("expected render error")
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected no partial body")
	}
}
