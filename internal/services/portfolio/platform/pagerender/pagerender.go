// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/platform/i18n"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/flash"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Page describes a module page response. Loc and Lang are resolved from the
// request when Loc is nil.
type Page struct {
	Title      string
	StatusCode int
	Body       templ.Component
	Loc        templates.Localizer
	Lang       language.Tag
}

// Localizer resolves the request language once per request so handlers can
// localize view data before rendering.
func Localizer(w http.ResponseWriter, r *http.Request) (templates.Localizer, language.Tag) {
	return i18n.ResolveLocalizer(w, r)
}

// WritePage renders page inside the shared layout. The document is rendered
// into a buffer first so a render failure never leaves a partial response.
// Nothing is written when the request context is already done.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	ctx := requestContext(r)
	if err := ctx.Err(); err != nil {
		return err
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}
	loc, lang := page.Loc, page.Lang
	if loc == nil {
		loc, lang = Localizer(w, r)
	}

	chrome := templates.Chrome{
		Title:     page.Title,
		Lang:      lang.String(),
		Loc:       loc,
		Settings:  chromeSettings(ctx, deps),
		Languages: i18n.LanguageOptions(r, lang),
		Year:      deps.Clock().Year(),
	}
	if r != nil && r.URL != nil {
		chrome.CurrentPath = r.URL.Path
	}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		chrome.Notice = &templates.Notice{Kind: string(notice.Kind), Message: loc.Sprintf(notice.Key)}
	}

	var buf bytes.Buffer
	if err := templates.Layout(chrome, body).Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := buf.WriteTo(w)
	return err
}

// chromeSettings loads the memoized settings for the navbar and footer. A
// failed read falls back to the branding defaults.
func chromeSettings(ctx context.Context, deps module.Dependencies) content.Settings {
	if deps.Content == nil {
		return content.Settings{}
	}
	settings, err := deps.Content.Settings(ctx)
	if err != nil {
		deps.Log().Warn("load chrome settings", zap.Error(err))
		return content.Settings{}
	}
	return settings
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
