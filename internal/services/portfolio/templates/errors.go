package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// ErrorPageTitle returns the localized title for statusCode.
func ErrorPageTitle(loc Localizer, statusCode int) string {
	if statusCode == http.StatusNotFound {
		return tr(loc, "error.not_found.title")
	}
	return tr(loc, "error.server.title")
}

// ErrorState renders the body of the not-found and server error pages.
func ErrorState(loc Localizer, statusCode int) templ.Component {
	return component(func(_ context.Context, h *writer) {
		body := "error.server.body"
		if statusCode == http.StatusNotFound {
			body = "error.not_found.body"
		}
		h.raw(`<section class="error-state"><p class="error-code">`, itoa(statusCode), `</p><h1>`)
		h.text(ErrorPageTitle(loc, statusCode))
		h.raw(`</h1><p>`)
		h.text(tr(loc, body))
		h.raw(`</p><a class="button"`)
		h.href("href", routepath.Home)
		h.raw(`>`)
		h.text(tr(loc, "error.home"))
		h.raw(`</a></section>`)
	})
}
