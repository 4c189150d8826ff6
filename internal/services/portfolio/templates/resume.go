package templates

import (
	"context"

	"github.com/a-h/templ"
)

// Resume renders the resume links, or a placeholder when no resume URL is
// configured.
func Resume(loc Localizer, resumeURL string) templ.Component {
	return component(func(_ context.Context, h *writer) {
		h.raw(`<section class="page-header"><h1>`)
		h.text(tr(loc, "resume.title"))
		h.raw(`</h1><p class="lead">`)
		h.text(tr(loc, "resume.lead"))
		h.raw(`</p></section>`)
		if resumeURL == "" {
			h.raw(`<p class="empty-state">`)
			h.text(tr(loc, "resume.coming_soon"))
			h.raw(`</p>`)
			return
		}
		h.raw(`<div class="actions"><a class="button button-primary" target="_blank" rel="noopener noreferrer"`)
		h.href("href", resumeURL)
		h.raw(`>`)
		h.text(tr(loc, "resume.view"))
		h.raw(`</a><a class="button" download`)
		h.href("href", resumeURL)
		h.raw(`>`)
		h.text(tr(loc, "resume.download"))
		h.raw(`</a></div>`)
	})
}
