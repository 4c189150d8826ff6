package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/content"
)

// AboutView is the data the about page renders. A nil section failed to load
// and is hidden.
type AboutView struct {
	Name         string
	Summary      string
	Experience   []content.Experience
	Skills       []content.SkillGroup
	Testimonials []content.Testimonial
}

// About renders the biography, experience, skills and testimonials.
func About(loc Localizer, view AboutView) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.raw(`<section class="page-header"><h1>`)
		h.text(tr(loc, "about.title"))
		h.raw(`</h1>`)
		if view.Summary != "" {
			h.raw(`<p class="lead">`)
			h.text(view.Summary)
			h.raw(`</p>`)
		}
		h.raw(`</section>`)

		if len(view.Experience) > 0 {
			h.raw(`<section class="section experience"><h2>`)
			h.text(tr(loc, "about.experience"))
			h.raw(`</h2><ol class="timeline">`)
			for _, exp := range view.Experience {
				h.raw(`<li class="reveal"><h3>`)
				h.text(exp.Role)
				h.raw(`</h3><p class="company">`)
				h.text(exp.Company)
				h.raw(`</p><p class="period">`)
				h.text(Period(loc, exp))
				h.raw(`</p>`)
				if exp.Description != "" {
					h.raw(`<p>`)
					h.text(exp.Description)
					h.raw(`</p>`)
				}
				h.raw(`</li>`)
			}
			h.raw(`</ol></section>`)
		}

		if len(view.Skills) > 0 {
			h.raw(`<section class="section skills"><h2>`)
			h.text(tr(loc, "about.skills"))
			h.raw(`</h2>`)
			h.render(ctx, SkillGroups(loc, view.Skills))
			h.raw(`</section>`)
		}

		if len(view.Testimonials) > 0 {
			h.raw(`<section class="section testimonials"><h2>`)
			h.text(tr(loc, "about.testimonials"))
			h.raw(`</h2>`)
			for _, t := range view.Testimonials {
				h.raw(`<figure class="testimonial reveal"><blockquote>`)
				h.text(t.Message)
				h.raw(`</blockquote><figcaption><strong>`)
				h.text(t.Name)
				h.raw(`</strong>`)
				if t.Title != "" {
					h.raw(` <span>`)
					h.text(t.Title)
					h.raw(`</span>`)
				}
				h.raw(`</figcaption></figure>`)
			}
			h.raw(`</section>`)
		}
	})
}
