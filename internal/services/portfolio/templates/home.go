package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/services/portfolio/counter"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// Hero is the resolved home page introduction.
type Hero struct {
	Name        string
	Title       string
	Status      string
	Text        string
	PortraitURL string
}

// HomeView is the data the home page renders.
type HomeView struct {
	Hero      Hero
	Metrics   []counter.Metric
	Featured  []content.Project
	Skills    []content.SkillGroup
	LoadError string
}

var approachSteps = []string{"understand", "build", "ship"}

// Home renders the landing page.
func Home(loc Localizer, view HomeView) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		if view.LoadError != "" {
			h.raw(`<div class="alert alert-error" role="alert">`)
			h.text(view.LoadError)
			h.raw(`</div>`)
		}
		h.render(ctx, heroSection(loc, view.Hero))
		h.render(ctx, MetricsPanel(view.Metrics))

		if len(view.Featured) > 0 {
			h.raw(`<section class="section featured">`)
			sectionHeading(h, tr(loc, "home.featured.eyebrow"), tr(loc, "home.featured.title"))
			h.raw(`<div class="project-grid">`)
			for _, project := range view.Featured {
				h.render(ctx, ProjectCard(loc, project))
			}
			h.raw(`</div><a class="link-arrow"`)
			h.href("href", routepath.Projects)
			h.raw(`>`)
			h.text(tr(loc, "home.featured.view_all"))
			h.raw(`</a></section>`)
		}

		h.raw(`<section class="section approach">`)
		sectionHeading(h, tr(loc, "home.approach.eyebrow"), tr(loc, "home.approach.title"))
		h.raw(`<p class="lead">`)
		h.text(tr(loc, "home.approach.lead"))
		h.raw(`</p><ol class="steps">`)
		for i, step := range approachSteps {
			h.raw(`<li class="step reveal"><span class="step-number">0`, itoa(i+1), `</span><h3>`)
			h.text(tr(loc, "home.approach."+step+".title"))
			h.raw(`</h3><p>`)
			h.text(tr(loc, "home.approach."+step+".desc"))
			h.raw(`</p></li>`)
		}
		h.raw(`</ol></section>`)

		if len(view.Skills) > 0 {
			h.raw(`<section class="section skills">`)
			sectionHeading(h, tr(loc, "home.skills.eyebrow"), tr(loc, "home.skills.title"))
			h.render(ctx, SkillGroups(loc, view.Skills))
			h.raw(`</section>`)
		}

		h.raw(`<section class="section cta reveal"><h2>`)
		h.text(tr(loc, "home.cta.title"))
		h.raw(`</h2><p>`)
		h.text(tr(loc, "home.cta.body"))
		h.raw(`</p><div class="actions"><a class="button button-primary"`)
		h.href("href", routepath.Contact)
		h.raw(`>`)
		h.text(tr(loc, "home.cta.start"))
		h.raw(`</a><a class="button"`)
		h.href("href", routepath.Resume)
		h.raw(`>`)
		h.text(tr(loc, "home.cta.resume"))
		h.raw(`</a></div></section>`)
	})
}

func heroSection(loc Localizer, hero Hero) templ.Component {
	return component(func(_ context.Context, h *writer) {
		h.raw(`<section class="hero"><div class="hero-copy">`)
		if hero.Status != "" {
			h.raw(`<span class="status-badge">`)
			h.text(hero.Status)
			h.raw(`</span>`)
		}
		h.raw(`<h1>`)
		h.text(hero.Name)
		h.raw(`</h1><p class="hero-title">`)
		h.text(hero.Title)
		h.raw(`</p><p class="hero-text">`)
		h.text(hero.Text)
		h.raw(`</p><div class="actions"><a class="button button-primary"`)
		h.href("href", routepath.Projects)
		h.raw(`>`)
		h.text(tr(loc, "home.view_work"))
		h.raw(`</a><a class="button"`)
		h.href("href", routepath.Contact)
		h.raw(`>`)
		h.text(tr(loc, "home.get_in_touch"))
		h.raw(`</a></div></div>`)
		if hero.PortraitURL != "" {
			h.raw(`<figure class="hero-portrait"><img`)
			h.href("src", hero.PortraitURL)
			h.attr("alt", tr(loc, "home.portrait_alt", hero.Name))
			h.raw(`></figure>`)
		}
		h.raw(`</section>`)
	})
}

// MetricsPanel renders the animated statistics. Each value carries its
// precomputed frame sequence and shows the final value until the script
// plays it.
func MetricsPanel(metrics []counter.Metric) templ.Component {
	return component(func(_ context.Context, h *writer) {
		if len(metrics) == 0 {
			return
		}
		h.raw(`<section class="metrics"><dl>`)
		for _, metric := range metrics {
			h.raw(`<div class="metric reveal"><dt>`)
			h.text(metric.Label)
			h.raw(`</dt><dd><span class="metric-value" data-counter`)
			h.attr("data-target", itoa(metric.Value))
			h.attr("data-frames", metric.Encode())
			h.attr("data-suffix", metric.Suffix)
			h.raw(`>`)
			h.text(itoa(metric.Value) + metric.Suffix)
			h.raw(`</span></dd></div>`)
		}
		h.raw(`</dl></section>`)
	})
}
