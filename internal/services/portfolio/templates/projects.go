package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// ProjectsView is the data the projects listing renders.
type ProjectsView struct {
	Categories []string
	Active     string
	Projects   []content.Project
}

// Projects renders the filterable project grid.
func Projects(loc Localizer, view ProjectsView) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.raw(`<section class="page-header"><h1>`)
		h.text(tr(loc, "projects.title"))
		h.raw(`</h1><p class="lead">`)
		h.text(tr(loc, "projects.lead"))
		h.raw(`</p></section>`)

		if len(view.Categories) > 1 {
			h.raw(`<nav class="tabs"`)
			h.attr("aria-label", tr(loc, "projects.filter_label"))
			h.raw(`>`)
			for _, category := range view.Categories {
				h.raw(`<a class="tab"`)
				h.href("href", routepath.ProjectsInCategory(category))
				if category == view.Active {
					h.raw(` aria-current="page"`)
				}
				h.raw(`>`)
				h.text(category)
				h.raw(`</a>`)
			}
			h.raw(`</nav>`)
		}

		if len(view.Projects) == 0 {
			h.raw(`<p class="empty-state">`)
			h.text(tr(loc, "projects.empty"))
			h.raw(`</p>`)
			return
		}
		h.raw(`<div class="project-grid">`)
		for _, project := range view.Projects {
			h.render(ctx, ProjectCard(loc, project))
		}
		h.raw(`</div>`)
	})
}

// ProjectDetail renders one project with its description and links.
func ProjectDetail(loc Localizer, project content.Project) templ.Component {
	return component(func(_ context.Context, h *writer) {
		h.raw(`<article class="project-detail"><a class="link-back"`)
		h.href("href", routepath.Projects)
		h.raw(`>`)
		h.text(tr(loc, "project.back"))
		h.raw(`</a><header>`)
		if project.Category != "" {
			h.raw(`<span class="badge">`)
			h.text(project.Category)
			h.raw(`</span>`)
		}
		h.raw(`<h1>`)
		h.text(project.Title)
		h.raw(`</h1>`)
		if project.Tagline != "" {
			h.raw(`<p class="lead">`)
			h.text(project.Tagline)
			h.raw(`</p>`)
		}
		h.raw(`</header>`)
		if project.CoverImageURL != "" {
			h.raw(`<figure class="project-cover-large"><img`)
			h.href("src", project.CoverImageURL)
			h.attr("alt", project.Title)
			h.raw(`></figure>`)
		}
		if project.Description != "" {
			h.raw(`<div class="prose"><p>`)
			h.text(project.Description)
			h.raw(`</p></div>`)
		}
		if len(project.Stack) > 0 {
			h.raw(`<section><h2>`)
			h.text(tr(loc, "project.stack"))
			h.raw(`</h2>`)
			renderChips(h, loc, project.Stack, 0, "stack")
			h.raw(`</section>`)
		}
		if project.RepoURL != "" || project.LiveURL != "" {
			h.raw(`<div class="actions">`)
			if project.LiveURL != "" {
				h.raw(`<a class="button button-primary" target="_blank" rel="noopener noreferrer"`)
				h.href("href", project.LiveURL)
				h.raw(`>`)
				h.text(tr(loc, "project.live"))
				h.raw(`</a>`)
			}
			if project.RepoURL != "" {
				h.raw(`<a class="button" target="_blank" rel="noopener noreferrer"`)
				h.href("href", project.RepoURL)
				h.raw(`>`)
				h.text(tr(loc, "project.repo"))
				h.raw(`</a>`)
			}
			h.raw(`</div>`)
		}
		h.raw(`</article>`)
	})
}
