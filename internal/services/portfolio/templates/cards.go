package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// ProjectCardStackLimit caps the stack chips shown on a card.
const ProjectCardStackLimit = 4

// ProjectCard renders a project summary linking to its detail page.
func ProjectCard(loc Localizer, project content.Project) templ.Component {
	return component(func(_ context.Context, h *writer) {
		h.raw(`<article class="project-card reveal"><a class="project-card-link"`)
		h.href("href", routepath.Project(project.Slug))
		h.raw(`><div class="project-cover">`)
		if project.CoverImageURL != "" {
			h.raw(`<img loading="lazy"`)
			h.href("src", project.CoverImageURL)
			h.attr("alt", project.Title)
			h.raw(`>`)
		} else {
			h.raw(`<span class="project-initial" aria-hidden="true">`)
			h.text(project.Initial())
			h.raw(`</span>`)
		}
		h.raw(`</div><div class="project-body">`)
		if project.Category != "" {
			h.raw(`<span class="badge">`)
			h.text(project.Category)
			h.raw(`</span>`)
		}
		h.raw(`<h3>`)
		h.text(project.Title)
		h.raw(`</h3>`)
		if project.Tagline != "" {
			h.raw(`<p>`)
			h.text(project.Tagline)
			h.raw(`</p>`)
		}
		h.raw(`</div></a>`)
		renderChips(h, loc, project.Stack, ProjectCardStackLimit, "stack")
		h.raw(`</article>`)
	})
}

// renderChips writes up to limit items followed by a "+N" chip for the rest.
// A non-positive limit shows every item.
func renderChips(h *writer, loc Localizer, items content.StringList, limit int, class string) {
	if len(items) == 0 {
		return
	}
	shown, rest := items, 0
	if limit > 0 {
		shown, rest = items.Head(limit)
	}
	h.raw(`<ul`)
	h.attr("class", "chips "+class)
	h.raw(`>`)
	for _, item := range shown {
		h.raw(`<li>`)
		h.text(item)
		h.raw(`</li>`)
	}
	if rest > 0 {
		h.raw(`<li class="chip-more">`)
		h.text(tr(loc, "certificates.more_skills", rest))
		h.raw(`</li>`)
	}
	h.raw(`</ul>`)
}

// SkillGroups renders skill groups as labelled chip lists.
func SkillGroups(loc Localizer, groups []content.SkillGroup) templ.Component {
	return component(func(_ context.Context, h *writer) {
		h.raw(`<div class="skill-groups">`)
		for _, group := range groups {
			name := group.GroupName
			if name == "" {
				name = tr(loc, "home.skills.fallback_group")
			}
			h.raw(`<section class="skill-group reveal"><h3>`)
			h.text(name)
			h.raw(`</h3>`)
			renderChips(h, loc, group.Items, 0, "skills")
			h.raw(`</section>`)
		}
		h.raw(`</div>`)
	})
}

func sectionHeading(h *writer, eyebrow, title string) {
	h.raw(`<div class="section-heading">`)
	if eyebrow != "" {
		h.raw(`<p class="eyebrow">`)
		h.text(eyebrow)
		h.raw(`</p>`)
	}
	h.raw(`<h2>`)
	h.text(title)
	h.raw(`</h2></div>`)
}
