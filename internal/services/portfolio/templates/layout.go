package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/platform/branding"
	"github.com/louisbranch/portfolio/internal/platform/i18n"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// Notice is a one-time toast shown above the page content.
type Notice struct {
	Kind    string
	Message string
}

// Chrome carries everything the shared page shell needs.
type Chrome struct {
	Title       string
	Lang        string
	Loc         Localizer
	Settings    content.Settings
	CurrentPath string
	Languages   []i18n.LanguageOption
	Notice      *Notice
	Year        int
}

// OwnerName returns the configured owner name or the branding default.
func (c Chrome) OwnerName() string {
	return OwnerName(c.Settings)
}

// OwnerName returns settings.Name or the branding default when blank.
func OwnerName(settings content.Settings) string {
	if name := strings.TrimSpace(settings.Name); name != "" {
		return name
	}
	return branding.OwnerName
}

type navLink struct {
	key  string
	path string
}

var navLinks = []navLink{
	{key: "nav.home", path: routepath.Home},
	{key: "nav.projects", path: routepath.Projects},
	{key: "nav.certificates", path: routepath.Certificates},
	{key: "nav.about", path: routepath.About},
	{key: "nav.contact", path: routepath.Contact},
}

var footerLinks = []navLink{
	{key: "nav.projects", path: routepath.Projects},
	{key: "nav.about", path: routepath.About},
	{key: "nav.contact", path: routepath.Contact},
}

// Layout renders a full HTML document around body.
func Layout(chrome Chrome, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		lang := chrome.Lang
		if lang == "" {
			lang = i18n.Default().String()
		}
		title := chrome.OwnerName()
		if chrome.Title != "" {
			title = chrome.Title + " | " + title
		}
		h.raw("<!doctype html>\n<html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(title)
		h.raw(`</title><meta name="description"`)
		h.attr("content", tr(chrome.Loc, "layout.meta_description"))
		h.raw(`><link rel="stylesheet"`)
		h.href("href", routepath.Static("site.css"))
		h.raw(`><script defer`)
		h.href("src", routepath.Static("app.js"))
		h.raw(`></script></head><body>`)
		h.render(ctx, Navbar(chrome))
		if chrome.Notice != nil && chrome.Notice.Message != "" {
			h.render(ctx, Toast(*chrome.Notice))
		}
		h.raw(`<main id="main">`)
		h.render(ctx, body)
		h.raw(`</main>`)
		h.render(ctx, Footer(chrome))
		h.raw("</body></html>")
	})
}

// Toast renders a status notice.
func Toast(notice Notice) templ.Component {
	return component(func(_ context.Context, h *writer) {
		h.raw(`<div role="status"`)
		h.attr("class", "toast toast-"+notice.Kind)
		h.raw(`>`)
		h.text(notice.Message)
		h.raw(`</div>`)
	})
}

// Navbar renders the top navigation with the current page marked.
func Navbar(chrome Chrome) templ.Component {
	return component(func(_ context.Context, h *writer) {
		h.raw(`<header class="navbar"><nav`)
		h.attr("aria-label", tr(chrome.Loc, "nav.main"))
		h.raw(`><a class="brand"`)
		h.href("href", routepath.Home)
		h.raw(`>`)
		h.text(branding.AppName)
		h.raw(`</a><button type="button" class="menu-toggle" data-menu-toggle aria-expanded="false"`)
		h.attr("aria-label", tr(chrome.Loc, "nav.menu_open"))
		h.raw(`><span></span></button><ul class="nav-links">`)
		for _, link := range navLinks {
			h.raw(`<li><a`)
			h.href("href", link.path)
			if isCurrent(chrome.CurrentPath, link.path) {
				h.raw(` aria-current="page"`)
			}
			h.raw(`>`)
			h.text(tr(chrome.Loc, link.key))
			h.raw(`</a></li>`)
		}
		h.raw(`</ul><a class="button button-primary nav-cta"`)
		h.href("href", routepath.Resume)
		if isCurrent(chrome.CurrentPath, routepath.Resume) {
			h.raw(` aria-current="page"`)
		}
		h.raw(`>`)
		h.text(tr(chrome.Loc, "nav.resume"))
		h.raw(`</a></nav></header>`)
	})
}

// Footer renders owner details, social links, quick links and the language
// switcher.
func Footer(chrome Chrome) templ.Component {
	return component(func(_ context.Context, h *writer) {
		settings := chrome.Settings
		h.raw(`<footer class="footer"><div class="footer-brand"><strong>`)
		h.text(chrome.OwnerName())
		h.raw(`</strong><p>`)
		h.text(tr(chrome.Loc, "footer.tagline"))
		h.raw(`</p>`)
		if settings.GitHub != "" || settings.LinkedIn != "" || settings.Email != "" {
			h.raw(`<ul class="social">`)
			if settings.GitHub != "" {
				h.raw(`<li><a rel="noopener noreferrer" target="_blank"`)
				h.href("href", settings.GitHub)
				h.raw(`>GitHub</a></li>`)
			}
			if settings.LinkedIn != "" {
				h.raw(`<li><a rel="noopener noreferrer" target="_blank"`)
				h.href("href", settings.LinkedIn)
				h.raw(`>LinkedIn</a></li>`)
			}
			if settings.Email != "" {
				h.raw(`<li><a`)
				h.href("href", "mailto:"+settings.Email)
				h.raw(`>Email</a></li>`)
			}
			h.raw(`</ul>`)
		}
		h.raw(`</div><ul class="footer-links">`)
		for _, link := range footerLinks {
			h.raw(`<li><a`)
			h.href("href", link.path)
			h.raw(`>`)
			h.text(tr(chrome.Loc, link.key))
			h.raw(`</a></li>`)
		}
		h.raw(`</ul>`)
		if len(chrome.Languages) > 0 {
			h.raw(`<nav class="languages"`)
			h.attr("aria-label", tr(chrome.Loc, "footer.language"))
			h.raw(`>`)
			for _, option := range chrome.Languages {
				h.raw(`<a`)
				h.href("href", option.URL)
				h.attr("hreflang", option.Tag)
				if option.Active {
					h.raw(` aria-current="true"`)
				}
				h.raw(`>`)
				h.text(option.Label)
				h.raw(`</a>`)
			}
			h.raw(`</nav>`)
		}
		h.raw(`<p class="copyright">`)
		h.text(tr(chrome.Loc, "footer.rights", itoa(chrome.Year)))
		h.raw(`</p></footer>`)
	})
}

func isCurrent(current, path string) bool {
	if path == routepath.Home {
		return current == routepath.Home
	}
	return current == path || strings.HasPrefix(current, path+"/")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
