package projects

import (
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/pagerender"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/weberror"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.listing(r.Context(), r.URL.Query().Get(routepath.CategoryParam))
	if err != nil {
		return
	}
	loc, lang := pagerender.Localizer(w, r)
	h.write(w, r, pagerender.Page{
		Title: loc.Sprintf("projects.title"),
		Body:  templates.Projects(loc, view),
		Loc:   loc,
		Lang:  lang,
	})
}

func (h handlers) redirectIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Projects, http.StatusMovedPermanently)
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.project(r.Context(), r.PathValue("slug"))
	if err != nil {
		if r.Context().Err() == nil {
			weberror.WriteModuleError(w, r, err, h.deps)
		}
		return
	}
	loc, lang := pagerender.Localizer(w, r)
	h.write(w, r, pagerender.Page{
		Title: project.Title,
		Body:  templates.ProjectDetail(loc, project),
		Loc:   loc,
		Lang:  lang,
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) write(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, h.deps, page); err != nil && r.Context().Err() == nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
