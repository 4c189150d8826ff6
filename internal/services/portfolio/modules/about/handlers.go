package about

import (
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/pagerender"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/weberror"
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
	view, err := h.service.page(r.Context())
	if err != nil {
		return
	}
	loc, lang := pagerender.Localizer(w, r)
	if err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title: loc.Sprintf("about.title"),
		Body:  templates.About(loc, view),
		Loc:   loc,
		Lang:  lang,
	}); err != nil && r.Context().Err() == nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
