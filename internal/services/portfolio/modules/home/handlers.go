package home

import (
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/pagerender"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/weberror"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
	"go.uber.org/zap"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.load(r.Context())
	if err != nil {
		h.deps.Log().Debug("home request abandoned", zap.Error(err))
		return
	}
	loc, lang := pagerender.Localizer(w, r)
	if err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Body: templates.Home(loc, h.service.view(loc, snap)),
		Loc:  loc,
		Lang: lang,
	}); err != nil && r.Context().Err() == nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
