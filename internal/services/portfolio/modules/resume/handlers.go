package resume

import (
	"net/http"
	"strings"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/pagerender"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/weberror"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
	"go.uber.org/zap"
)

type handlers struct {
	source module.SettingsSource
	deps   module.Dependencies
}

// handleIndex renders the resume links from the memoized settings. A failed
// read renders the placeholder.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	settings, err := h.source.Settings(r.Context())
	if r.Context().Err() != nil {
		return
	}
	if err != nil {
		h.deps.Log().Warn("load resume settings", zap.Error(err))
	}
	loc, lang := pagerender.Localizer(w, r)
	if err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title: loc.Sprintf("resume.title"),
		Body:  templates.Resume(loc, strings.TrimSpace(settings.ResumeURL)),
		Loc:   loc,
		Lang:  lang,
	}); err != nil && r.Context().Err() == nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
