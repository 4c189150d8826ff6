package contact

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/content"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	apperrors "github.com/louisbranch/portfolio/internal/services/portfolio/platform/errors"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/flash"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/pagerender"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/weberror"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
)

// maxFormBytes bounds the contact form body.
const maxFormBytes = 64 << 10

const (
	keySent   = "contact.sent"
	keyFailed = "contact.failed"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, templates.ContactView{})
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Invalid(keyFailed, err), h.deps)
		return
	}
	input := content.ContactInput{
		Name:     r.PostFormValue(content.FieldName),
		Email:    r.PostFormValue(content.FieldEmail),
		Message:  r.PostFormValue(content.FieldMessage),
		Honeypot: r.PostFormValue(content.HoneypotField),
	}

	res := h.service.submit(r.Context(), input)
	switch res.outcome {
	case OutcomeSent, OutcomeHoneypot:
		flash.Write(w, r, flash.Success(keySent))
		httpx.WriteRedirect(w, r, routepath.Contact)
	case OutcomeInvalid:
		h.render(w, r, http.StatusUnprocessableEntity, templates.ContactView{Input: input, Errors: res.errors})
	default:
		if r.Context().Err() != nil {
			return
		}
		h.render(w, r, failureStatus(res.err), templates.ContactView{Input: input, Failure: keyFailed})
	}
}

// render writes the form page. view.Failure holds a catalog key and is
// localized here.
func (h handlers) render(w http.ResponseWriter, r *http.Request, status int, view templates.ContactView) {
	loc, lang := pagerender.Localizer(w, r)
	if view.Failure != "" {
		view.Failure = loc.Sprintf(view.Failure)
	}
	if err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:      loc.Sprintf("contact.title"),
		StatusCode: status,
		Body:       templates.Contact(loc, view),
		Loc:        loc,
		Lang:       lang,
	}); err != nil && r.Context().Err() == nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

// failureStatus maps a failed insert onto a server error status.
func failureStatus(err error) int {
	status := apperrors.HTTPStatus(err)
	if status < http.StatusInternalServerError {
		return http.StatusInternalServerError
	}
	return status
}
