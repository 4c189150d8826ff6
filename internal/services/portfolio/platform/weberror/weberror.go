// Package weberror renders shared error responses for portfolio modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	apperrors "github.com/louisbranch/portfolio/internal/services/portfolio/platform/errors"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/pagerender"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
	"go.uber.org/zap"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes the localized error page for statusCode.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := pagerender.Localizer(w, r)
	err := pagerender.WritePage(w, r, deps, pagerender.Page{
		Title:      templates.ErrorPageTitle(loc, statusCode),
		StatusCode: statusCode,
		Body:       templates.ErrorState(loc, statusCode),
		Loc:        loc,
		Lang:       lang,
	})
	if err != nil && r != nil && r.Context().Err() == nil {
		deps.Log().Error("render error page", zap.Int("status", statusCode), zap.Error(err))
		http.Error(w, templates.ErrorPageTitle(loc, statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		deps.Log().Error("module request failed", zap.Int("status", statusCode), zap.Error(err))
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := pagerender.Localizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// NotFoundHandler renders the not-found page.
func NotFoundHandler(deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteAppError(w, r, http.StatusNotFound, deps)
	})
}
