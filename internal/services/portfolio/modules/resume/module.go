// Package resume serves the resume links page.
package resume

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// Module provides the resume route.
type Module struct {
	source module.SettingsSource
}

// New returns a resume module backed by the shared content dependency.
func New() Module {
	return Module{}
}

// NewWithSettings returns a resume module reading an explicit settings
// source.
func NewWithSettings(source module.SettingsSource) Module {
	return Module{source: source}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "resume" }

// Mount wires the resume route.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	source := m.source
	if source == nil && deps.Content != nil {
		source = deps.Content
	}
	if source == nil {
		return module.Mount{}, errors.New("resume: settings source is required")
	}
	h := handlers{source: source, deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Resume, h.handleIndex)
	return module.Mount{Prefix: routepath.Resume, Handler: mux}, nil
}
