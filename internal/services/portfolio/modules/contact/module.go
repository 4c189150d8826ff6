// Package contact serves the contact form and records submissions.
package contact

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// Module provides contact routes.
type Module struct {
	gateway Gateway
}

// New returns a contact module backed by the shared content dependency.
func New() Module {
	return Module{}
}

// NewWithGateway returns a contact module with an explicit gateway.
func NewWithGateway(gateway Gateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires contact routes.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	gateway := m.gateway
	if gateway == nil && deps.Content != nil {
		gateway = deps.Content
	}
	if gateway == nil {
		return module.Mount{}, errors.New("contact: content gateway is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(gateway, deps), deps))
	return module.Mount{Prefix: routepath.Contact, Handler: mux}, nil
}
