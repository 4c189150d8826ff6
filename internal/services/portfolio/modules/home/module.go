// Package home serves the landing page.
package home

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// Module provides the landing page route.
type Module struct {
	gateway Gateway
}

// New returns a home module backed by the shared content dependency.
func New() Module {
	return Module{}
}

// NewWithGateway returns a home module with an explicit gateway.
func NewWithGateway(gateway Gateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the landing page route.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	gateway := m.gateway
	if gateway == nil && deps.Content != nil {
		gateway = deps.Content
	}
	if gateway == nil {
		return module.Mount{}, errors.New("home: content gateway is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(gateway, deps), deps))
	return module.Mount{Prefix: routepath.Home, Handler: mux}, nil
}
