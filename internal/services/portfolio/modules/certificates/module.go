// Package certificates serves the credentials page.
package certificates

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// Module provides the certificates route.
type Module struct {
	gateway Gateway
}

// New returns a certificates module backed by the shared content dependency.
func New() Module {
	return Module{}
}

// NewWithGateway returns a certificates module with an explicit gateway.
func NewWithGateway(gateway Gateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "certificates" }

// Mount wires the certificates route.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	gateway := m.gateway
	if gateway == nil && deps.Content != nil {
		gateway = deps.Content
	}
	if gateway == nil {
		return module.Mount{}, errors.New("certificates: content gateway is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(service{gateway: gateway, deps: deps}, deps))
	return module.Mount{Prefix: routepath.Certificates, Handler: mux}, nil
}
