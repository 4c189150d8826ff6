// Package app composes page modules onto the root router.
package app

import (
	"fmt"
	"strings"

	"github.com/go-chi/chi/v5"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/weberror"
)

// ComposeInput carries the modules and the dependencies they mount with.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Compose mounts every module on router. A module owns its prefix and the
// subtree below it, except the root prefix which owns only "/". Unmatched
// paths render the not-found page.
func Compose(router chi.Router, input ComposeInput) error {
	if router == nil {
		return fmt.Errorf("router is required")
	}
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return fmt.Errorf("module is nil")
		}
		mount, err := feature.Mount(input.Dependencies)
		if err != nil {
			return fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		prefix := strings.TrimSpace(mount.Prefix)
		if prefix == "" || !strings.HasPrefix(prefix, "/") {
			return fmt.Errorf("module %q has invalid prefix %q", feature.ID(), mount.Prefix)
		}
		if mount.Handler == nil {
			return fmt.Errorf("module %q mounted nil handler", feature.ID())
		}
		if previous, ok := seen[prefix]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()

		router.Handle(prefix, mount.Handler)
		if prefix != "/" {
			router.Handle(strings.TrimSuffix(prefix, "/")+"/*", mount.Handler)
		}
	}
	router.NotFound(weberror.NotFoundHandler(input.Dependencies).ServeHTTP)
	return nil
}
