package modules

import (
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules/about"
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules/certificates"
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules/contact"
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules/home"
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules/projects"
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules/resume"
)

// DefaultModules returns the page modules in navigation order.
func DefaultModules() []Module {
	return []Module{
		home.New(),
		projects.New(),
		certificates.New(),
		about.New(),
		resume.New(),
		contact.New(),
	}
}
