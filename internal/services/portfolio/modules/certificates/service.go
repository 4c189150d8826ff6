package certificates

import (
	"context"
	"strings"

	"github.com/louisbranch/portfolio/internal/content"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
	"go.uber.org/zap"
)

// Gateway loads published certificates.
type Gateway interface {
	PublishedCertificates(ctx context.Context) ([]content.Certificate, error)
}

type service struct {
	gateway Gateway
	deps    module.Dependencies
}

// page loads the grid and resolves the selected certificate. A failed read
// renders as an empty grid; an unknown selection is ignored.
func (s service) page(ctx context.Context, selected string) (templates.CertificatesView, error) {
	certs, err := s.gateway.PublishedCertificates(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return templates.CertificatesView{}, ctxErr
	}
	if err != nil {
		s.deps.Log().Warn("load certificates", zap.Error(err))
		return templates.CertificatesView{}, nil
	}
	view := templates.CertificatesView{Certificates: certs}
	selected = strings.TrimSpace(selected)
	for i := range certs {
		if selected != "" && certs[i].ID.String() == selected {
			view.Selected = &certs[i]
			break
		}
	}
	return view, nil
}
