package projects

import (
	"context"
	"strings"

	"github.com/louisbranch/portfolio/internal/content"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
	"go.uber.org/zap"
)

// Gateway loads published projects.
type Gateway interface {
	PublishedProjects(ctx context.Context) ([]content.Project, error)
	ProjectBySlug(ctx context.Context, slug string) (content.Project, error)
}

type service struct {
	gateway Gateway
	logger  *zap.Logger
}

func newService(gateway Gateway, deps module.Dependencies) service {
	return service{gateway: gateway, logger: deps.Log()}
}

// listing returns the filtered grid for category. A failed read renders the
// same as an empty table.
func (s service) listing(ctx context.Context, category string) (templates.ProjectsView, error) {
	projects, err := s.gateway.PublishedProjects(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return templates.ProjectsView{}, ctxErr
	}
	if err != nil {
		s.logger.Warn("load projects", zap.Error(err))
		projects = nil
	}
	active := category
	if active == "" {
		active = content.AllCategories
	}
	return templates.ProjectsView{
		Categories: content.Categories(projects),
		Active:     active,
		Projects:   content.FilterByCategory(projects, active),
	}, nil
}

func (s service) project(ctx context.Context, slug string) (content.Project, error) {
	return s.gateway.ProjectBySlug(ctx, strings.TrimSpace(slug))
}
