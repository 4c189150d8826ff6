package about

import (
	"context"

	"github.com/louisbranch/portfolio/internal/content"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Gateway loads the about page sections.
type Gateway interface {
	Settings(ctx context.Context) (content.Settings, error)
	PublishedExperience(ctx context.Context) ([]content.Experience, error)
	SkillGroups(ctx context.Context) ([]content.SkillGroup, error)
	PublishedTestimonials(ctx context.Context) ([]content.Testimonial, error)
}

type service struct {
	gateway Gateway
	deps    module.Dependencies
}

// page loads every section independently. A failed section is left nil and
// hidden; the others still render.
func (s service) page(ctx context.Context) (templates.AboutView, error) {
	var (
		view     templates.AboutView
		settings content.Settings
		group    errgroup.Group
	)
	logger := s.deps.Log()
	group.Go(func() error {
		loaded, err := s.gateway.Settings(ctx)
		if err != nil {
			logger.Warn("about settings failed", zap.Error(err))
			return nil
		}
		settings = loaded
		return nil
	})
	group.Go(func() error {
		rows, err := s.gateway.PublishedExperience(ctx)
		if err != nil {
			logger.Warn("about experience failed", zap.Error(err))
			return nil
		}
		view.Experience = rows
		return nil
	})
	group.Go(func() error {
		rows, err := s.gateway.SkillGroups(ctx)
		if err != nil {
			logger.Warn("about skills failed", zap.Error(err))
			return nil
		}
		view.Skills = rows
		return nil
	})
	group.Go(func() error {
		rows, err := s.gateway.PublishedTestimonials(ctx)
		if err != nil {
			logger.Warn("about testimonials failed", zap.Error(err))
			return nil
		}
		view.Testimonials = rows
		return nil
	})
	_ = group.Wait()
	if err := ctx.Err(); err != nil {
		return templates.AboutView{}, err
	}
	view.Name = templates.OwnerName(settings)
	view.Summary = settings.Summary
	return view, nil
}
