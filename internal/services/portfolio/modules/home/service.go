package home

import (
	"context"
	"strings"

	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/platform/branding"
	"github.com/louisbranch/portfolio/internal/services/portfolio/counter"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FeaturedLimit is the number of featured projects on the landing page.
const FeaturedLimit = 3

// Fixed statistics shown next to the project count.
const (
	minimumProjects = 3
	platforms       = 3
	hackathons      = 5
	yearsExperience = 2
	metricSuffix    = "+"
)

// Gateway loads landing page data.
type Gateway interface {
	Settings(ctx context.Context) (content.Settings, error)
	FeaturedProjects(ctx context.Context, n int) ([]content.Project, error)
	PublishedProjectCount(ctx context.Context) (int, error)
	SkillGroups(ctx context.Context) ([]content.SkillGroup, error)
}

type service struct {
	gateway     Gateway
	logger      *zap.Logger
	portraitURL string
}

func newService(gateway Gateway, deps module.Dependencies) service {
	return service{gateway: gateway, logger: deps.Log(), portraitURL: deps.PortraitURL}
}

// sections name the landing page reads in load order, for logs and for the
// localized load error.
var sections = [4]struct{ name, key string }{
	{"settings", "home.section.settings"},
	{"featured projects", "home.section.featured"},
	{"project count", "home.section.project_count"},
	{"skills", "home.section.skills"},
}

// snapshot is the settled result of the four landing page reads. Failed
// holds the catalog keys of the sections whose read failed.
type snapshot struct {
	settings     content.Settings
	featured     []content.Project
	projectCount int
	skills       []content.SkillGroup
	failed       []string
}

// load runs the reads concurrently and waits for all of them. A failed read
// leaves its section empty; the error is returned only when ctx ends first,
// in which case the partial results are discarded.
func (s service) load(ctx context.Context) (snapshot, error) {
	var (
		snap snapshot
		errs [4]error
	)
	var group errgroup.Group
	group.Go(func() error {
		snap.settings, errs[0] = s.gateway.Settings(ctx)
		return nil
	})
	group.Go(func() error {
		snap.featured, errs[1] = s.gateway.FeaturedProjects(ctx, FeaturedLimit)
		return nil
	})
	group.Go(func() error {
		snap.projectCount, errs[2] = s.gateway.PublishedProjectCount(ctx)
		return nil
	})
	group.Go(func() error {
		snap.skills, errs[3] = s.gateway.SkillGroups(ctx)
		return nil
	})
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return snapshot{}, err
	}
	for i, err := range errs {
		if err == nil {
			continue
		}
		s.logger.Warn("home read failed", zap.String("section", sections[i].name), zap.Error(err))
		snap.failed = append(snap.failed, sections[i].key)
	}
	return snap, nil
}

// view resolves hero defaults and statistics for snap.
func (s service) view(loc templates.Localizer, snap snapshot) templates.HomeView {
	view := templates.HomeView{
		Hero:     s.hero(snap.settings),
		Metrics:  metrics(loc, snap.projectCount),
		Featured: snap.featured,
		Skills:   snap.skills,
	}
	if len(snap.failed) > 0 {
		names := make([]string, len(snap.failed))
		for i, key := range snap.failed {
			names[i] = loc.Sprintf(key)
		}
		view.LoadError = loc.Sprintf("home.load_error", strings.Join(names, ", "))
	}
	return view
}

func (s service) hero(settings content.Settings) templates.Hero {
	portrait := s.portraitURL
	if portrait == "" {
		portrait = branding.PortraitURL
	}
	return templates.Hero{
		Name:        templates.OwnerName(settings),
		Title:       firstNonEmpty(settings.Title, branding.OwnerTitle),
		Status:      firstNonEmpty(settings.AvailabilityStatus, branding.AvailabilityStatus),
		Text:        firstNonEmpty(settings.HeroText, settings.Summary, branding.HeroText),
		PortraitURL: portrait,
	}
}

func metrics(loc templates.Localizer, projectCount int) []counter.Metric {
	if projectCount <= 0 {
		projectCount = minimumProjects
	}
	return []counter.Metric{
		{Label: loc.Sprintf("home.metric.projects"), Value: projectCount, Suffix: metricSuffix},
		{Label: loc.Sprintf("home.metric.platforms"), Value: platforms, Suffix: metricSuffix},
		{Label: loc.Sprintf("home.metric.hackathons"), Value: hackathons, Suffix: metricSuffix},
		{Label: loc.Sprintf("home.metric.years"), Value: yearsExperience, Suffix: metricSuffix},
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
