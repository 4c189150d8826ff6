// Package module defines the contract every portfolio page module
// implements and the dependencies the composition root hands them.
package module

import (
	"context"
	"net/http"
	"time"

	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/platform/metrics"
	"go.uber.org/zap"
)

// SettingsSource resolves the memoized site settings shared by the page
// chrome.
type SettingsSource interface {
	Settings(ctx context.Context) (content.Settings, error)
}

// Content is the full read/write surface modules may narrow from.
// *content.Repository implements it.
type Content interface {
	SettingsSource
	FeaturedProjects(ctx context.Context, n int) ([]content.Project, error)
	PublishedProjectCount(ctx context.Context) (int, error)
	PublishedProjects(ctx context.Context) ([]content.Project, error)
	ProjectBySlug(ctx context.Context, slug string) (content.Project, error)
	SkillGroups(ctx context.Context) ([]content.SkillGroup, error)
	PublishedExperience(ctx context.Context) ([]content.Experience, error)
	PublishedTestimonials(ctx context.Context) ([]content.Testimonial, error)
	PublishedCertificates(ctx context.Context) ([]content.Certificate, error)
	CreateContactMessage(ctx context.Context, msg content.ContactMessage) error
}

// Dependencies carries shared runtime services into modules.
type Dependencies struct {
	Content     Content
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	PortraitURL string
	Now         func() time.Time
}

// Clock returns Now or time.Now when unset.
func (d Dependencies) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Log returns Logger or a no-op logger when unset.
func (d Dependencies) Log() *zap.Logger {
	return logging.OrNop(d.Logger)
}

// Mount is a module's route prefix and handler.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one mountable page area.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
