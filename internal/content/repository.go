package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/louisbranch/portfolio/internal/backend"
	"github.com/louisbranch/portfolio/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultSettingsTTL bounds how long the settings memo serves one read.
const DefaultSettingsTTL = 5 * time.Minute

const settingsSnapshot = "content.settings"

// Settings lookup results reported to the observer.
const (
	LookupMemory  = "memory"
	LookupStore   = "store"
	LookupBackend = "backend"
	LookupError   = "error"
)

// Repository is the typed data-loading boundary over a backend.Client.
//
// Settings is memoized: every page reads it for the navbar and footer, so
// concurrent requests share one backend call and later requests reuse the
// result until the TTL elapses.
type Repository struct {
	client  backend.Client
	cache   storage.SnapshotStore
	ttl     time.Duration
	now     func() time.Time
	logger  *zap.Logger
	observe func(result string)

	group    singleflight.Group
	mu       sync.RWMutex
	settings Settings
	expires  time.Time
}

// Option configures a Repository.
type Option func(*Repository)

// WithSettingsCache persists the settings memo in store so restarts start warm.
func WithSettingsCache(store storage.SnapshotStore) Option {
	return func(r *Repository) { r.cache = store }
}

// WithSettingsTTL overrides DefaultSettingsTTL. Non-positive values are ignored.
func WithSettingsTTL(ttl time.Duration) Option {
	return func(r *Repository) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger sets the logger used for cache failures.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSettingsObserver receives one Lookup* result per Settings call.
func WithSettingsObserver(observe func(result string)) Option {
	return func(r *Repository) { r.observe = observe }
}

// NewRepository builds a repository over client.
func NewRepository(client backend.Client, opts ...Option) *Repository {
	r := &Repository{
		client: client,
		ttl:    DefaultSettingsTTL,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Settings returns the site settings. A missing row yields empty Settings.
func (r *Repository) Settings(ctx context.Context) (Settings, error) {
	if settings, ok := r.memo(); ok {
		r.report(LookupMemory)
		return settings, nil
	}

	ch := r.group.DoChan(settingsSnapshot, func() (any, error) {
		// The shared load outlives any single caller's cancellation.
		loadCtx := context.WithoutCancel(ctx)
		if settings, ok := r.memo(); ok {
			return lookup{settings: settings, source: LookupMemory}, nil
		}
		if settings, ok := r.loadStored(loadCtx); ok {
			r.remember(settings)
			return lookup{settings: settings, source: LookupStore}, nil
		}
		settings, err := r.fetchSettings(loadCtx)
		if err != nil {
			return nil, err
		}
		r.remember(settings)
		r.store(loadCtx, settings)
		return lookup{settings: settings, source: LookupBackend}, nil
	})

	select {
	case <-ctx.Done():
		return Settings{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			r.report(LookupError)
			return Settings{}, res.Err
		}
		found := res.Val.(lookup)
		r.report(found.source)
		return found.settings, nil
	}
}

// InvalidateSettings drops the in-memory and persisted settings memo.
func (r *Repository) InvalidateSettings(ctx context.Context) error {
	r.mu.Lock()
	r.settings = Settings{}
	r.expires = time.Time{}
	r.mu.Unlock()
	if r.cache == nil {
		return nil
	}
	return r.cache.DeleteSnapshot(ctx, settingsSnapshot)
}

// FeaturedProjects returns up to n published featured projects, newest first.
func (r *Repository) FeaturedProjects(ctx context.Context, n int) ([]Project, error) {
	var projects []Project
	q := backend.From(TableProjects).
		Eq("is_published", true).
		Eq("is_featured", true).
		Order("created_at", false).
		Limit(n)
	if _, err := r.client.Select(ctx, q, &projects); err != nil {
		return nil, fmt.Errorf("featured projects: %w", err)
	}
	return projects, nil
}

// PublishedProjectCount returns the exact number of published projects.
func (r *Repository) PublishedProjectCount(ctx context.Context) (int, error) {
	q := backend.From(TableProjects).Select("id").Eq("is_published", true).Head()
	res, err := r.client.Select(ctx, q, nil)
	if err != nil {
		return 0, fmt.Errorf("project count: %w", err)
	}
	return res.Count, nil
}

// PublishedProjects returns every published project, newest first.
func (r *Repository) PublishedProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	q := backend.From(TableProjects).Eq("is_published", true).Order("created_at", false)
	if _, err := r.client.Select(ctx, q, &projects); err != nil {
		return nil, fmt.Errorf("published projects: %w", err)
	}
	return projects, nil
}

// ProjectBySlug returns one published project. It wraps backend.ErrNoRows
// when nothing matches.
func (r *Repository) ProjectBySlug(ctx context.Context, slug string) (Project, error) {
	var project Project
	q := backend.From(TableProjects).Eq("slug", slug).Eq("is_published", true).Single()
	if _, err := r.client.Select(ctx, q, &project); err != nil {
		return Project{}, fmt.Errorf("project %q: %w", slug, err)
	}
	return project, nil
}

// SkillGroups returns every skill group in display order.
func (r *Repository) SkillGroups(ctx context.Context) ([]SkillGroup, error) {
	var groups []SkillGroup
	q := backend.From(TableSkills).Order("order_index", true)
	if _, err := r.client.Select(ctx, q, &groups); err != nil {
		return nil, fmt.Errorf("skill groups: %w", err)
	}
	return groups, nil
}

// PublishedExperience returns published roles in display order.
func (r *Repository) PublishedExperience(ctx context.Context) ([]Experience, error) {
	var roles []Experience
	q := backend.From(TableExperience).Eq("is_published", true).Order("order_index", true)
	if _, err := r.client.Select(ctx, q, &roles); err != nil {
		return nil, fmt.Errorf("experience: %w", err)
	}
	return roles, nil
}

// PublishedTestimonials returns published testimonials in display order.
func (r *Repository) PublishedTestimonials(ctx context.Context) ([]Testimonial, error) {
	var testimonials []Testimonial
	q := backend.From(TableTestimonials).Eq("is_published", true).Order("order_index", true)
	if _, err := r.client.Select(ctx, q, &testimonials); err != nil {
		return nil, fmt.Errorf("testimonials: %w", err)
	}
	return testimonials, nil
}

// PublishedCertificates returns published certificates in display order.
func (r *Repository) PublishedCertificates(ctx context.Context) ([]Certificate, error) {
	var certificates []Certificate
	q := backend.From(TableCertificates).Eq("is_published", true).Order("order_index", true)
	if _, err := r.client.Select(ctx, q, &certificates); err != nil {
		return nil, fmt.Errorf("certificates: %w", err)
	}
	return certificates, nil
}

// CreateContactMessage inserts exactly name, email and message.
func (r *Repository) CreateContactMessage(ctx context.Context, msg ContactMessage) error {
	if err := r.client.Insert(ctx, TableContactMessages, msg); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

type lookup struct {
	settings Settings
	source   string
}

func (r *Repository) fetchSettings(ctx context.Context) (Settings, error) {
	var settings Settings
	q := backend.From(TableSettings).Select("*").Limit(1).Single()
	_, err := r.client.Select(ctx, q, &settings)
	if errors.Is(err, backend.ErrNoRows) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}
	return settings, nil
}

func (r *Repository) memo() (Settings, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.expires.IsZero() || !r.now().Before(r.expires) {
		return Settings{}, false
	}
	return r.settings, true
}

func (r *Repository) remember(settings Settings) {
	r.mu.Lock()
	r.settings = settings
	r.expires = r.now().Add(r.ttl)
	r.mu.Unlock()
}

func (r *Repository) loadStored(ctx context.Context) (Settings, bool) {
	if r.cache == nil {
		return Settings{}, false
	}
	snap, ok, err := r.cache.LoadSnapshot(ctx, settingsSnapshot)
	if err != nil {
		r.logger.Warn("read settings cache", zap.Error(err))
		return Settings{}, false
	}
	if !ok || snap.Expired(r.now()) {
		return Settings{}, false
	}
	var settings Settings
	if err := json.Unmarshal(snap.Payload, &settings); err != nil {
		r.logger.Warn("decode settings cache", zap.Error(err))
		return Settings{}, false
	}
	return settings, true
}

func (r *Repository) store(ctx context.Context, settings Settings) {
	if r.cache == nil {
		return
	}
	payload, err := json.Marshal(settings)
	if err != nil {
		r.logger.Warn("encode settings cache", zap.Error(err))
		return
	}
	now := r.now()
	if err := r.cache.SaveSnapshot(ctx, storage.Snapshot{
		Name:      settingsSnapshot,
		Payload:   payload,
		StoredAt:  now,
		ExpiresAt: now.Add(r.ttl),
	}); err != nil {
		r.logger.Warn("write settings cache", zap.Error(err))
	}
}

func (r *Repository) report(result string) {
	if r.observe != nil {
		r.observe(result)
	}
}
