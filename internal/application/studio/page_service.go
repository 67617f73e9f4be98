package studio

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/studio"
	"go.uber.org/zap"
)

// WelcomeCache holds the sections served by the welcome endpoint
type WelcomeCache interface {
	Get(ctx context.Context) ([]studio.Section, bool, error)
	Set(ctx context.Context, sections []studio.Section) error
	Invalidate(ctx context.Context) error
}

// PageService handles studio page operations
type PageService struct {
	repo   studio.PageRepository
	cache  WelcomeCache
	logger *zap.Logger
}

// NewPageService creates a new PageService. cache may be nil.
func NewPageService(repo studio.PageRepository, cache WelcomeCache, logger *zap.Logger) *PageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// EnsureDefaults creates any missing default page, matched by slug
func (s *PageService) EnsureDefaults(ctx context.Context) error {
	created := 0
	for _, in := range studio.DefaultPages {
		_, err := s.repo.FindBySlug(ctx, in.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("failed to look up default page %q: %w", in.Slug, err)
		}

		page, err := studio.NewPage(in)
		if err != nil {
			return err
		}
		if err := s.repo.Save(ctx, page); err != nil {
			return fmt.Errorf("failed to create default page %q: %w", in.Slug, err)
		}
		created++
	}

	if created > 0 {
		s.logger.Info("default studio pages created", zap.Int("count", created))
		s.invalidate(ctx)
	}
	return nil
}

// List returns one page of studio pages matching req.Search, in sort order
func (s *PageService) List(ctx context.Context, req ListPagesRequest) (*shared.Paginated[PageResponse], error) {
	if err := s.EnsureDefaults(ctx); err != nil {
		return nil, err
	}

	filter := shared.Filter{Page: req.Page, PageSize: shared.DefaultPageSize, Search: req.Search}.Normalize()
	pages, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	items := make([]PageResponse, len(pages))
	for i := range pages {
		items[i] = toPageResponse(&pages[i])
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Get returns a page by ID
func (s *PageService) Get(ctx context.Context, id uuid.UUID) (*PageResponse, error) {
	page, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toPageResponse(page)
	return &resp, nil
}

// Create creates a page with a unique slug
func (s *PageService) Create(ctx context.Context, req PageRequest) (*PageResponse, error) {
	page, err := studio.NewPage(req.toInput())
	if err != nil {
		return nil, err
	}
	if err := s.ensureSlugAvailable(ctx, page.Slug, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, page); err != nil {
		return nil, fmt.Errorf("failed to save page: %w", err)
	}

	s.logger.Info("studio page created",
		zap.String("id", page.ID.String()),
		zap.String("slug", page.Slug))
	s.invalidate(ctx)

	resp := toPageResponse(page)
	return &resp, nil
}

// Update replaces the fields of an existing page
func (s *PageService) Update(ctx context.Context, id uuid.UUID, req PageRequest) (*PageResponse, error) {
	page, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := page.Update(req.toInput()); err != nil {
		return nil, err
	}
	if err := s.ensureSlugAvailable(ctx, page.Slug, page.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, page); err != nil {
		return nil, fmt.Errorf("failed to save page: %w", err)
	}

	s.logger.Info("studio page updated", zap.String("id", page.ID.String()))
	s.invalidate(ctx)

	resp := toPageResponse(page)
	return &resp, nil
}

// Delete removes a page
func (s *PageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("studio page deleted", zap.String("id", id.String()))
	s.invalidate(ctx)
	return nil
}

// Welcome returns the active pages in sort order, served from cache when possible
func (s *PageService) Welcome(ctx context.Context) ([]studio.Section, error) {
	if s.cache != nil {
		sections, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("welcome cache read failed", zap.Error(err))
		} else if ok {
			return sections, nil
		}
	}

	if err := s.EnsureDefaults(ctx); err != nil {
		return nil, err
	}
	pages, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active pages: %w", err)
	}

	sections := make([]studio.Section, len(pages))
	for i := range pages {
		sections[i] = pages[i].ToSection()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, sections); err != nil {
			s.logger.Warn("welcome cache write failed", zap.Error(err))
		}
	}
	return sections, nil
}

func (s *PageService) ensureSlugAvailable(ctx context.Context, slug string, excludeID uuid.UUID) error {
	exists, err := s.repo.ExistsBySlugExcludingID(ctx, slug, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "Slug has already been taken")
	}
	return nil
}

// invalidate drops the welcome cache. Failures only delay visibility until the TTL.
func (s *PageService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("welcome cache invalidation failed", zap.Error(err))
	}
}
