package studio

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// PageRepository defines the interface for studio page persistence
type PageRepository interface {
	// FindByID finds a page by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Page, error)

	// FindBySlug finds a page by its slug
	FindBySlug(ctx context.Context, slug string) (*Page, error)

	// FindAll returns pages whose menu label or title contains filter.Search, ordered by sort order
	FindAll(ctx context.Context, filter shared.Filter) ([]Page, int64, error)

	// FindActive returns active pages ordered by sort order
	FindActive(ctx context.Context) ([]Page, error)

	// ExistsBySlugExcludingID checks slug uniqueness, ignoring the given page
	ExistsBySlugExcludingID(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	// Save creates or updates a page
	Save(ctx context.Context, page *Page) error

	// Delete deletes a page
	Delete(ctx context.Context, id uuid.UUID) error
}
