package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/studio"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStudioPageRepository implements studio.PageRepository using GORM
type GormStudioPageRepository struct {
	db *gorm.DB
}

// NewGormStudioPageRepository creates a new GormStudioPageRepository
func NewGormStudioPageRepository(db *gorm.DB) *GormStudioPageRepository {
	return &GormStudioPageRepository{db: db}
}

// FindByID finds a page by its ID
func (r *GormStudioPageRepository) FindByID(ctx context.Context, id uuid.UUID) (*studio.Page, error) {
	var model models.StudioPageModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a page by its slug
func (r *GormStudioPageRepository) FindBySlug(ctx context.Context, slug string) (*studio.Page, error) {
	var model models.StudioPageModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of studio pages ordered by sort order, plus the total match count
func (r *GormStudioPageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]studio.Page, int64, error) {
	filter = filter.Normalize()
	query := r.db.WithContext(ctx).Model(&models.StudioPageModel{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("menu_label LIKE ? OR title LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pageModels []models.StudioPageModel
	if err := query.
		Order("sort_order ASC").
		Order("created_at ASC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&pageModels).Error; err != nil {
		return nil, 0, err
	}

	pages := make([]studio.Page, len(pageModels))
	for i := range pageModels {
		pages[i] = *pageModels[i].ToDomain()
	}
	return pages, total, nil
}

// FindActive returns active pages ordered by sort order
func (r *GormStudioPageRepository) FindActive(ctx context.Context) ([]studio.Page, error) {
	var pageModels []models.StudioPageModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&pageModels).Error; err != nil {
		return nil, err
	}

	pages := make([]studio.Page, len(pageModels))
	for i := range pageModels {
		pages[i] = *pageModels[i].ToDomain()
	}
	return pages, nil
}

// ExistsBySlugExcludingID reports whether another page already uses slug
func (r *GormStudioPageRepository) ExistsBySlugExcludingID(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.StudioPageModel{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a page
func (r *GormStudioPageRepository) Save(ctx context.Context, page *studio.Page) error {
	model := models.StudioPageModelFromDomain(page)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a page
func (r *GormStudioPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.StudioPageModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormStudioPageRepository implements studio.PageRepository
var _ studio.PageRepository = (*GormStudioPageRepository)(nil)
