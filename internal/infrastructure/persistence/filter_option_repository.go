package persistence

import (
	"context"

	"github.com/pos/backend/internal/domain/report"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormFilterOptionRepository lists cashiers and customers for report filters
type GormFilterOptionRepository struct {
	db *gorm.DB
}

// NewGormFilterOptionRepository creates a new GormFilterOptionRepository
func NewGormFilterOptionRepository(db *gorm.DB) *GormFilterOptionRepository {
	return &GormFilterOptionRepository{db: db}
}

// ListCashiers returns every user ordered by name
func (r *GormFilterOptionRepository) ListCashiers(ctx context.Context) ([]report.Option, error) {
	return r.list(ctx, &models.UserModel{})
}

// ListCustomers returns every customer ordered by name
func (r *GormFilterOptionRepository) ListCustomers(ctx context.Context) ([]report.Option, error) {
	return r.list(ctx, &models.CustomerModel{})
}

func (r *GormFilterOptionRepository) list(ctx context.Context, model any) ([]report.Option, error) {
	options := []report.Option{}
	err := r.db.WithContext(ctx).
		Model(model).
		Select("id", "name").
		Order("name ASC").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

var _ report.FilterOptionRepository = (*GormFilterOptionRepository)(nil)
