package persistence

import (
	"context"

	"github.com/pos/backend/internal/domain/report"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCashReportRepository implements report.CashReportRepository using GORM
type GormCashReportRepository struct {
	db *gorm.DB
}

// NewGormCashReportRepository creates a new GormCashReportRepository
func NewGormCashReportRepository(db *gorm.DB) *GormCashReportRepository {
	return &GormCashReportRepository{db: db}
}

// FindCashTransactions returns every transaction matching the filter, newest first.
// Canceled transactions are included.
func (r *GormCashReportRepository) FindCashTransactions(ctx context.Context, filter report.Filter) ([]report.CashTransaction, error) {
	var trxModels []models.TransactionModel
	err := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Select("id", "invoice", "grand_total", "created_at").
		Scopes(transactionFilter("", filter)).
		Order("created_at DESC").
		Find(&trxModels).Error
	if err != nil {
		return nil, err
	}

	out := make([]report.CashTransaction, len(trxModels))
	for i := range trxModels {
		out[i] = trxModels[i].ToCashTransaction()
	}
	return out, nil
}

// FindCashEntries returns manual entries in the date range, newest first.
// Entries never match an invoice or customer filter.
func (r *GormCashReportRepository) FindCashEntries(ctx context.Context, filter report.Filter) ([]report.CashEntry, error) {
	if filter.ExcludesCashEntries() {
		return []report.CashEntry{}, nil
	}

	from, to := filter.Range()
	query := r.db.WithContext(ctx).
		Model(&models.CashEntryModel{}).
		Where("created_at >= ? AND created_at < ?", from, to)
	if filter.CashierID != nil {
		query = query.Where("cashier_id = ?", *filter.CashierID)
	}

	var entryModels []models.CashEntryModel
	if err := query.Order("created_at DESC").Find(&entryModels).Error; err != nil {
		return nil, err
	}

	out := make([]report.CashEntry, len(entryModels))
	for i := range entryModels {
		out[i] = entryModels[i].ToDomain()
	}
	return out, nil
}

var _ report.CashReportRepository = (*GormCashReportRepository)(nil)
