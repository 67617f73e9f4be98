package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSoldItemsReportRepository implements report.SoldItemsReportRepository using GORM
type GormSoldItemsReportRepository struct {
	db *gorm.DB
}

// NewGormSoldItemsReportRepository creates a new GormSoldItemsReportRepository
func NewGormSoldItemsReportRepository(db *gorm.DB) *GormSoldItemsReportRepository {
	return &GormSoldItemsReportRepository{db: db}
}

func (r *GormSoldItemsReportRepository) base(ctx context.Context, filter report.Filter) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transaction_details AS d").
		Joins("JOIN transactions AS t ON t.id = d.transaction_id").
		Scopes(notCanceled("t"), transactionFilter("t", filter))
}

// FindSoldItems returns lines of non-canceled transactions, newest first
func (r *GormSoldItemsReportRepository) FindSoldItems(ctx context.Context, filter report.Filter, page, pageSize int) ([]report.SoldItemRow, int64, error) {
	var total int64
	if err := r.base(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	type lineResult struct {
		ID            uuid.UUID
		TransactionID uuid.UUID
		Invoice       string
		CreatedAt     time.Time
		ProductTitle  *string
		CashierName   *string
		CustomerName  *string
		Qty           int64
		Price         decimal.Decimal
	}

	var results []lineResult
	err := r.base(ctx, filter).
		Select(`
			d.id, d.transaction_id, t.invoice, t.created_at, d.qty, d.price,
			p.title AS product_title,
			u.name AS cashier_name,
			c.name AS customer_name
		`).
		Joins("LEFT JOIN products AS p ON p.id = d.product_id").
		Joins("LEFT JOIN users AS u ON u.id = t.cashier_id").
		Joins("LEFT JOIN customers AS c ON c.id = t.customer_id").
		Order("t.created_at DESC").
		Order("d.created_at DESC").
		Order("d.id DESC").
		Scopes(paginate(page, pageSize)).
		Scan(&results).Error
	if err != nil {
		return nil, 0, err
	}

	rows := make([]report.SoldItemRow, len(results))
	for i, res := range results {
		rows[i] = report.SoldItemRow{
			ID:            res.ID,
			TransactionID: res.TransactionID,
			Invoice:       res.Invoice,
			CreatedAt:     res.CreatedAt,
			ProductTitle:  nameOrEmpty(res.ProductTitle),
			CashierName:   nameOrEmpty(res.CashierName),
			CustomerName:  nameOrEmpty(res.CustomerName),
			Qty:           res.Qty,
			Price:         res.Price,
			Subtotal:      res.Price.Mul(decimal.NewFromInt(res.Qty)),
		}
	}
	return rows, total, nil
}

// SummarizeSoldItems aggregates every line matching the filter
func (r *GormSoldItemsReportRepository) SummarizeSoldItems(ctx context.Context, filter report.Filter) (*report.SoldItemsSummary, error) {
	var totals struct {
		TotalItems    int64
		TotalNominal  decimal.Decimal
		TotalInvoices int64
	}
	err := r.base(ctx, filter).
		Select(`
			COALESCE(SUM(d.qty), 0) AS total_items,
			COALESCE(SUM(d.qty * d.price), 0) AS total_nominal,
			COUNT(DISTINCT d.transaction_id) AS total_invoices
		`).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return &report.SoldItemsSummary{
		TotalItems:    totals.TotalItems,
		TotalNominal:  totals.TotalNominal,
		TotalInvoices: totals.TotalInvoices,
	}, nil
}

var _ report.SoldItemsReportRepository = (*GormSoldItemsReportRepository)(nil)
