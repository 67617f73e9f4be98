package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSalesReportRepository implements report.SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

func (r *GormSalesReportRepository) base(ctx context.Context, filter report.Filter) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions AS t").
		Scopes(notCanceled("t"), transactionFilter("t", filter))
}

// FindSales returns non-canceled transactions newest first with their item and profit sums
func (r *GormSalesReportRepository) FindSales(ctx context.Context, filter report.Filter, page, pageSize int) ([]report.SalesRow, int64, error) {
	var total int64
	if err := r.base(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	type salesResult struct {
		ID           uuid.UUID
		Invoice      string
		CreatedAt    time.Time
		CashierName  *string
		CustomerName *string
		Discount     decimal.Decimal
		GrandTotal   decimal.Decimal
		TotalItems   int64
		TotalProfit  decimal.Decimal
	}

	var results []salesResult
	err := r.base(ctx, filter).
		Select(`
			t.id, t.invoice, t.created_at, t.discount, t.grand_total,
			u.name AS cashier_name,
			c.name AS customer_name,
			(SELECT COALESCE(SUM(d.qty), 0) FROM transaction_details d WHERE d.transaction_id = t.id) AS total_items,
			(SELECT COALESCE(SUM(p.total), 0) FROM profits p WHERE p.transaction_id = t.id) AS total_profit
		`).
		Joins("LEFT JOIN users AS u ON u.id = t.cashier_id").
		Joins("LEFT JOIN customers AS c ON c.id = t.customer_id").
		Order("t.created_at DESC").
		Order("t.id DESC").
		Scopes(paginate(page, pageSize)).
		Scan(&results).Error
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(results))
	for i, res := range results {
		ids[i] = res.ID
	}
	titles, err := r.productTitles(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]report.SalesRow, len(results))
	for i, res := range results {
		rows[i] = report.SalesRow{
			ID:            res.ID,
			Invoice:       res.Invoice,
			CreatedAt:     res.CreatedAt,
			CashierName:   nameOrEmpty(res.CashierName),
			CustomerName:  nameOrEmpty(res.CustomerName),
			ProductTitles: titles[res.ID],
			TotalItems:    res.TotalItems,
			Discount:      res.Discount,
			GrandTotal:    res.GrandTotal,
			TotalProfit:   res.TotalProfit,
		}
	}
	return rows, total, nil
}

// productTitles returns the distinct product titles of each transaction in line order
func (r *GormSalesReportRepository) productTitles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]string, error) {
	out := make(map[uuid.UUID][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	type titleResult struct {
		TransactionID uuid.UUID
		Title         string
	}
	var results []titleResult
	err := r.db.WithContext(ctx).
		Table("transaction_details AS d").
		Select("d.transaction_id, p.title").
		Joins("JOIN products AS p ON p.id = d.product_id").
		Where("d.transaction_id IN ?", ids).
		Order("d.created_at ASC").
		Order("d.id ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]map[string]bool, len(ids))
	for _, res := range results {
		if res.Title == "" {
			continue
		}
		if seen[res.TransactionID] == nil {
			seen[res.TransactionID] = make(map[string]bool)
		}
		if seen[res.TransactionID][res.Title] {
			continue
		}
		seen[res.TransactionID][res.Title] = true
		out[res.TransactionID] = append(out[res.TransactionID], res.Title)
	}
	return out, nil
}

// SummarizeSales aggregates every non-canceled transaction matching the filter
func (r *GormSalesReportRepository) SummarizeSales(ctx context.Context, filter report.Filter) (*report.SalesSummary, error) {
	var totals struct {
		OrdersCount   int64
		RevenueTotal  decimal.Decimal
		DiscountTotal decimal.Decimal
	}
	err := r.base(ctx, filter).
		Select(`
			COUNT(*) AS orders_count,
			COALESCE(SUM(t.grand_total), 0) AS revenue_total,
			COALESCE(SUM(t.discount), 0) AS discount_total
		`).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	var items struct{ Total int64 }
	err = r.db.WithContext(ctx).
		Table("transaction_details AS d").
		Joins("JOIN transactions AS t ON t.id = d.transaction_id").
		Scopes(notCanceled("t"), transactionFilter("t", filter)).
		Select("COALESCE(SUM(d.qty), 0) AS total").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	var profit struct{ Total decimal.Decimal }
	err = r.db.WithContext(ctx).
		Table("profits AS p").
		Joins("JOIN transactions AS t ON t.id = p.transaction_id").
		Scopes(notCanceled("t"), transactionFilter("t", filter)).
		Select("COALESCE(SUM(p.total), 0) AS total").
		Scan(&profit).Error
	if err != nil {
		return nil, err
	}

	summary := report.NewSalesSummary(totals.OrdersCount, totals.RevenueTotal, totals.DiscountTotal, items.Total, profit.Total)
	return &summary, nil
}

var _ report.SalesReportRepository = (*GormSalesReportRepository)(nil)
