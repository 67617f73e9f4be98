package report

import (
	"context"

	"github.com/google/uuid"
)

// SalesReportRepository reads non-canceled transactions
type SalesReportRepository interface {
	// FindSales returns one page of transactions, newest first. pageSize <= 0 returns all rows.
	FindSales(ctx context.Context, filter Filter, page, pageSize int) ([]SalesRow, int64, error)

	// SummarizeSales aggregates every transaction matching the filter
	SummarizeSales(ctx context.Context, filter Filter) (*SalesSummary, error)
}

// CashReportRepository reads the two sources of the cash report
type CashReportRepository interface {
	// FindCashTransactions returns transactions matching the filter, canceled ones included
	FindCashTransactions(ctx context.Context, filter Filter) ([]CashTransaction, error)

	// FindCashEntries returns manual cash entries in the date range for the cashier filter
	FindCashEntries(ctx context.Context, filter Filter) ([]CashEntry, error)
}

// SoldItemsReportRepository reads transaction lines
type SoldItemsReportRepository interface {
	// FindSoldItems returns one page of lines, newest first. pageSize <= 0 returns all rows.
	FindSoldItems(ctx context.Context, filter Filter, page, pageSize int) ([]SoldItemRow, int64, error)

	// SummarizeSoldItems aggregates every line matching the filter
	SummarizeSoldItems(ctx context.Context, filter Filter) (*SoldItemsSummary, error)
}

// Option is an id/name pair offered as a report filter choice
type Option struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// FilterOptionRepository lists cashiers and customers for the filter pickers
type FilterOptionRepository interface {
	ListCashiers(ctx context.Context) ([]Option, error)
	ListCustomers(ctx context.Context) ([]Option, error)
}
