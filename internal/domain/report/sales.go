package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesRow is one non-canceled transaction in the sales report
type SalesRow struct {
	ID            uuid.UUID       `json:"id"`
	Invoice       string          `json:"invoice"`
	CreatedAt     time.Time       `json:"created_at"`
	CashierName   string          `json:"cashier_name"`
	CustomerName  string          `json:"customer_name"`
	ProductTitles []string        `json:"product_titles"`
	TotalItems    int64           `json:"total_items"`
	Discount      decimal.Decimal `json:"discount"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
}

// SalesSummary aggregates every transaction matching the filter, not just one page
type SalesSummary struct {
	OrdersCount   int64           `json:"orders_count"`
	RevenueTotal  decimal.Decimal `json:"revenue_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	ItemsSold     int64           `json:"items_sold"`
	ProfitTotal   decimal.Decimal `json:"profit_total"`
	AverageOrder  decimal.Decimal `json:"average_order"`
}

// NewSalesSummary derives the average order value, rounded to whole rupiah
func NewSalesSummary(orders int64, revenue, discount decimal.Decimal, itemsSold int64, profit decimal.Decimal) SalesSummary {
	avg := decimal.Zero
	if orders > 0 {
		avg = revenue.Div(decimal.NewFromInt(orders)).Round(0)
	}
	return SalesSummary{
		OrdersCount:   orders,
		RevenueTotal:  revenue,
		DiscountTotal: discount,
		ItemsSold:     itemsSold,
		ProfitTotal:   profit,
		AverageOrder:  avg,
	}
}
