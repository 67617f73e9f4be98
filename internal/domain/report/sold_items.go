package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SoldItemRow is one transaction line of a non-canceled transaction
type SoldItemRow struct {
	ID            uuid.UUID       `json:"id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	Invoice       string          `json:"invoice"`
	CreatedAt     time.Time       `json:"created_at"`
	ProductTitle  string          `json:"product_title"`
	CashierName   string          `json:"cashier_name"`
	CustomerName  string          `json:"customer_name"`
	Qty           int64           `json:"qty"`
	Price         decimal.Decimal `json:"price"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// SoldItemsSummary aggregates all lines matching the filter
type SoldItemsSummary struct {
	TotalItems    int64           `json:"total_items"`
	TotalNominal  decimal.Decimal `json:"total_nominal"`
	TotalInvoices int64           `json:"total_invoices"`
}
