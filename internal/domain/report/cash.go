package report

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cash report categories, as printed on the report
const (
	CategorySales   = "Transaksi Penjualan"
	CategoryCashIn  = "Uang Masuk"
	CategoryCashOut = "Uang Keluar"
)

// CashEntryKind is the direction of a manual cash entry
type CashEntryKind string

const (
	CashEntryIn  CashEntryKind = "in"
	CashEntryOut CashEntryKind = "out"
)

// CashTransaction is a sales transaction as it appears in the cash report.
// Canceled transactions are included.
type CashTransaction struct {
	ID         uuid.UUID
	Invoice    string
	GrandTotal decimal.Decimal
	CreatedAt  time.Time
}

// CashEntry is a manual cash movement recorded by a cashier
type CashEntry struct {
	ID          uuid.UUID
	Kind        CashEntryKind
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// CashRow is one line of the merged cash report
type CashRow struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	CashIn      decimal.Decimal `json:"cash_in"`
	CashOut     decimal.Decimal `json:"cash_out"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CashSummary totals the merged cash rows
type CashSummary struct {
	CashInTotal  decimal.Decimal `json:"cash_in_total"`
	CashOutTotal decimal.Decimal `json:"cash_out_total"`
	NetTotal     decimal.Decimal `json:"net_total"`
}

// MergeCashRows combines transactions and entries, newest first.
// Rows created at the same instant keep transactions before entries.
func MergeCashRows(transactions []CashTransaction, entries []CashEntry) []CashRow {
	rows := make([]CashRow, 0, len(transactions)+len(entries))
	for _, trx := range transactions {
		rows = append(rows, CashRow{
			ID:          "transaction-" + trx.ID.String(),
			Category:    CategorySales,
			Description: trx.Invoice,
			CashIn:      trx.GrandTotal,
			CashOut:     decimal.Zero,
			CreatedAt:   trx.CreatedAt,
		})
	}
	for _, e := range entries {
		row := CashRow{
			ID:          "cash-entry-" + e.ID.String(),
			Description: e.Description,
			CashIn:      decimal.Zero,
			CashOut:     decimal.Zero,
			CreatedAt:   e.CreatedAt,
		}
		if e.Kind == CashEntryIn {
			row.Category = CategoryCashIn
			row.CashIn = e.Amount
		} else {
			row.Category = CategoryCashOut
			row.CashOut = e.Amount
		}
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b CashRow) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return rows
}

// SummarizeCash totals cash in and out over all rows
func SummarizeCash(rows []CashRow) CashSummary {
	in, out := decimal.Zero, decimal.Zero
	for _, r := range rows {
		in = in.Add(r.CashIn)
		out = out.Add(r.CashOut)
	}
	return CashSummary{
		CashInTotal:  in,
		CashOutTotal: out,
		NetTotal:     in.Sub(out),
	}
}

// PageOf returns the 1-based page of rows; out of range pages are empty
func PageOf[T any](rows []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []T{}
	}
	end := min(start+pageSize, len(rows))
	return rows[start:end]
}
