package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSalesSummary(t *testing.T) {
	s := NewSalesSummary(3, decimal.NewFromInt(100000), decimal.NewFromInt(5000), 7, decimal.NewFromInt(20000))
	assert.True(t, s.AverageOrder.Equal(decimal.NewFromInt(33333)), s.AverageOrder.String())
	assert.Equal(t, int64(7), s.ItemsSold)

	s = NewSalesSummary(2, decimal.NewFromInt(5), decimal.Zero, 0, decimal.Zero)
	assert.True(t, s.AverageOrder.Equal(decimal.NewFromInt(3)), "2.5 rounds up")

	empty := NewSalesSummary(0, decimal.Zero, decimal.Zero, 0, decimal.Zero)
	assert.True(t, empty.AverageOrder.IsZero())
}

func TestMergeCashRows(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	trxID := uuid.New()
	inID := uuid.New()
	outID := uuid.New()

	rows := MergeCashRows(
		[]CashTransaction{{ID: trxID, Invoice: "TRX-1", GrandTotal: decimal.NewFromInt(50000), CreatedAt: base.Add(time.Hour)}},
		[]CashEntry{
			{ID: inID, Kind: CashEntryIn, Description: "Modal awal", Amount: decimal.NewFromInt(100000), CreatedAt: base},
			{ID: outID, Kind: CashEntryOut, Description: "Beli es", Amount: decimal.NewFromInt(15000), CreatedAt: base.Add(2 * time.Hour)},
		},
	)

	require.Len(t, rows, 3)
	assert.Equal(t, "cash-entry-"+outID.String(), rows[0].ID)
	assert.Equal(t, CategoryCashOut, rows[0].Category)
	assert.True(t, rows[0].CashOut.Equal(decimal.NewFromInt(15000)))
	assert.True(t, rows[0].CashIn.IsZero())

	assert.Equal(t, "transaction-"+trxID.String(), rows[1].ID)
	assert.Equal(t, CategorySales, rows[1].Category)
	assert.Equal(t, "TRX-1", rows[1].Description)

	assert.Equal(t, CategoryCashIn, rows[2].Category)

	summary := SummarizeCash(rows)
	assert.True(t, summary.CashInTotal.Equal(decimal.NewFromInt(150000)))
	assert.True(t, summary.CashOutTotal.Equal(decimal.NewFromInt(15000)))
	assert.True(t, summary.NetTotal.Equal(decimal.NewFromInt(135000)))
}

func TestMergeCashRows_TiesKeepTransactionsFirst(t *testing.T) {
	at := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	rows := MergeCashRows(
		[]CashTransaction{{ID: uuid.New(), CreatedAt: at}},
		[]CashEntry{{ID: uuid.New(), Kind: CashEntryIn, CreatedAt: at}},
	)
	require.Len(t, rows, 2)
	assert.Equal(t, CategorySales, rows[0].Category)
}

func TestSummarizeCash_Empty(t *testing.T) {
	s := SummarizeCash(nil)
	assert.True(t, s.NetTotal.IsZero())
}

func TestPageOf(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, PageOf(rows, 1, 10))
	assert.Equal(t, []int{11, 12}, PageOf(rows, 2, 10))
	assert.Empty(t, PageOf(rows, 3, 10))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, PageOf(rows, 0, 0))
	assert.Empty(t, PageOf([]int{}, 1, 10))
}
