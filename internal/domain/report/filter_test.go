package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func TestNewFilter_DefaultsToToday(t *testing.T) {
	// 20:30 UTC is already the next day in Jakarta
	now := time.Date(2024, 5, 10, 20, 30, 0, 0, time.UTC)

	f, err := NewFilter(FilterInput{}, now, jakarta)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, jakarta), f.StartDate)
	assert.Equal(t, f.StartDate, f.EndDate)
	assert.Equal(t, "2024-05-11 to 2024-05-11", f.Period())
	assert.Nil(t, f.CashierID)
	assert.Nil(t, f.CustomerID)
}

func TestNewFilter_ParsesInput(t *testing.T) {
	cashier := uuid.New()
	customer := uuid.New()

	f, err := NewFilter(FilterInput{
		StartDate:  "2024-01-01",
		EndDate:    " 2024-01-31 ",
		Invoice:    "  TRX-01 ",
		CashierID:  cashier.String(),
		CustomerID: customer.String(),
	}, time.Now(), jakarta)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01 to 2024-01-31", f.Period())
	assert.Equal(t, "TRX-01", f.Invoice)
	require.NotNil(t, f.CashierID)
	assert.Equal(t, cashier, *f.CashierID)
	require.NotNil(t, f.CustomerID)
	assert.Equal(t, customer, *f.CustomerID)

	from, to := f.Range()
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, jakarta), from)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, jakarta), to)
}

func TestNewFilter_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   FilterInput
		code string
	}{
		{"bad start", FilterInput{StartDate: "01/02/2024"}, "INVALID_START_DATE"},
		{"bad end", FilterInput{EndDate: "2024-13-01"}, "INVALID_END_DATE"},
		{"reversed range", FilterInput{StartDate: "2024-02-01", EndDate: "2024-01-01"}, "INVALID_DATE_RANGE"},
		{"bad cashier", FilterInput{CashierID: "7"}, "INVALID_CASHIER_ID"},
		{"bad customer", FilterInput{CustomerID: "abc"}, "INVALID_CUSTOMER_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFilter(tt.in, time.Now(), nil)
			var de *shared.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.code, de.Code)
		})
	}
}

func TestFilter_ExcludesCashEntries(t *testing.T) {
	id := uuid.New()
	assert.False(t, Filter{}.ExcludesCashEntries())
	assert.False(t, Filter{CashierID: &id}.ExcludesCashEntries())
	assert.True(t, Filter{Invoice: "TRX"}.ExcludesCashEntries())
	assert.True(t, Filter{CustomerID: &id}.ExcludesCashEntries())
}
