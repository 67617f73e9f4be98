package report

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// DateLayout is the wire and display format of report dates
const DateLayout = "2006-01-02"

// DefaultPageSize is the number of rows per report page
const DefaultPageSize = 10

// Filter narrows every report to a date range and optional invoice, cashier and customer.
// StartDate and EndDate are calendar days, both inclusive.
type Filter struct {
	StartDate  time.Time
	EndDate    time.Time
	Invoice    string
	CashierID  *uuid.UUID
	CustomerID *uuid.UUID
}

// FilterInput is the raw filter as received from a request
type FilterInput struct {
	StartDate  string
	EndDate    string
	Invoice    string
	CashierID  string
	CustomerID string
}

// NewFilter parses the input. Missing dates default to today in loc.
func NewFilter(in FilterInput, now time.Time, loc *time.Location) (Filter, error) {
	if loc == nil {
		loc = time.Local
	}
	today := truncateDay(now.In(loc))

	start, err := parseDay(in.StartDate, today, loc)
	if err != nil {
		return Filter{}, shared.NewDomainError("INVALID_START_DATE", "start_date must use the YYYY-MM-DD format")
	}
	end, err := parseDay(in.EndDate, today, loc)
	if err != nil {
		return Filter{}, shared.NewDomainError("INVALID_END_DATE", "end_date must use the YYYY-MM-DD format")
	}
	if end.Before(start) {
		return Filter{}, shared.NewDomainError("INVALID_DATE_RANGE", "end_date cannot be before start_date")
	}

	f := Filter{
		StartDate: start,
		EndDate:   end,
		Invoice:   strings.TrimSpace(in.Invoice),
	}
	if f.CashierID, err = parseOptionalID(in.CashierID); err != nil {
		return Filter{}, shared.NewDomainError("INVALID_CASHIER_ID", "cashier_id must be a valid UUID")
	}
	if f.CustomerID, err = parseOptionalID(in.CustomerID); err != nil {
		return Filter{}, shared.NewDomainError("INVALID_CUSTOMER_ID", "customer_id must be a valid UUID")
	}
	return f, nil
}

// Range returns the half-open instant range [start of StartDate, start of the day after EndDate)
func (f Filter) Range() (from, to time.Time) {
	return f.StartDate, f.EndDate.AddDate(0, 0, 1)
}

// Period is the human readable range printed on exports
func (f Filter) Period() string {
	return f.StartDate.Format(DateLayout) + " to " + f.EndDate.Format(DateLayout)
}

// ExcludesCashEntries reports whether manual cash entries must be left out.
// Cash entries carry no invoice or customer, so those filters can never match them.
func (f Filter) ExcludesCashEntries() bool {
	return f.Invoice != "" || f.CustomerID != nil
}

func parseDay(value string, fallback time.Time, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	return time.ParseInLocation(DateLayout, value, loc)
}

func parseOptionalID(value string) (*uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
