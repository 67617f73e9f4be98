package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pos/backend/internal/domain/report"
)

// ReportService serves the paginated sales, cash and sold items reports
type ReportService struct {
	salesRepo     report.SalesReportRepository
	cashRepo      report.CashReportRepository
	soldItemsRepo report.SoldItemsReportRepository
	optionRepo    report.FilterOptionRepository
	location      *time.Location
	pageSize      int
	now           func() time.Time
}

// NewReportService creates a new ReportService.
// Report dates default to today in location; pageSize <= 0 uses report.DefaultPageSize.
func NewReportService(
	salesRepo report.SalesReportRepository,
	cashRepo report.CashReportRepository,
	soldItemsRepo report.SoldItemsReportRepository,
	optionRepo report.FilterOptionRepository,
	location *time.Location,
	pageSize int,
) *ReportService {
	if location == nil {
		location = time.Local
	}
	if pageSize <= 0 {
		pageSize = report.DefaultPageSize
	}
	return &ReportService{
		salesRepo:     salesRepo,
		cashRepo:      cashRepo,
		soldItemsRepo: soldItemsRepo,
		optionRepo:    optionRepo,
		location:      location,
		pageSize:      pageSize,
		now:           time.Now,
	}
}

// Location returns the time zone report dates are interpreted in
func (s *ReportService) Location() *time.Location {
	return s.location
}

// ParseFilter validates the request filter and fills in default dates
func (s *ReportService) ParseFilter(req ReportRequest) (report.Filter, error) {
	return report.NewFilter(req.filterInput(), s.now(), s.location)
}

func pageOrFirst(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Sales returns one page of the sales report with the summary over all matching rows
func (s *ReportService) Sales(ctx context.Context, req ReportRequest) (*SalesReportResponse, error) {
	filter, err := s.ParseFilter(req)
	if err != nil {
		return nil, err
	}
	page := pageOrFirst(req.Page)

	rows, total, err := s.salesRepo.FindSales(ctx, filter, page, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	summary, err := s.salesRepo.SummarizeSales(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize sales: %w", err)
	}
	if rows == nil {
		rows = []report.SalesRow{}
	}

	return &SalesReportResponse{
		Filters: toFilterResponse(filter),
		Items:   rows,
		Meta:    newPageMeta(total, page, s.pageSize),
		Summary: *summary,
	}, nil
}

// loadCashRows merges every transaction and cash entry matching the filter, newest first
func (s *ReportService) loadCashRows(ctx context.Context, filter report.Filter) ([]report.CashRow, error) {
	transactions, err := s.cashRepo.FindCashTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load cash transactions: %w", err)
	}
	entries, err := s.cashRepo.FindCashEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load cash entries: %w", err)
	}
	return report.MergeCashRows(transactions, entries), nil
}

// Cash returns one page of the merged cash report. The two sources are merged
// and paginated in memory because they live in different tables.
func (s *ReportService) Cash(ctx context.Context, req ReportRequest) (*CashReportResponse, error) {
	filter, err := s.ParseFilter(req)
	if err != nil {
		return nil, err
	}
	page := pageOrFirst(req.Page)

	rows, err := s.loadCashRows(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &CashReportResponse{
		Filters: toFilterResponse(filter),
		Items:   report.PageOf(rows, page, s.pageSize),
		Meta:    newPageMeta(int64(len(rows)), page, s.pageSize),
		Summary: report.SummarizeCash(rows),
	}, nil
}

// SoldItems returns one page of the sold items report
func (s *ReportService) SoldItems(ctx context.Context, req ReportRequest) (*SoldItemsReportResponse, error) {
	filter, err := s.ParseFilter(req)
	if err != nil {
		return nil, err
	}
	page := pageOrFirst(req.Page)

	rows, total, err := s.soldItemsRepo.FindSoldItems(ctx, filter, page, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load sold items: %w", err)
	}
	summary, err := s.soldItemsRepo.SummarizeSoldItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize sold items: %w", err)
	}
	if rows == nil {
		rows = []report.SoldItemRow{}
	}

	return &SoldItemsReportResponse{
		Filters: toFilterResponse(filter),
		Items:   rows,
		Meta:    newPageMeta(total, page, s.pageSize),
		Summary: *summary,
	}, nil
}

// FilterOptions lists cashiers and customers ordered by name
func (s *ReportService) FilterOptions(ctx context.Context) (*FilterOptionsResponse, error) {
	cashiers, err := s.optionRepo.ListCashiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cashiers: %w", err)
	}
	customers, err := s.optionRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if cashiers == nil {
		cashiers = []report.Option{}
	}
	if customers == nil {
		customers = []report.Option{}
	}
	return &FilterOptionsResponse{Cashiers: cashiers, Customers: customers}, nil
}
