package handler

import (
	"context"

	"github.com/google/uuid"
	reportapp "github.com/pos/backend/internal/application/report"
	"github.com/pos/backend/internal/domain/report"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/studio"
	"github.com/stretchr/testify/mock"
)

// MockPageRepository implements studio.PageRepository for testing
type MockPageRepository struct {
	mock.Mock
}

func (m *MockPageRepository) FindByID(ctx context.Context, id uuid.UUID) (*studio.Page, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*studio.Page), args.Error(1)
}

func (m *MockPageRepository) FindBySlug(ctx context.Context, slug string) (*studio.Page, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*studio.Page), args.Error(1)
}

func (m *MockPageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]studio.Page, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]studio.Page), args.Get(1).(int64), args.Error(2)
}

func (m *MockPageRepository) FindActive(ctx context.Context) ([]studio.Page, error) {
	args := m.Called(ctx)
	return args.Get(0).([]studio.Page), args.Error(1)
}

func (m *MockPageRepository) ExistsBySlugExcludingID(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPageRepository) Save(ctx context.Context, page *studio.Page) error {
	return m.Called(ctx, page).Error(0)
}

func (m *MockPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockSalesReportRepository implements report.SalesReportRepository for testing
type MockSalesReportRepository struct {
	mock.Mock
}

func (m *MockSalesReportRepository) FindSales(ctx context.Context, filter report.Filter, page, pageSize int) ([]report.SalesRow, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]report.SalesRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockSalesReportRepository) SummarizeSales(ctx context.Context, filter report.Filter) (*report.SalesSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.SalesSummary), args.Error(1)
}

// MockCashReportRepository implements report.CashReportRepository for testing
type MockCashReportRepository struct {
	mock.Mock
}

func (m *MockCashReportRepository) FindCashTransactions(ctx context.Context, filter report.Filter) ([]report.CashTransaction, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]report.CashTransaction), args.Error(1)
}

func (m *MockCashReportRepository) FindCashEntries(ctx context.Context, filter report.Filter) ([]report.CashEntry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]report.CashEntry), args.Error(1)
}

// MockSoldItemsReportRepository implements report.SoldItemsReportRepository for testing
type MockSoldItemsReportRepository struct {
	mock.Mock
}

func (m *MockSoldItemsReportRepository) FindSoldItems(ctx context.Context, filter report.Filter, page, pageSize int) ([]report.SoldItemRow, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]report.SoldItemRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockSoldItemsReportRepository) SummarizeSoldItems(ctx context.Context, filter report.Filter) (*report.SoldItemsSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.SoldItemsSummary), args.Error(1)
}

// MockFilterOptionRepository implements report.FilterOptionRepository for testing
type MockFilterOptionRepository struct {
	mock.Mock
}

func (m *MockFilterOptionRepository) ListCashiers(ctx context.Context) ([]report.Option, error) {
	args := m.Called(ctx)
	return args.Get(0).([]report.Option), args.Error(1)
}

func (m *MockFilterOptionRepository) ListCustomers(ctx context.Context) ([]report.Option, error) {
	args := m.Called(ctx)
	return args.Get(0).([]report.Option), args.Error(1)
}

// MockExportArchive implements report.ExportArchive for testing
type MockExportArchive struct {
	mock.Mock
}

func (m *MockExportArchive) Store(ctx context.Context, key string, data []byte, contentType string) error {
	return m.Called(ctx, key, data, contentType).Error(0)
}

func (m *MockExportArchive) Fetch(ctx context.Context, key string) (*reportapp.ArchivedExport, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reportapp.ArchivedExport), args.Error(1)
}

func (m *MockExportArchive) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
