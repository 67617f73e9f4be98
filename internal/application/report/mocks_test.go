package report

import (
	"context"

	"github.com/pos/backend/internal/domain/report"
	"github.com/pos/backend/internal/infrastructure/printing"
	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Mocks
// ============================================================================

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

type MockSoldItemsReportRepository struct {
	mock.Mock
}

func (m *MockSoldItemsReportRepository) FindSoldItems(ctx context.Context, filter report.Filter, page, pageSize int) ([]report.SoldItemRow, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]report.SoldItemRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockSoldItemsReportRepository) SummarizeSoldItems(ctx context.Context, filter report.Filter) (*report.SoldItemsSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.SoldItemsSummary), args.Error(1)
}

type MockFilterOptionRepository struct {
	mock.Mock
}

func (m *MockFilterOptionRepository) ListCashiers(ctx context.Context) ([]report.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.Option), args.Error(1)
}

func (m *MockFilterOptionRepository) ListCustomers(ctx context.Context) ([]report.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.Option), args.Error(1)
}

type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) Render(ctx context.Context, req *printing.RenderRequest) (*printing.RenderResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*printing.RenderResult), args.Error(1)
}

func (m *MockPDFRenderer) Close() error {
	return m.Called().Error(0)
}

type MockExportArchive struct {
	mock.Mock
}

func (m *MockExportArchive) Store(ctx context.Context, key string, data []byte, contentType string) error {
	return m.Called(ctx, key, data, contentType).Error(0)
}

func (m *MockExportArchive) Fetch(ctx context.Context, key string) (*ArchivedExport, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ArchivedExport), args.Error(1)
}

func (m *MockExportArchive) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
