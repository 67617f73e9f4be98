package report

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/report"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/infrastructure/printing"
	"github.com/pos/backend/internal/infrastructure/spreadsheet"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Kind names an exportable report
type Kind string

const (
	KindSales     Kind = "sales"
	KindCash      Kind = "cash"
	KindSoldItems Kind = "sold-items"
)

// Format is the file format of an export
type Format string

const (
	FormatXLS Format = "xls"
	FormatPDF Format = "pdf"
)

// PDFContentType is the content type of PDF exports
const PDFContentType = "application/pdf"

// ParseFormat parses the format query value. Empty means xls.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case "", FormatXLS:
		return FormatXLS, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", shared.NewDomainError("INVALID_FORMAT", "format must be xls or pdf")
	}
}

// ErrExportTooLarge is returned when an export would exceed the configured row limit
var ErrExportTooLarge = shared.NewDomainError("EXPORT_TOO_LARGE", "Export exceeds the maximum number of rows; narrow the date range")

// ExportArchive keeps a copy of every generated export
type ExportArchive interface {
	Store(ctx context.Context, key string, data []byte, contentType string) error
	// Fetch returns either a direct download URL or the stored bytes.
	// A missing key is shared.ErrNotFound.
	Fetch(ctx context.Context, key string) (*ArchivedExport, error)
	// Delete removes the export. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// ArchivedExport is a previously generated export. Exactly one of URL and Body is set.
type ArchivedExport struct {
	Key         string
	FileName    string
	ContentType string
	URL         string
	ExpiresAt   time.Time
	Body        io.ReadCloser
}

// ExportFile is a generated export ready for download
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
	Rows        int
	// ArchiveKey is set when a copy was archived
	ArchiveKey string
}

var archiveKeyPattern = regexp.MustCompile(`^exports/(sales|cash|sold-items)/\d{4}/\d{2}/[0-9a-f-]{36}\.(xls|pdf)$`)

var (
	// ErrArchiveDisabled is returned by archive lookups when no storage driver is configured
	ErrArchiveDisabled = shared.NewDomainError("NOT_FOUND", "Export archive is not configured")
	// ErrInvalidArchiveKey rejects keys that ArchiveKey could not have produced
	ErrInvalidArchiveKey = shared.NewDomainError("INVALID_ARCHIVE_KEY", "Archive key must look like exports/<report>/<yyyy>/<mm>/<id>.<xls|pdf>")
)

// report titles and download names
var exportNames = map[Kind]struct{ title, file string }{
	KindSales:     {"Laporan Penjualan", "laporan-penjualan"},
	KindCash:      {"Laporan Kas", "laporan-kas"},
	KindSoldItems: {"Laporan Item Terjual", "laporan-item-terjual"},
}

const exportTimeLayout = "2006-01-02 15:04"

// ExportService renders reports as spreadsheets and PDFs
type ExportService struct {
	reports  *ReportService
	renderer printing.PDFRenderer
	archive  ExportArchive
	limit    int
	logger   *zap.Logger
}

// NewExportService creates a new ExportService.
// archive may be nil; limit <= 0 disables the row limit.
func NewExportService(
	reports *ReportService,
	renderer printing.PDFRenderer,
	archive ExportArchive,
	limit int,
	logger *zap.Logger,
) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		reports:  reports,
		renderer: renderer,
		archive:  archive,
		limit:    limit,
		logger:   logger,
	}
}

// Export builds the requested report file over every row matching the filter
func (s *ExportService) Export(ctx context.Context, kind Kind, format Format, req ReportRequest) (*ExportFile, error) {
	names, ok := exportNames[kind]
	if !ok {
		return nil, shared.NewDomainError("INVALID_REPORT", "unknown report "+strconv.Quote(string(kind)))
	}
	filter, err := s.reports.ParseFilter(req)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithReport(ctx, string(kind))

	var doc printing.TableDocument
	switch kind {
	case KindSales:
		doc, err = s.salesDocument(ctx, filter)
	case KindCash:
		doc, err = s.cashDocument(ctx, filter, format)
	case KindSoldItems:
		doc, err = s.soldItemsDocument(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	doc.Title = names.title
	doc.Period = filter.Period()

	file := &ExportFile{
		FileName: names.file + "." + string(format),
		Rows:     doc.RowCount(),
	}
	switch format {
	case FormatPDF:
		result, err := s.renderer.Render(ctx, &printing.RenderRequest{Document: doc, FileName: file.FileName})
		if err != nil {
			return nil, fmt.Errorf("failed to render PDF: %w", err)
		}
		file.Data = result.PDFData
		file.ContentType = PDFContentType
	default:
		data, err := spreadsheet.RenderHTMLTable(spreadsheet.Table{Headers: doc.Headers, Rows: doc.Rows})
		if err != nil {
			return nil, err
		}
		file.Data = data
		file.ContentType = spreadsheet.ContentType
	}

	logger.L(ctx).Info("report exported",
		zap.String("format", string(format)),
		zap.Int("rows", file.Rows),
		zap.Int("bytes", len(file.Data)))

	s.archiveFile(ctx, kind, format, file)
	return file, nil
}

// archiveFile stores a copy of the export. Failures are logged and never fail the download.
func (s *ExportService) archiveFile(ctx context.Context, kind Kind, format Format, file *ExportFile) {
	if s.archive == nil {
		return
	}
	key := ArchiveKey(kind, format, time.Now().UTC(), uuid.New())
	if err := s.archive.Store(ctx, key, file.Data, file.ContentType); err != nil {
		logger.L(ctx).Warn("failed to archive export", zap.String("key", key), zap.Error(err))
		return
	}
	file.ArchiveKey = key
}

func (s *ExportService) checkArchiveKey(key string) error {
	if s.archive == nil {
		return ErrArchiveDisabled
	}
	if !archiveKeyPattern.MatchString(key) {
		return ErrInvalidArchiveKey
	}
	return nil
}

// FetchArchived looks up an archived export by the key returned with the original download
func (s *ExportService) FetchArchived(ctx context.Context, key string) (*ArchivedExport, error) {
	if err := s.checkArchiveKey(key); err != nil {
		return nil, err
	}
	archived, err := s.archive.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	archived.Key = key
	archived.FileName = path.Base(key)
	archived.ContentType = spreadsheet.ContentType
	if Format(strings.TrimPrefix(path.Ext(key), ".")) == FormatPDF {
		archived.ContentType = PDFContentType
	}
	return archived, nil
}

// DeleteArchived removes an archived export
func (s *ExportService) DeleteArchived(ctx context.Context, key string) error {
	if err := s.checkArchiveKey(key); err != nil {
		return err
	}
	if err := s.archive.Delete(ctx, key); err != nil {
		return err
	}
	logger.L(ctx).Info("archived export deleted", zap.String("key", key))
	return nil
}

// ArchiveKey returns exports/<report>/<yyyy>/<mm>/<id>.<ext>
func ArchiveKey(kind Kind, format Format, at time.Time, id uuid.UUID) string {
	return fmt.Sprintf("exports/%s/%04d/%02d/%s.%s", kind, at.Year(), int(at.Month()), id, format)
}

// checkLimit rejects exports over the row limit
func (s *ExportService) checkLimit(rows int64) error {
	if s.limit > 0 && rows > int64(s.limit) {
		return ErrExportTooLarge
	}
	return nil
}

func (s *ExportService) formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(s.reports.Location()).Format(exportTimeLayout)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func (s *ExportService) salesDocument(ctx context.Context, filter report.Filter) (printing.TableDocument, error) {
	// at most limit rows are loaded; the total decides whether the export is allowed
	rows, total, err := s.salesRepo().FindSales(ctx, filter, 1, s.limit)
	if err != nil {
		return printing.TableDocument{}, fmt.Errorf("failed to load sales: %w", err)
	}
	if err := s.checkLimit(total); err != nil {
		return printing.TableDocument{}, err
	}
	summary, err := s.salesRepo().SummarizeSales(ctx, filter)
	if err != nil {
		return printing.TableDocument{}, fmt.Errorf("failed to summarize sales: %w", err)
	}

	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = []any{
			i + 1,
			r.Invoice,
			orDash(strings.Join(r.ProductTitles, ", ")),
			s.formatTime(r.CreatedAt),
			orDash(r.CustomerName),
			orDash(r.CashierName),
			r.TotalItems,
			report.FormatRupiah(r.GrandTotal),
		}
	}

	return printing.TableDocument{
		Headers: []string{"No", "Invoice", "Produk", "Tanggal", "Pelanggan", "Kasir", "Item", "Total"},
		Rows:    out,
		TailLines: []string{
			"Total Pesanan: " + strconv.FormatInt(summary.OrdersCount, 10),
			"Total Pendapatan: " + report.FormatRupiah(summary.RevenueTotal),
			"Total Diskon: " + report.FormatRupiah(summary.DiscountTotal),
			"Item Terjual: " + strconv.FormatInt(summary.ItemsSold, 10),
			"Total Profit: " + report.FormatRupiah(summary.ProfitTotal),
			"Rata-rata Pesanan: " + report.FormatRupiah(summary.AverageOrder),
		},
	}, nil
}

// cashDocument lays the cash report out as one flat table for spreadsheets
// and as one section per category for PDFs
func (s *ExportService) cashDocument(ctx context.Context, filter report.Filter, format Format) (printing.TableDocument, error) {
	rows, err := s.reports.loadCashRows(ctx, filter)
	if err != nil {
		return printing.TableDocument{}, err
	}
	if err := s.checkLimit(int64(len(rows))); err != nil {
		return printing.TableDocument{}, err
	}
	summary := report.SummarizeCash(rows)
	tail := []string{
		"Total Uang Masuk: " + report.FormatRupiah(summary.CashInTotal),
		"Total Uang Keluar: " + report.FormatRupiah(summary.CashOutTotal),
		"Saldo Bersih: " + report.FormatRupiah(summary.NetTotal),
	}

	if format != FormatPDF {
		out := make([][]any, len(rows))
		for i, r := range rows {
			out[i] = []any{
				i + 1,
				s.formatTime(r.CreatedAt),
				r.Category,
				orDash(r.Description),
				report.FormatRupiah(r.CashIn),
				report.FormatRupiah(r.CashOut),
			}
		}
		return printing.TableDocument{
			Headers:   []string{"No", "Tanggal", "Kategori", "Keterangan", "Uang Masuk", "Uang Keluar"},
			Rows:      out,
			TailLines: tail,
		}, nil
	}

	categories := []string{report.CategorySales, report.CategoryCashIn, report.CategoryCashOut}
	sections := make([]printing.Section, len(categories))
	for i, category := range categories {
		var sectionRows [][]any
		subtotal := decimal.Zero
		for _, r := range rows {
			if r.Category != category {
				continue
			}
			amount := r.CashIn
			if category == report.CategoryCashOut {
				amount = r.CashOut
			}
			subtotal = subtotal.Add(amount)
			sectionRows = append(sectionRows, []any{
				len(sectionRows) + 1,
				s.formatTime(r.CreatedAt),
				orDash(r.Description),
				report.FormatRupiah(amount),
			})
		}
		sections[i] = printing.Section{
			Title: category,
			Rows:  sectionRows,
			FooterLines: []string{
				"Subtotal: " + report.FormatRupiah(subtotal),
				strconv.Itoa(len(sectionRows)) + " baris",
			},
		}
	}

	return printing.TableDocument{
		Headers:   []string{"No", "Tanggal", "Keterangan", "Jumlah"},
		Sections:  sections,
		TailLines: tail,
	}, nil
}

func (s *ExportService) soldItemsDocument(ctx context.Context, filter report.Filter) (printing.TableDocument, error) {
	rows, total, err := s.soldItemsRepo().FindSoldItems(ctx, filter, 1, s.limit)
	if err != nil {
		return printing.TableDocument{}, fmt.Errorf("failed to load sold items: %w", err)
	}
	if err := s.checkLimit(total); err != nil {
		return printing.TableDocument{}, err
	}
	summary, err := s.soldItemsRepo().SummarizeSoldItems(ctx, filter)
	if err != nil {
		return printing.TableDocument{}, fmt.Errorf("failed to summarize sold items: %w", err)
	}

	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = []any{
			i + 1,
			r.Invoice,
			orDash(r.ProductTitle),
			s.formatTime(r.CreatedAt),
			orDash(r.CustomerName),
			orDash(r.CashierName),
			r.Qty,
			report.FormatRupiah(r.Price),
			report.FormatRupiah(r.Subtotal),
		}
	}

	return printing.TableDocument{
		Headers: []string{"No", "Invoice", "Produk", "Tanggal", "Pelanggan", "Kasir", "Qty", "Harga", "Subtotal"},
		Rows:    out,
		TailLines: []string{
			"Total Item: " + strconv.FormatInt(summary.TotalItems, 10),
			"Total Nominal: " + report.FormatRupiah(summary.TotalNominal),
			"Total Invoice: " + strconv.FormatInt(summary.TotalInvoices, 10),
		},
	}, nil
}

func (s *ExportService) salesRepo() report.SalesReportRepository {
	return s.reports.salesRepo
}

func (s *ExportService) soldItemsRepo() report.SoldItemsReportRepository {
	return s.reports.soldItemsRepo
}
