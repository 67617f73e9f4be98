package printing

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RenderRequest contains the document to render
type RenderRequest struct {
	// Document is the tabular report to lay out
	Document TableDocument
	// FileName is used for logging and as the download name
	FileName string
}

// RenderResult contains the output from PDF rendering
type RenderResult struct {
	// PDFData is the raw PDF file content
	PDFData []byte
	// PageCount is the number of pages in the PDF
	PageCount int
	// RenderDuration is how long the rendering took
	RenderDuration time.Duration
}

// PDFRenderer defines the interface for rendering report documents to PDF
type PDFRenderer interface {
	// Render converts a table document to a PDF file
	Render(ctx context.Context, req *RenderRequest) (*RenderResult, error)
	// Close releases any resources held by the renderer
	Close() error
}

// RenderError represents an error during PDF rendering or archiving
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for rendering failures
const (
	ErrCodeRenderCancelled = "RENDER_CANCELLED"
	ErrCodeInvalidRequest  = "INVALID_REQUEST"
	ErrCodeStorageFailed   = "STORAGE_FAILED"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// TableRenderer renders documents with the built-in layout engine.
// It holds no per-document state and is safe for concurrent use.
type TableRenderer struct {
	logger *zap.Logger
}

// NewTableRenderer creates a TableRenderer
func NewTableRenderer(logger *zap.Logger) *TableRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TableRenderer{logger: logger.Named("pdf")}
}

// Render lays out and serializes the document
func (r *TableRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	select {
	case <-ctx.Done():
		return nil, NewRenderError(ErrCodeRenderCancelled, "render cancelled", ctx.Err())
	default:
	}
	if req == nil {
		return nil, NewRenderError(ErrCodeInvalidRequest, "render request is nil", nil)
	}

	start := time.Now()
	pages := LayoutPages(req.Document)
	data := SerializePages(pages)
	elapsed := time.Since(start)

	r.logger.Debug("PDF rendered",
		zap.String("file", req.FileName),
		zap.Int("pages", len(pages)),
		zap.Int("bytes", len(data)),
		zap.Duration("duration", elapsed))

	return &RenderResult{
		PDFData:        data,
		PageCount:      len(pages),
		RenderDuration: elapsed,
	}, nil
}

// Close implements PDFRenderer
func (r *TableRenderer) Close() error {
	return nil
}

// Ensure TableRenderer implements PDFRenderer
var _ PDFRenderer = (*TableRenderer)(nil)
