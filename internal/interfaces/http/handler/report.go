package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	reportapp "github.com/pos/backend/internal/application/report"
	"github.com/pos/backend/internal/infrastructure/logger"
)

// ReportHandler serves the sales, cash and sold items reports and their exports
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
	exportService *reportapp.ExportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService, exportService *reportapp.ExportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.GET("/filter-options", h.FilterOptions)

	reports.GET("/sales", h.Sales)
	reports.GET("/cash", h.Cash)
	reports.GET("/sold-items", h.SoldItems)

	for _, kind := range []reportapp.Kind{reportapp.KindSales, reportapp.KindCash, reportapp.KindSoldItems} {
		reports.GET("/"+string(kind)+"/export", h.Export(kind))
	}

	reports.GET("/archive/*key", h.DownloadArchived)
	reports.DELETE("/archive/*key", h.DeleteArchived)
}

// bindReport parses the shared report query and tags the request context with the report name
func (h *ReportHandler) bindReport(c *gin.Context, kind reportapp.Kind) (reportapp.ReportRequest, bool) {
	c.Request = c.Request.WithContext(logger.WithReport(c.Request.Context(), string(kind)))

	var req reportapp.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return req, false
	}
	return req, true
}

// Sales godoc
// @Summary      Sales report
// @Description  One page of non-canceled transactions with a summary over every match
// @Tags         reports
// @Produce      json
// @Param        start_date  query string false "YYYY-MM-DD, defaults to today"
// @Param        end_date    query string false "YYYY-MM-DD, defaults to today"
// @Param        invoice     query string false "Invoice contains"
// @Param        cashier_id  query string false "Cashier ID"
// @Param        customer_id query string false "Customer ID"
// @Param        page        query int    false "Page number"
// @Success      200 {object} dto.Response
// @Router       /reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	req, ok := h.bindReport(c, reportapp.KindSales)
	if !ok {
		return
	}
	resp, err := h.reportService.Sales(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cash godoc
// @Summary      Cash report
// @Description  Transactions merged with manual cash entries, newest first
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /reports/cash [get]
func (h *ReportHandler) Cash(c *gin.Context) {
	req, ok := h.bindReport(c, reportapp.KindCash)
	if !ok {
		return
	}
	resp, err := h.reportService.Cash(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SoldItems godoc
// @Summary      Sold items report
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /reports/sold-items [get]
func (h *ReportHandler) SoldItems(c *gin.Context) {
	req, ok := h.bindReport(c, reportapp.KindSoldItems)
	if !ok {
		return
	}
	resp, err := h.reportService.SoldItems(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// FilterOptions godoc
// @Summary      Report filter choices
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /reports/filter-options [get]
func (h *ReportHandler) FilterOptions(c *gin.Context) {
	resp, err := h.reportService.FilterOptions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Export godoc
// @Summary      Export a report
// @Description  Downloads every matching row as xls (HTML table) or pdf
// @Tags         reports
// @Produce      application/vnd.ms-excel,application/pdf
// @Param        format query string false "xls or pdf" Enums(xls, pdf)
// @Success      200 {file} file
// @Failure      422 {object} dto.Response
// @Router       /reports/{kind}/export [get]
func (h *ReportHandler) Export(kind reportapp.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := h.bindReport(c, kind)
		if !ok {
			return
		}
		format, err := reportapp.ParseFormat(c.Query("format"))
		if err != nil {
			h.HandleError(c, err)
			return
		}

		file, err := h.exportService.Export(c.Request.Context(), kind, format, req)
		if err != nil {
			h.HandleError(c, err)
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
		c.Header("X-Export-Rows", strconv.Itoa(file.Rows))
		if file.ArchiveKey != "" {
			c.Header("X-Export-Archive-Key", file.ArchiveKey)
		}
		c.Data(http.StatusOK, file.ContentType, file.Data)
	}
}

// archiveKey strips the leading slash gin leaves on a catch-all parameter
func archiveKey(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("key"), "/")
}

// DownloadArchived godoc
// @Summary      Download an archived export
// @Description  Streams the stored copy, or redirects to a presigned URL when the archive is object storage
// @Tags         reports
// @Produce      application/vnd.ms-excel,application/pdf
// @Param        key path string true "Key from the X-Export-Archive-Key header"
// @Success      200 {file} file
// @Success      302
// @Failure      404 {object} dto.Response
// @Router       /reports/archive/{key} [get]
func (h *ReportHandler) DownloadArchived(c *gin.Context) {
	archived, err := h.exportService.FetchArchived(c.Request.Context(), archiveKey(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if archived.URL != "" {
		c.Redirect(http.StatusFound, archived.URL)
		return
	}
	defer archived.Body.Close()

	c.DataFromReader(http.StatusOK, -1, archived.ContentType, archived.Body, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", archived.FileName),
	})
}

// DeleteArchived godoc
// @Summary      Delete an archived export
// @Tags         reports
// @Param        key path string true "Archive key"
// @Success      204
// @Router       /reports/archive/{key} [delete]
func (h *ReportHandler) DeleteArchived(c *gin.Context) {
	if err := h.exportService.DeleteArchived(c.Request.Context(), archiveKey(c)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
