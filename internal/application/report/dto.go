package report

import (
	"github.com/pos/backend/internal/domain/report"
)

// ReportRequest is the query string shared by every report and export endpoint
type ReportRequest struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Invoice    string `form:"invoice"`
	CashierID  string `form:"cashier_id"`
	CustomerID string `form:"customer_id"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
}

func (r ReportRequest) filterInput() report.FilterInput {
	return report.FilterInput{
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Invoice:    r.Invoice,
		CashierID:  r.CashierID,
		CustomerID: r.CustomerID,
	}
}

// FilterResponse echoes the effective filter, with defaulted dates filled in
type FilterResponse struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Invoice    string `json:"invoice"`
	CashierID  string `json:"cashier_id"`
	CustomerID string `json:"customer_id"`
}

func toFilterResponse(f report.Filter) FilterResponse {
	resp := FilterResponse{
		StartDate: f.StartDate.Format(report.DateLayout),
		EndDate:   f.EndDate.Format(report.DateLayout),
		Invoice:   f.Invoice,
	}
	if f.CashierID != nil {
		resp.CashierID = f.CashierID.String()
	}
	if f.CustomerID != nil {
		resp.CustomerID = f.CustomerID.String()
	}
	return resp
}

// PageMeta describes the page of rows returned
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func newPageMeta(total int64, page, pageSize int) PageMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PageMeta{Total: total, Page: page, PageSize: pageSize, TotalPages: totalPages}
}

// SalesReportResponse is one page of the sales report
type SalesReportResponse struct {
	Filters FilterResponse      `json:"filters"`
	Items   []report.SalesRow   `json:"items"`
	Meta    PageMeta            `json:"meta"`
	Summary report.SalesSummary `json:"summary"`
}

// CashReportResponse is one page of the cash report
type CashReportResponse struct {
	Filters FilterResponse     `json:"filters"`
	Items   []report.CashRow   `json:"items"`
	Meta    PageMeta           `json:"meta"`
	Summary report.CashSummary `json:"summary"`
}

// SoldItemsReportResponse is one page of the sold items report
type SoldItemsReportResponse struct {
	Filters FilterResponse          `json:"filters"`
	Items   []report.SoldItemRow    `json:"items"`
	Meta    PageMeta                `json:"meta"`
	Summary report.SoldItemsSummary `json:"summary"`
}

// FilterOptionsResponse lists the choices for the cashier and customer filters
type FilterOptionsResponse struct {
	Cashiers  []report.Option `json:"cashiers"`
	Customers []report.Option `json:"customers"`
}
