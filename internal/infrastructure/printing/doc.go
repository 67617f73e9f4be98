// Package printing produces tabular report PDFs without any PDF library.
//
// A document passes through three stages:
//   - normalization: whitespace collapsing, transliteration to printable ASCII
//     and escaping of PDF string delimiters
//   - layout: column widths, vertical cursor, page breaks and the drawing
//     operators for one content stream per page
//   - serialization: font, page, pages tree and catalog objects followed by
//     the cross-reference table and trailer
//
// Example usage:
//
//	data := printing.BuildTablePDF(printing.TableDocument{
//	    Title:   "Laporan Penjualan",
//	    Period:  "2024-01-01 to 2024-01-31",
//	    Headers: []string{"No", "Invoice", "Total"},
//	    Rows:    [][]any{{1, "INV-001", "Rp 10.000"}},
//	})
//
// The package also holds the PDFRenderer facade used by the export services
// and a file system archive for generated exports.
package printing
