package printing

import (
	"fmt"
	"strconv"
	"strings"
)

// Page geometry in PDF points (A4 width rounded to US letter, A4 height).
const (
	PageWidth  = 612.0
	PageHeight = 842.0
	PageMargin = 40.0
	TableWidth = PageWidth - 2*PageMargin
)

const (
	rowHeight          = 22.0
	titleGap           = 22.0
	periodGap          = 18.0
	sectionGap         = 18.0
	sectionTitleGap    = 16.0
	footerGap          = 14.0
	placeholderHeight  = 16.0
	placeholderAdvance = 20.0

	cellPaddingX     = 4.0
	cellBaselineDrop = 15.0
	lineBaselineDrop = 12.0
)

const (
	titleFontSize     = 14
	periodFontSize    = 11
	sectionFontSize   = 11
	tableFontSize     = 10
	emphasisFontSize  = 10
	secondaryFontSize = 9
)

// EmptySectionText is drawn under the header row of a section without rows.
const EmptySectionText = "Tidak ada data."

// layoutState owns the cursor and page buffers for a single document.
type layoutState struct {
	title    string
	period   string
	headers  []string
	colCount int
	colWidth float64

	cursor  float64
	current strings.Builder
	pages   []string
}

func newLayoutState(title, period string, headers []string) *layoutState {
	colCount := max(len(headers), 1)
	return &layoutState{
		title:    title,
		period:   period,
		headers:  headers,
		colCount: colCount,
		colWidth: TableWidth / float64(colCount),
	}
}

// LayoutPages lays the document out and returns one content stream per page.
func LayoutPages(doc TableDocument) []string {
	norm := doc.normalized()
	st := newLayoutState(norm.Title, norm.Period, norm.Headers)

	st.newPage()
	for i, section := range norm.Sections {
		st.section(i, section)
	}
	for _, line := range norm.TailLines {
		st.ensureSpace(footerGap)
		st.drawText(PageMargin, st.cursor-lineBaselineDrop, emphasisFontSize, line)
		st.cursor -= footerGap
	}
	return st.finish()
}

func (st *layoutState) section(index int, section normalizedSection) {
	if index > 0 {
		st.ensureSpace(sectionGap)
		st.cursor -= sectionGap
	}

	if section.Title != "" {
		st.ensureSpace(sectionTitleGap)
		st.drawText(PageMargin, st.cursor, sectionFontSize, section.Title)
		st.cursor -= sectionTitleGap
	}

	st.ensureSpace(rowHeight)
	st.drawRow(st.headers, len(st.headers))

	if len(section.Rows) == 0 {
		st.ensureSpace(placeholderHeight)
		st.drawText(PageMargin, st.cursor-placeholderHeight, tableFontSize, EmptySectionText)
		st.cursor -= placeholderAdvance
	}

	for _, row := range section.Rows {
		st.ensureSpace(rowHeight)
		st.drawRow(row, st.colCount)
	}

	for i, line := range section.FooterLines {
		st.ensureSpace(footerGap)
		size := secondaryFontSize
		if i == 0 {
			size = emphasisFontSize
		}
		st.drawText(PageMargin, st.cursor-lineBaselineDrop, size, line)
		st.cursor -= footerGap
	}
}

// drawRow strokes cols cells on the current line; missing cells render empty.
func (st *layoutState) drawRow(cells []string, cols int) {
	x := PageMargin
	for i := 0; i < cols; i++ {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		st.drawRect(x, st.cursor-rowHeight, st.colWidth, rowHeight)
		st.drawText(x+cellPaddingX, st.cursor-cellBaselineDrop, tableFontSize,
			TruncateToWidth(cell, st.colWidth-2*cellPaddingX))
		x += st.colWidth
	}
	st.cursor -= rowHeight
}

func (st *layoutState) ensureSpace(height float64) {
	if st.cursor-height < PageMargin {
		st.newPage()
	}
}

// newPage seals the current page and starts the next one with the title block.
func (st *layoutState) newPage() {
	st.seal()
	st.cursor = PageHeight - PageMargin
	st.drawText(PageMargin, st.cursor, titleFontSize, st.title)
	st.cursor -= titleGap
	st.drawText(PageMargin, st.cursor, periodFontSize, st.period)
	st.cursor -= periodGap
}

func (st *layoutState) seal() {
	if st.current.Len() == 0 {
		return
	}
	st.pages = append(st.pages, st.current.String())
	st.current.Reset()
}

func (st *layoutState) finish() []string {
	st.seal()
	return st.pages
}

func (st *layoutState) drawText(x, y float64, size int, text string) {
	fmt.Fprintf(&st.current, "BT\n/F1 %d Tf\n1 0 0 1 %.2f %.2f Tm\n(%s) Tj\nET\n",
		size, x, y, EscapeText(NormalizeText(text)))
}

func (st *layoutState) drawRect(x, y, w, h float64) {
	fmt.Fprintf(&st.current, "%.2f %.2f %.2f %.2f re S\n", x, y, w, h)
}

// cellText renders a row value the way it appears in a table cell.
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case bool:
		if t {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(t)
	}
}
