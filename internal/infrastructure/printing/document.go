package printing

// TableDocument describes a tabular report. When Sections is empty, Rows form a
// single untitled section.
type TableDocument struct {
	Title     string
	Period    string
	Headers   []string
	Rows      [][]any
	Sections  []Section
	TailLines []string
}

// Section is a titled block of rows sharing the document headers.
// The first footer line is emphasized, the rest are printed smaller.
type Section struct {
	Title       string
	Rows        [][]any
	FooterLines []string
}

// RowCount returns the number of data rows, summed over sections when present
func (d TableDocument) RowCount() int {
	if len(d.Sections) == 0 {
		return len(d.Rows)
	}
	n := 0
	for _, s := range d.Sections {
		n += len(s.Rows)
	}
	return n
}

type normalizedDocument struct {
	Title     string
	Period    string
	Headers   []string
	Sections  []normalizedSection
	TailLines []string
}

type normalizedSection struct {
	Title       string
	Rows        [][]string
	FooterLines []string
}

// normalized converts cells to text and collapses whitespace. Title and period are
// kept verbatim.
func (d TableDocument) normalized() normalizedDocument {
	out := normalizedDocument{
		Title:     d.Title,
		Period:    d.Period,
		Headers:   normalizeLines(d.Headers),
		TailLines: normalizeLines(d.TailLines),
	}

	if len(d.Sections) == 0 {
		out.Sections = []normalizedSection{{Rows: normalizeRows(d.Rows)}}
		return out
	}

	out.Sections = make([]normalizedSection, 0, len(d.Sections))
	for _, s := range d.Sections {
		out.Sections = append(out.Sections, normalizedSection{
			Title:       NormalizeCell(s.Title),
			Rows:        normalizeRows(s.Rows),
			FooterLines: normalizeLines(s.FooterLines),
		})
	}
	return out
}

func normalizeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = NormalizeCell(l)
	}
	return out
}

func normalizeRows(rows [][]any) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = NormalizeCell(cellText(v))
		}
		out[i] = cells
	}
	return out
}

// BuildTablePDF lays out the document and returns the complete PDF file.
func BuildTablePDF(doc TableDocument) []byte {
	return SerializePages(LayoutPages(doc))
}
