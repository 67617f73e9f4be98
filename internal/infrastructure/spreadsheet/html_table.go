// Package spreadsheet writes report tables as HTML documents that Excel opens
// directly when served with the .xls extension.
package spreadsheet

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// ContentType is the media type used when streaming the table as .xls
const ContentType = "application/vnd.ms-excel; charset=UTF-8"

// Table is a header row followed by data rows
type Table struct {
	Headers []string
	Rows    [][]any
}

var tableTemplate = template.Must(template.New("table").Funcs(template.FuncMap{
	"cell": cellString,
}).Parse(`<table border="1"><thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>` +
	`<tbody>{{range .Rows}}<tr>{{range .}}<td>{{cell .}}</td>{{end}}</tr>{{end}}</tbody></table>`))

// WriteHTMLTable streams the table to w. Cell values are HTML escaped.
func WriteHTMLTable(w io.Writer, t Table) error {
	if err := tableTemplate.Execute(w, t); err != nil {
		return fmt.Errorf("failed to write spreadsheet table: %w", err)
	}
	return nil
}

// RenderHTMLTable returns the table markup as bytes
func RenderHTMLTable(t Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHTMLTable(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
