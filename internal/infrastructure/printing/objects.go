package printing

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	pdfHeader  = "%PDF-1.4\n"
	fontObject = "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"
)

// objectTable hands out object numbers in reservation order. Bodies may be
// filled in later, which lets the pages tree take number 2 before its kids exist.
type objectTable struct {
	bodies []string
}

func (t *objectTable) reserve() int {
	t.bodies = append(t.bodies, "")
	return len(t.bodies)
}

func (t *objectTable) set(id int, body string) {
	t.bodies[id-1] = body
}

// serialize writes header, objects, xref table and trailer in one pass. Offsets
// come from the bytes already written, so the xref always matches the output.
func (t *objectTable) serialize(root int) []byte {
	var buf bytes.Buffer
	buf.WriteString(pdfHeader)

	offsets := make([]int, len(t.bodies))
	for i, body := range t.bodies {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefOffset := buf.Len()
	size := len(t.bodies) + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\n", size, root)
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF", xrefOffset)

	return buf.Bytes()
}

// SerializePages wraps page content streams into a PDF document.
// Object numbers: font 1, pages tree 2, content/page pairs from 3, catalog last.
func SerializePages(contents []string) []byte {
	table := &objectTable{}
	font := table.reserve()
	pagesTree := table.reserve()
	table.set(font, fontObject)

	kids := make([]string, 0, len(contents))
	for _, content := range contents {
		contentID := table.reserve()
		table.set(contentID, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))

		pageID := table.reserve()
		table.set(pageID, fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			pagesTree, int(PageWidth), int(PageHeight), font, contentID))
		kids = append(kids, fmt.Sprintf("%d 0 R", pageID))
	}
	table.set(pagesTree, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(kids)))

	catalog := table.reserve()
	table.set(catalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesTree))

	return table.serialize(catalog)
}
