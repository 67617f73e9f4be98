package printing

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const (
	// approxCharWidth is the average Helvetica glyph advance at 10pt.
	approxCharWidth = 5.1
	truncateMarker  = "..."
)

// typographic punctuation and ligatures that have no decomposition to ASCII
var punctuationReplacer = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", ",", "‛", "'",
	"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
	"‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-", "−", "-",
	"…", "...", "•", "*", "·", ".",
	"«", "<<", "»", ">>", "‹", "<", "›", ">",
	" ", " ", " ", " ", " ", " ",
	"©", "(C)", "®", "(R)", "™", "TM",
	"€", "EUR", "£", "GBP", "¥", "JPY",
	"ß", "ss", "Æ", "AE", "æ", "ae", "Œ", "OE", "œ", "oe",
	"Ø", "O", "ø", "o", "Ł", "L", "ł", "l", "Đ", "D", "đ", "d",
	"×", "x", "÷", "/",
)

// NormalizeCell trims the value and collapses every whitespace run to a single space.
func NormalizeCell(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// NormalizeText transliterates text to the printable single-byte subset understood
// by the built-in Helvetica font. Accents are stripped, common punctuation is mapped
// and anything else outside ASCII is dropped. The original text is returned when the
// transformation fails.
func NormalizeText(text string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r >= utf8.RuneSelf })),
	)
	ascii, _, err := transform.String(t, punctuationReplacer.Replace(text))
	if err != nil {
		return text
	}
	return ascii
}

var pdfStringEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// EscapeText escapes the PDF literal string delimiters.
func EscapeText(text string) string {
	return pdfStringEscaper.Replace(text)
}

// TruncateToWidth cuts text so that it fits in budget points at 10pt, ending
// truncated values with "...". Wide East Asian runes count as two columns.
func TruncateToWidth(text string, budget float64) string {
	limit := max(int(math.Floor(budget/approxCharWidth)), 1)
	if displayWidth(text) <= limit {
		return text
	}
	if limit <= len(truncateMarker) {
		return truncateMarker[:limit]
	}

	keep := limit - len(truncateMarker)
	var b strings.Builder
	used := 0
	for _, r := range text {
		w := runeWidth(r)
		if used+w > keep {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteString(truncateMarker)
	return b.String()
}

func displayWidth(text string) int {
	n := 0
	for _, r := range text {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
