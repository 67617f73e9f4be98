package printing

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"trims", "  INV-001  ", "INV-001"},
		{"collapses runs", "Kopi\t\tSusu \n Gula", "Kopi Susu Gula"},
		{"unchanged", "Rp 10.000", "Rp 10.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCell(tt.input))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii passthrough", "Laporan Penjualan", "Laporan Penjualan"},
		{"accents stripped", "Café crème brûlée", "Cafe creme brulee"},
		{"typographic quotes", "“Kopi” ‘Susu’", `"Kopi" 'Susu'`},
		{"dashes", "2024–2025 — final", "2024-2025 - final"},
		{"ellipsis", "Tunggu…", "Tunggu..."},
		{"ligature", "ﬁle", "file"},
		{"sharp s", "Straße", "Strasse"},
		{"nbsp becomes space", "Rp\u00a010.000", "Rp 10.000"},
		{"unrepresentable dropped", "Teh 茶 Hijau", "Teh  Hijau"},
		{"emoji dropped", "Promo 🎉", "Promo "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeText_OutputIsASCII(t *testing.T) {
	inputs := []string{"Ñandú", "Ærøskøbing", "Łódź", "日本語", "naïve café", "€ 5 × 3"}
	for _, in := range inputs {
		out := NormalizeText(in)
		for _, r := range out {
			assert.Less(t, r, rune(0x80), "input %q produced non-ASCII %q", in, out)
		}
	}
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, `a\(b\)`, EscapeText("a(b)"))
	assert.Equal(t, `C:\\tmp`, EscapeText(`C:\tmp`))
	assert.Equal(t, `\\\(`, EscapeText(`\(`))
	assert.Equal(t, "plain", EscapeText("plain"))
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		budget float64
		want   string
	}{
		{"fits", "Kopi", 100, "Kopi"},
		{"exact fit", "12345", 26, "12345"},
		{"truncated", "Nasi Goreng Spesial", 52, "Nasi Go..."},
		{"tiny budget clips marker", "Nasi Goreng", 11, ".."},
		{"zero budget keeps one column", "Nasi", 0, "."},
		{"wide runes count double", "日本語日本語", 40, "日本..."},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateToWidth(tt.text, tt.budget))
		})
	}
}

func TestTruncateToWidth_StaysWithinBudget(t *testing.T) {
	texts := []string{
		"Transaksi Penjualan Harian Outlet Pusat",
		strings.Repeat("W", 200),
		"Es Teh Manis, Kopi Susu Gula Aren, Roti Bakar Coklat Keju",
		"日本語のテキストを含む長い商品名",
	}
	budgets := []float64{8, 15.3, 30, 58.5, 125, 258}

	for _, text := range texts {
		for _, budget := range budgets {
			got := TruncateToWidth(text, budget)
			limit := max(int(math.Floor(budget/approxCharWidth)), 1)

			assert.LessOrEqual(t, float64(displayWidth(got))*approxCharWidth, budget+approxCharWidth,
				"text %q budget %.1f got %q", text, budget, got)
			if got != text && limit > len(truncateMarker) {
				assert.True(t, strings.HasSuffix(got, truncateMarker), "got %q", got)
			}
		}
	}
}
