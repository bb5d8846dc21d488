package sheets

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenize splits CSV text into rows of cells. A double quote toggles quoted
// mode and "" inside quotes is a literal quote. Unquoted CR, LF or CRLF ends
// a row. An unterminated quote swallows the rest of the input into one cell.
func Tokenize(text string) [][]string {
	var (
		rows   [][]string
		row    []string
		cell   strings.Builder
		quoted bool
	)

	// Delimiters are ASCII, so walking bytes keeps any other input intact.
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if quoted && i+1 < len(text) && text[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				quoted = !quoted
			}
		case ch == ',' && !quoted:
			row = append(row, cell.String())
			cell.Reset()
		case (ch == '\n' || ch == '\r') && !quoted:
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			row = append(row, cell.String())
			rows = append(rows, row)
			row = nil
			cell.Reset()
		default:
			cell.WriteByte(ch)
		}
	}
	row = append(row, cell.String())
	rows = append(rows, row)
	return rows
}

// NormalizeHeader decomposes s, drops diacritics, lower-cases it and
// collapses runs of whitespace.
func NormalizeHeader(s string) string {
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

type field int

const (
	fieldTimestamp field = iota
	fieldOrderID
	fieldName
	fieldEmail
	fieldPhone
	fieldCountry
	fieldPlan
	fieldCurrency
	fieldPrice
	fieldDuration
	fieldNote
	fieldStatus
	fieldCount
)

// synonyms lists the accepted header spellings per field, English and French.
var synonyms = [fieldCount][]string{
	fieldTimestamp: {"timestamp", "date", "created at", "createdat", "horodateur"},
	fieldOrderID:   {"order id", "id commande", "orderid"},
	fieldName:      {"name", "nom"},
	fieldEmail:     {"email", "e-mail"},
	fieldPhone:     {"phone", "téléphone", "tel"},
	fieldCountry:   {"country", "pays"},
	fieldPlan:      {"plan", "forfait", "plantitle"},
	fieldCurrency:  {"currency", "devise"},
	fieldPrice:     {"price", "prix", "montant", "amount", "total", "price eur", "prix eur"},
	fieldDuration:  {"duration days", "duration", "jours", "duree", "durée"},
	fieldNote:      {"note", "remark", "remarque"},
	fieldStatus:    {"status", "statut"},
}

const notFound = -1

type columns [fieldCount]int

func (c columns) cell(row []string, f field) string {
	i := c[f]
	if i == notFound || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func resolveColumns(headers []string) columns {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	var cols columns
	for f := field(0); f < fieldCount; f++ {
		cols[f] = findColumn(normalized, synonyms[f])
	}
	return cols
}

func findColumn(headers []string, names []string) int {
	needles := make([]string, len(names))
	for i, n := range names {
		needles[i] = NormalizeHeader(n)
	}
	for i, h := range headers {
		for _, n := range needles {
			if h == n || strings.Contains(h, n) {
				return i
			}
		}
	}
	return notFound
}
