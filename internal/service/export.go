package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/model"
)

var exportHeader = []string{
	"Date", "Order ID", "Name", "Email", "Phone", "Country",
	"Plan", "Price", "Currency", "Duration", "Status", "Note",
}

var shortDateLayouts = map[string]string{
	"en": "1/2/2006",
	"fr": "02/01/2006",
	"es": "2/1/2006",
	"it": "2/1/2006",
	"pt": "02/01/2006",
	"de": "2.1.2006",
	"nl": "2-1-2006",
}

// ExportCSV renders orders for download. Every cell is quoted so the file
// opens the same way in every spreadsheet application.
func ExportCSV(orders []model.Order, locale string) string {
	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, joinQuoted(exportHeader))

	for _, o := range orders {
		lines = append(lines, joinQuoted([]string{
			formatDate(o.CreatedAt, locale),
			o.OrderID,
			o.Name,
			o.Email,
			o.Phone,
			o.Country,
			o.PlanTitle,
			decimal.NewFromFloat(o.Price).StringFixed(2),
			o.Currency,
			strconv.Itoa(o.Duration) + " days",
			string(o.Status),
			o.Note,
		}))
	}

	return strings.Join(lines, "\n")
}

func joinQuoted(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func formatDate(createdAt, locale string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	layout, ok := shortDateLayouts[baseLanguage(locale)]
	if !ok {
		layout = shortDateLayouts["en"]
	}
	return t.Local().Format(layout)
}

func baseLanguage(locale string) string {
	locale = strings.ToLower(locale)
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}
