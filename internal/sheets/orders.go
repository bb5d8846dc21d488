package sheets

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/currency"
	"storefront/internal/model"
)

// ParseOrders turns a spreadsheet CSV export into orders. It never fails:
// malformed input yields whatever rows could be recovered, possibly none.
func ParseOrders(text string) (orders []model.Order) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("failed to parse CSV", "panic", r)
			orders = []model.Order{}
		}
	}()

	return parseOrdersAt(text, time.Now())
}

func parseOrdersAt(text string, now time.Time) []model.Order {
	orders := []model.Order{}

	var rows [][]string
	for _, r := range Tokenize(text) {
		if len(r) > 1 {
			rows = append(rows, r)
		}
	}
	if len(rows) <= 1 {
		return orders
	}

	cols := resolveColumns(rows[0])
	fallbackCreatedAt := now.UTC().Format(time.RFC3339)

	for _, row := range rows[1:] {
		o := model.Order{
			ID: uuid.NewString(),
			OrderDraft: model.OrderDraft{
				OrderID:   cols.cell(row, fieldOrderID),
				Name:      cols.cell(row, fieldName),
				Email:     cols.cell(row, fieldEmail),
				Phone:     cols.cell(row, fieldPhone),
				Country:   cols.cell(row, fieldCountry),
				PlanTitle: cols.cell(row, fieldPlan),
				Price:     ParsePrice(cols.cell(row, fieldPrice)),
				Currency:  cols.cell(row, fieldCurrency),
				Duration:  parseLeadingInt(cols.cell(row, fieldDuration)),
				Note:      cols.cell(row, fieldNote),
				Status:    model.ParseStatus(cols.cell(row, fieldStatus)),
			},
			CreatedAt: cols.cell(row, fieldTimestamp),
		}
		if cols[fieldCurrency] == notFound {
			o.Currency = currency.Default
		}
		if o.CreatedAt == "" {
			o.CreatedAt = fallbackCreatedAt
		}

		if o.OrderID == "" && o.Email == "" && o.Name == "" {
			continue
		}
		orders = append(orders, o)
	}

	return orders
}

// ParsePrice reads amounts such as "24,99 €", "€24.99", "1.234,56" or
// "1,234.56". When both separators appear the last one is the decimal
// separator. A lone separator is decimal; a repeated one groups thousands.
// Unparsable input is 0.
func ParsePrice(raw string) float64 {
	s := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	if s == "" {
		return 0
	}

	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case dot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// parseLeadingInt reads an optional sign and the digits that follow, so
// "365 days" is 365. Anything else, including an out-of-range run, is 0.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
