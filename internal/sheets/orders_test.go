package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
)

const header = "Date,Order ID,Name,Email,Phone,Country,Plan,Price,Currency,Duration Days,Status,Note\n"

func TestParseOrders_EnglishHeaders(t *testing.T) {
	text := header + `2025-01-01,ORD-20250101-AB12,Jane Doe,jane@x.com,+33600000000,FR,12 Months,"49,99 €",EUR,365,pending,` + "\n"

	orders := ParseOrders(text)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "ORD-20250101-AB12", o.OrderID)
	assert.Equal(t, "Jane Doe", o.Name)
	assert.Equal(t, "jane@x.com", o.Email)
	assert.Equal(t, "+33600000000", o.Phone)
	assert.Equal(t, "FR", o.Country)
	assert.Equal(t, "12 Months", o.PlanTitle)
	assert.Equal(t, 49.99, o.Price)
	assert.Equal(t, "EUR", o.Currency)
	assert.Equal(t, 365, o.Duration)
	assert.Equal(t, model.StatusPending, o.Status)
	assert.Equal(t, "", o.Note)
	assert.Equal(t, "2025-01-01", o.CreatedAt)
}

func TestParseOrders_HeaderOnly(t *testing.T) {
	assert.Empty(t, ParseOrders(header))
	assert.Empty(t, ParseOrders(""))
}

func TestParseOrders_UnterminatedQuote(t *testing.T) {
	var orders []model.Order
	assert.NotPanics(t, func() {
		orders = ParseOrders(header + `2025-01-01,"ORD-1,Jane`)
	})
	assert.NotNil(t, orders)
}

func TestParseOrders_SkipsBlankRows(t *testing.T) {
	text := header +
		",,,,,,,,,,,\n" +
		"2025-01-02,,,only@email.com,,,,,,,,\n" +
		"\n"
	orders := ParseOrders(text)
	require.Len(t, orders, 1)
	assert.Equal(t, "only@email.com", orders[0].Email)
}

func TestParseOrders_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	orders := parseOrdersAt("Nom,Statut\nJean,Terminé\nMarie,completed\n", now)
	require.Len(t, orders, 2)

	assert.Equal(t, "Jean", orders[0].Name)
	assert.Equal(t, model.StatusPending, orders[0].Status)
	assert.Equal(t, "EUR", orders[0].Currency)
	assert.Equal(t, 0.0, orders[0].Price)
	assert.Equal(t, 0, orders[0].Duration)
	assert.Equal(t, "2025-03-04T05:06:07Z", orders[0].CreatedAt)

	assert.Equal(t, model.StatusCompleted, orders[1].Status)
	assert.NotEqual(t, orders[0].ID, orders[1].ID)
}

func TestParseOrders_ShortRow(t *testing.T) {
	orders := ParseOrders(header + "2025-01-01,ORD-X\n")
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-X", orders[0].OrderID)
	assert.Equal(t, "", orders[0].Email)
}

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"24,99 €":    24.99,
		"€24.99":     24.99,
		"1.234,56":   1234.56,
		"1,234.56":   1234.56,
		"1.234.567":  1234567,
		"1,234,567":  1234567,
		"1,234":      1.234,
		"CHF 9.5":    9.5,
		"-3,50":      -3.5,
		"":           0,
		"n/a":        0,
		"1-2":        0,
		"12.00 EUR":  12,
		"1 234,50 €": 1234.5,
	}
	for in, want := range cases {
		assert.InDelta(t, want, ParsePrice(in), 1e-9, in)
	}
}

func TestParseLeadingInt(t *testing.T) {
	assert.Equal(t, 365, parseLeadingInt("365 days"))
	assert.Equal(t, 30, parseLeadingInt(" 30"))
	assert.Equal(t, 0, parseLeadingInt("days"))
	assert.Equal(t, 0, parseLeadingInt(""))
	assert.Equal(t, -2, parseLeadingInt("-2"))
	assert.Equal(t, 0, parseLeadingInt("99999999999999999999999 days"))
	assert.Equal(t, 0, parseLeadingInt("-"))
}
