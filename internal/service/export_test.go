package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
	"storefront/internal/sheets"
	"storefront/internal/storage"
)

func TestExportCSV(t *testing.T) {
	created := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local).UTC().Format(time.RFC3339)
	orders := []model.Order{{
		ID: "1",
		OrderDraft: model.OrderDraft{
			OrderID:   "ORD-20250115-AB12",
			Name:      `Jane "JD" Doe`,
			Email:     "jane@x.com",
			Phone:     "+33600000000",
			Country:   "FR",
			PlanTitle: "12 Months",
			Price:     49.9,
			Currency:  "EUR",
			Duration:  365,
			Status:    model.StatusCompleted,
		},
		CreatedAt: created,
	}}

	out := ExportCSV(orders, "fr")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Date","Order ID","Name","Email","Phone","Country","Plan","Price","Currency","Duration","Status","Note"`, lines[0])
	assert.Equal(t, `"15/01/2025","ORD-20250115-AB12","Jane ""JD"" Doe","jane@x.com","+33600000000","FR","12 Months","49.90","EUR","365 days","completed",""`, lines[1])

	assert.True(t, strings.HasPrefix(ExportCSV(orders, "en-US"), `"Date"`))
	assert.Contains(t, ExportCSV(orders, "en-US"), `"1/15/2025"`)
	assert.Contains(t, ExportCSV(orders, "de"), `"15.1.2025"`)
}

func TestExportCSV_UnparsableDate(t *testing.T) {
	out := ExportCSV([]model.Order{{CreatedAt: "yesterday"}}, "en")
	assert.Contains(t, out, `"yesterday"`)
}

func TestExportCSV_Empty(t *testing.T) {
	assert.Equal(t, `"Date","Order ID","Name","Email","Phone","Country","Plan","Price","Currency","Duration","Status","Note"`, ExportCSV(nil, "en"))
}

func TestExportCSV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewOrderStore(storage.NewMemory())

	drafts := []model.OrderDraft{sampleDraft("ORD-20250101-AAAA"), sampleDraft("ORD-20250101-BBBB"), sampleDraft("ORD-20250101-CCCC")}
	drafts[1].Price = 1234.567
	drafts[1].Currency = "SEK"
	drafts[2].Note = `call after 6pm, "urgent"`
	drafts[2].Status = model.StatusCancelled
	for _, d := range drafts {
		store.Save(ctx, d)
	}
	orders := store.ListAll(ctx)

	back := sheets.ParseOrders(ExportCSV(orders, "en"))
	require.Len(t, back, len(orders))
	for i := range orders {
		assert.Equal(t, orders[i].OrderID, back[i].OrderID)
		assert.InDelta(t, orders[i].Price, back[i].Price, 0.005)
		assert.Equal(t, orders[i].Currency, back[i].Currency)
		assert.Equal(t, orders[i].Duration, back[i].Duration)
		assert.Equal(t, orders[i].Status, back[i].Status)
		assert.Equal(t, orders[i].Note, back[i].Note)
	}
}
