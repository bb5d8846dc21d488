package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/config"
	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/storage"
)

func fileConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{Storage: "file", DataFile: filepath.Join(t.TempDir(), "orders.json")}
}

func seed(t *testing.T, cfg *config.Config, drafts ...model.OrderDraft) {
	t.Helper()
	kv, err := storage.NewFile(cfg.DataFile)
	require.NoError(t, err)
	store := service.NewOrderStore(kv)
	for _, d := range drafts {
		store.Save(context.Background(), d)
	}
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run(context.Background(), fileConfig(t), nil, &out), errUsage)
	assert.ErrorIs(t, run(context.Background(), fileConfig(t), []string{"nope"}, &out), errUsage)
	assert.ErrorIs(t, run(context.Background(), fileConfig(t), []string{"set-status", "ORD-1"}, &out), errUsage)
}

func TestRun_ListAndSetStatus(t *testing.T) {
	ctx := context.Background()
	cfg := fileConfig(t)
	seed(t, cfg,
		model.OrderDraft{OrderID: "ORD-20240101-AAAA", Name: "Alice", Email: "alice@x.com", PlanTitle: "1 Month", Price: 9.99, Currency: "EUR"},
		model.OrderDraft{OrderID: "ORD-20240102-BBBB", Name: "Bob", Email: "bob@x.com", PlanTitle: "3 Months", Price: 24.99, Currency: "EUR"},
	)

	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, []string{"set-status", "ORD-20240101-AAAA", "Completed"}, &out))
	assert.Equal(t, "ORD-20240101-AAAA -> completed\n", out.String())

	out.Reset()
	require.NoError(t, run(ctx, cfg, []string{"list", "-status", "completed"}, &out))
	assert.Contains(t, out.String(), "ORD-20240101-AAAA")
	assert.NotContains(t, out.String(), "ORD-20240102-BBBB")
	assert.Contains(t, out.String(), "source=local total=2")

	assert.ErrorContains(t, run(ctx, cfg, []string{"set-status", "ORD-1", "shipped"}, &out), `invalid status "shipped"`)
}

func TestRun_ExportToFile(t *testing.T) {
	cfg := fileConfig(t)
	seed(t, cfg, model.OrderDraft{OrderID: "ORD-20240101-AAAA", Name: "Alice", Email: "alice@x.com", Currency: "EUR"})

	target := filepath.Join(t.TempDir(), "export.csv")
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, []string{"export", "-lang", "de", "-o", target}, &out))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"alice@x.com"`)
}

func TestRun_HashPassword(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), fileConfig(t), []string{"hash-password", "open sesame"}, &out))

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("open sesame")))
	assert.NoError(t, service.NewAuthService(hash).Authenticate("open sesame"))
}

func TestRun_CopyPaymentLinkNotConfigured(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorContains(t, run(context.Background(), fileConfig(t), []string{"copy-payment-link"}, &out), "payment link not configured")
}
