package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/model"
	"storefront/internal/storage"
)

const (
	ordersKey    = "iptv_orders"
	overridesKey = "iptv_order_status_overrides"
)

// OrderStore persists orders created at checkout and the admin's status
// overrides. Reads never fail: missing or corrupt state reads as empty.
type OrderStore struct {
	mu  sync.Mutex
	kv  storage.KV
	now func() time.Time
}

func NewOrderStore(kv storage.KV) *OrderStore {
	return &OrderStore{kv: kv, now: time.Now}
}

// Save assigns identity and creation time, then appends the order. A failed
// write is logged; the finalized order is returned either way.
func (s *OrderStore) Save(ctx context.Context, draft model.OrderDraft) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if draft.Status == "" {
		draft.Status = model.StatusPending
	}
	order := model.Order{
		ID:         uuid.NewString(),
		OrderDraft: draft,
		CreatedAt:  s.now().UTC().Format(time.RFC3339Nano),
	}

	orders := s.listAll(ctx)
	orders = append(orders, order)
	if err := s.write(ctx, ordersKey, orders); err != nil {
		slog.Error("failed to save order", "order_id", order.OrderID, "error", err)
	}

	return order
}

func (s *OrderStore) ListAll(ctx context.Context) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listAll(ctx)
}

func (s *OrderStore) listAll(ctx context.Context) []model.Order {
	orders := []model.Order{}
	if !s.read(ctx, ordersKey, &orders) || orders == nil {
		return []model.Order{}
	}
	return orders
}

// FindByOrderID returns the first order carrying the business key.
func (s *OrderStore) FindByOrderID(ctx context.Context, orderID string) (model.Order, bool) {
	for _, o := range s.ListAll(ctx) {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return model.Order{}, false
}

// SetStatusOverride records an admin edit without touching the order itself.
func (s *OrderStore) SetStatusOverride(ctx context.Context, orderID string, status model.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides := s.statusOverrides(ctx)
	overrides[orderID] = status
	if err := s.write(ctx, overridesKey, overrides); err != nil {
		slog.Error("failed to update order status", "order_id", orderID, "error", err)
		return false
	}
	return true
}

func (s *OrderStore) StatusOverrides(ctx context.Context) model.StatusOverrides {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.statusOverrides(ctx)
}

func (s *OrderStore) statusOverrides(ctx context.Context) model.StatusOverrides {
	overrides := model.StatusOverrides{}
	if !s.read(ctx, overridesKey, &overrides) || overrides == nil {
		return model.StatusOverrides{}
	}
	return overrides
}

func (s *OrderStore) read(ctx context.Context, key string, dst any) bool {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Error("failed to load stored state", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.Error("failed to decode stored state", "key", key, "error", err)
		return false
	}
	return true
}

func (s *OrderStore) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, string(raw))
}
