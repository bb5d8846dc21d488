package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"storefront/internal/model"
)

// Reconcile returns a copy of orders where an admin override, when present,
// replaces the stored status. The input slice is not modified.
func Reconcile(orders []model.Order, overrides model.StatusOverrides) []model.Order {
	out := make([]model.Order, len(orders))
	for i, o := range orders {
		if st, ok := overrides[o.OrderID]; ok && st != "" {
			o.Status = st
		}
		out[i] = o
	}
	return out
}

type Source string

const (
	SourceSheet Source = "sheet"
	SourceLocal Source = "local"
)

// SheetFeed is the external source of truth for admin listings.
type SheetFeed interface {
	FetchOrders(ctx context.Context) []model.Order
}

// AdminService decides where the admin listing comes from: the sheet when it
// has rows, the local store otherwise. Overrides apply to both.
type AdminService struct {
	store *OrderStore
	feed  SheetFeed

	mu       sync.RWMutex
	snapshot []model.Order
	syncedAt time.Time
}

func NewAdminService(store *OrderStore, feed SheetFeed) *AdminService {
	return &AdminService{store: store, feed: feed}
}

// Refresh pulls the sheet and caches the result for later listings.
func (s *AdminService) Refresh(ctx context.Context) int {
	if s.feed == nil {
		return 0
	}
	orders := s.feed.FetchOrders(ctx)

	s.mu.Lock()
	s.snapshot = orders
	s.syncedAt = time.Now()
	s.mu.Unlock()

	return len(orders)
}

func (s *AdminService) cached() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

// Orders lists reconciled orders. refresh forces a live fetch instead of
// using the cached sheet snapshot.
func (s *AdminService) Orders(ctx context.Context, refresh bool) ([]model.Order, Source) {
	external := s.cached()
	if refresh || len(external) == 0 {
		s.Refresh(ctx)
		external = s.cached()
	}

	overrides := s.store.StatusOverrides(ctx)
	if len(external) > 0 {
		return Reconcile(external, overrides), SourceSheet
	}
	return Reconcile(s.store.ListAll(ctx), overrides), SourceLocal
}

func (s *AdminService) SetStatus(ctx context.Context, orderID string, status model.Status) bool {
	return s.store.SetStatusOverride(ctx, orderID, status)
}

// Filter keeps orders whose name, email or order id contains query
// (case-insensitive) and whose status matches. An empty or "all" status
// matches everything.
func Filter(orders []model.Order, query, status string) []model.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	status = strings.ToLower(strings.TrimSpace(status))

	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if q != "" &&
			!strings.Contains(strings.ToLower(o.Name), q) &&
			!strings.Contains(strings.ToLower(o.Email), q) &&
			!strings.Contains(strings.ToLower(o.OrderID), q) {
			continue
		}
		if status != "" && status != "all" && string(o.Status) != status {
			continue
		}
		out = append(out, o)
	}
	return out
}

type Stats struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	WeeklyOrders  int     `json:"weeklyOrders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// ComputeStats sums prices as stored, regardless of currency.
func ComputeStats(orders []model.Order, now time.Time) Stats {
	st := Stats{TotalOrders: len(orders)}
	weekAgo := now.AddDate(0, 0, -7)

	for _, o := range orders {
		st.TotalRevenue += o.Price
		if t, ok := parseCreatedAt(o.CreatedAt); ok && t.After(weekAgo) {
			st.WeeklyOrders++
		}
	}
	if st.TotalOrders > 0 {
		st.AvgOrderValue = st.TotalRevenue / float64(st.TotalOrders)
	}
	return st
}

// createdAtLayouts covers local saves and the shapes spreadsheet exports
// produce. Month-first is tried before day-first.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"2/1/2006 15:04:05",
	"1/2/2006",
	"2/1/2006",
}

func parseCreatedAt(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range createdAtLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SyncedAt reports when the sheet was last fetched; zero if never.
func (s *AdminService) SyncedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.syncedAt
}
