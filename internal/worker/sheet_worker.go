package worker

import (
	"context"
	"log/slog"
	"time"
)

// Refresher is satisfied by service.AdminService.
type Refresher interface {
	Refresh(ctx context.Context) int
}

// SheetWorker keeps the admin's copy of the orders sheet warm so listings do
// not wait on the spreadsheet export.
type SheetWorker struct {
	admin    Refresher
	interval time.Duration
}

func NewSheetWorker(admin Refresher, interval time.Duration) *SheetWorker {
	return &SheetWorker{
		admin:    admin,
		interval: interval,
	}
}

func (w *SheetWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		slog.Info("sheet worker disabled")
		return
	}

	slog.Info("starting sheet worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("sheet worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *SheetWorker) refresh(ctx context.Context) {
	n := w.admin.Refresh(ctx)
	slog.Debug("sheet refreshed", "orders", n)
}
