package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/i18n"
	"storefront/internal/notify"
	"storefront/internal/service"
	"storefront/internal/sheets"
	"storefront/internal/storage"
	"storefront/internal/worker"
)

func main() {
	cfg := config.New()

	kv, closeStore, err := storage.Open(context.Background(), cfg.Storage, cfg.DataFile, cfg.DatabaseURI, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		slog.Error("failed to open order storage", "backend", cfg.Storage, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	if cfg.AdminPasswordHash == "" {
		slog.Warn("admin password hash not configured, admin login disabled")
	}

	// Services
	store := service.NewOrderStore(kv)
	forms := notify.NewFormSubmitter(cfg.FormActionURL, notify.DefaultFormFields)
	checkoutSvc := service.NewCheckoutService(store, forms, i18n.Default, cfg.WhatsAppPhone, cfg.PaymentLink)
	authSvc := service.NewAuthService(cfg.AdminPasswordHash)

	var feed service.SheetFeed
	if sheet := sheets.NewClient(cfg.SheetCSVURL, cfg.SheetID, cfg.SheetGID); sheet.Enabled() {
		feed = sheet
	}
	adminSvc := service.NewAdminService(store, feed)

	// Worker
	refresh := cfg.SheetRefresh
	if feed == nil {
		refresh = 0
	}
	sheetWorker := worker.NewSheetWorker(adminSvc, refresh)

	r := handler.NewRouter(handler.Services{
		Store:     store,
		Checkout:  checkoutSvc,
		Admin:     adminSvc,
		Auth:      authSvc,
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go sheetWorker.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress, "storage", cfg.Storage, "sheet", feed != nil)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop worker
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	checkoutSvc.Wait()

	slog.Info("server stopped")
}
