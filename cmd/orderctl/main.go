// Command orderctl is the operator console for captured orders.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"storefront/internal/config"
	"storefront/internal/i18n"
	"storefront/internal/model"
	"storefront/internal/notify"
	"storefront/internal/service"
	"storefront/internal/sheets"
	"storefront/internal/storage"
)

const usage = `usage: orderctl <command> [flags]

commands:
  list               list reconciled orders
  export             write orders as CSV
  set-status ID S    override the status of an order
  copy-payment-link  copy the payment link to the clipboard
  hash-password PW   print a bcrypt hash for ADMIN_PASSWORD_HASH
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load(flag.NewFlagSet("orderctl", flag.ContinueOnError), nil)
	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		slog.Error("orderctl failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "hash-password":
		if len(args) != 1 {
			return errUsage
		}
		hash, err := service.HashPassword(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, hash)
		return err
	case "copy-payment-link":
		if cfg.PaymentLink == "" {
			return errors.New("payment link not configured")
		}
		if !notify.CopyText(cfg.PaymentLink, notify.SystemClipboard{}, notify.OSC52Clipboard{W: out}) {
			return errors.New("no clipboard available")
		}
		return nil
	}

	kv, closeStore, err := storage.Open(ctx, cfg.Storage, cfg.DataFile, cfg.DatabaseURI, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeStore()

	store := service.NewOrderStore(kv)
	var feed service.SheetFeed
	if sheet := sheets.NewClient(cfg.SheetCSVURL, cfg.SheetID, cfg.SheetGID); sheet.Enabled() {
		feed = sheet
	}
	admin := service.NewAdminService(store, feed)

	switch cmd {
	case "list":
		return listOrders(ctx, admin, args, out)
	case "export":
		return exportOrders(ctx, admin, args, out)
	case "set-status":
		if len(args) != 2 {
			return errUsage
		}
		status, ok := model.LookupStatus(args[1])
		if !ok {
			return fmt.Errorf("invalid status %q", args[1])
		}
		if !admin.SetStatus(ctx, args[0], status) {
			return errors.New("status override not saved")
		}
		_, err := fmt.Fprintf(out, "%s -> %s\n", args[0], status)
		return err
	default:
		return errUsage
	}
}

func listOrders(ctx context.Context, admin *service.AdminService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	query := fs.String("q", "", "search name, email or order id")
	status := fs.String("status", "all", "pending, completed, cancelled or all")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	orders, src := admin.Orders(ctx, true)
	stats := service.ComputeStats(orders, time.Now())
	orders = service.Filter(orders, *query, *status)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER ID\tNAME\tEMAIL\tPLAN\tPRICE\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s %s\t%s\n",
			o.OrderID, o.Name, o.Email, o.PlanTitle,
			strconv.FormatFloat(o.Price, 'f', 2, 64), o.Currency, o.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\nsource=%s total=%d week=%d revenue=%.2f avg=%.2f\n",
		src, stats.TotalOrders, stats.WeeklyOrders, stats.TotalRevenue, stats.AvgOrderValue)
	return err
}

func exportOrders(ctx context.Context, admin *service.AdminService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	query := fs.String("q", "", "search name, email or order id")
	status := fs.String("status", "all", "pending, completed, cancelled or all")
	lang := fs.String("lang", i18n.DefaultLocale, "locale for dates")
	file := fs.String("o", "", "output file, stdout when empty")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	orders, _ := admin.Orders(ctx, true)
	csv := service.ExportCSV(service.Filter(orders, *query, *status), i18n.ResolveLocale(*lang))

	if *file == "" {
		_, err := io.WriteString(out, csv+"\n")
		return err
	}
	if err := os.WriteFile(*file, []byte(csv), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	slog.Info("orders exported", "file", *file, "orders", len(orders))
	return nil
}
