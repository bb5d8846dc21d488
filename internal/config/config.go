package config

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress        string
	Storage           string // memory, file, postgres, redis
	DataFile          string
	DatabaseURI       string
	RedisAddr         string
	RedisDB           int
	WhatsAppPhone     string
	PaymentLink       string
	AdminPasswordHash string
	JWTSecret         string
	FormActionURL     string
	SheetCSVURL       string
	SheetID           string
	SheetGID          string
	SheetRefresh      time.Duration
}

// New reads flags, then lets environment variables (optionally from a .env
// file) override them.
func New() *Config {
	return Load(flag.CommandLine, os.Args[1:])
}

func Load(fs *flag.FlagSet, args []string) *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg := &Config{}

	fs.StringVar(&cfg.RunAddress, "a", "localhost:8080", "server address and port")
	fs.StringVar(&cfg.Storage, "storage", "file", "order storage backend: memory, file, postgres, redis")
	fs.StringVar(&cfg.DataFile, "data", "data/orders.json", "order store file for the file backend")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI for the postgres backend")
	fs.StringVar(&cfg.RedisAddr, "redis", "localhost:6379", "redis address for the redis backend")
	fs.IntVar(&cfg.RedisDB, "redis-db", 0, "redis database index")
	fs.StringVar(&cfg.WhatsAppPhone, "whatsapp", "", "sales WhatsApp phone number")
	fs.StringVar(&cfg.PaymentLink, "payment-link", "", "payment link shown after checkout")
	fs.StringVar(&cfg.AdminPasswordHash, "admin-hash", "", "bcrypt or hex SHA-256 hash of the admin passphrase")
	fs.StringVar(&cfg.JWTSecret, "s", "super-secret-jwt-key", "jwt signing key")
	fs.StringVar(&cfg.FormActionURL, "form-url", "", "remote form action URL for order mirroring")
	fs.StringVar(&cfg.SheetCSVURL, "sheet-url", "", "published CSV URL of the orders sheet")
	fs.StringVar(&cfg.SheetID, "sheet-id", "", "spreadsheet id, used when no published URL is set")
	fs.StringVar(&cfg.SheetGID, "sheet-gid", "0", "spreadsheet tab id")
	fs.DurationVar(&cfg.SheetRefresh, "sheet-refresh", time.Minute, "sheet polling interval, 0 disables polling")
	_ = fs.Parse(args)

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.Storage = getEnv("STORAGE", cfg.Storage)
	cfg.DataFile = getEnv("DATA_FILE", cfg.DataFile)
	cfg.DatabaseURI = getEnv("DATABASE_URI", cfg.DatabaseURI)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.WhatsAppPhone = getEnv("WHATSAPP_PHONE", cfg.WhatsAppPhone)
	cfg.PaymentLink = getEnv("PAYMENT_LINK", cfg.PaymentLink)
	cfg.AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", cfg.AdminPasswordHash)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.FormActionURL = getEnv("FORM_ACTION_URL", cfg.FormActionURL)
	cfg.SheetCSVURL = getEnv("SHEET_CSV_URL", cfg.SheetCSVURL)
	cfg.SheetID = getEnv("SHEET_ID", cfg.SheetID)
	cfg.SheetGID = getEnv("SHEET_GID", cfg.SheetGID)
	cfg.SheetRefresh = getEnvDuration("SHEET_REFRESH", cfg.SheetRefresh)

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("ignoring invalid integer env", "key", key, "value", value)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("ignoring invalid duration env", "key", key, "value", value)
		return fallback
	}
	return d
}
