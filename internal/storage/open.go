package storage

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/database"
)

// Open builds the KV backend named by kind. The returned close func releases
// any connection the backend holds.
func Open(ctx context.Context, kind, dataFile, databaseURI, redisAddr string, redisDB int) (KV, func(), error) {
	switch kind {
	case "memory":
		return NewMemory(), func() {}, nil
	case "file", "":
		kv, err := NewFile(dataFile)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {}, nil
	case "postgres":
		db, err := database.NewDB(ctx, databaseURI)
		if err != nil {
			return nil, nil, fmt.Errorf("connect db: %w", err)
		}
		if err := database.InitSchema(ctx, db); err != nil {
			database.CloseDB(db)
			return nil, nil, fmt.Errorf("init schema: %w", err)
		}
		return NewPostgres(db), closeDB(db), nil
	case "redis":
		rdb, err := DialRedis(ctx, redisAddr, redisDB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return NewRedis(rdb), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

func closeDB(db *sql.DB) func() {
	return func() { database.CloseDB(db) }
}
