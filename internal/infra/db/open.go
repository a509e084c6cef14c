// Package db manages the document store connection lifecycle.
// A missing or unreachable store degrades to an Unavailable handle instead
// of terminating the process; every dependent operation reports a
// well-defined "store not configured" condition.
package db

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"mystical-api/internal/repository"
	"mystical-api/pkg/config"
)

// ConnectionConfig holds connection pool configuration for the store client.
type ConnectionConfig struct {
	MaxPoolSize     uint64
	MinPoolSize     uint64
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxPoolSize:     25,               // Maximum number of pooled connections
		MinPoolSize:     2,                // Connections kept warm
		ConnMaxIdleTime: 30 * time.Minute, // Maximum idle time of a connection
		ConnectTimeout:  5 * time.Second,  // Initial connection timeout
	}
}

// Store is the process-wide document store handle. It is safe for concurrent
// use by multiple simultaneous requests. A Store with a nil database is the
// Unavailable state.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to the document store using DATABASE_URL and DATABASE_NAME.
// Absence of either setting, or a failed connection, yields an Unavailable
// Store and a logged warning. Open never terminates the process.
func Open(ctx context.Context, logger *slog.Logger) *Store {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		logger.Warn("DATABASE_URL not set, document store unavailable")
		return &Store{}
	}

	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		logger.Warn("DATABASE_NAME not set, document store unavailable")
		return &Store{}
	}

	cfg := getConnectionConfigFromEnv()
	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.ConnMaxIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		logger.Warn("document store connection failed, continuing unavailable",
			slog.Any("error", err))
		return &Store{}
	}

	// Verify connectivity up front so startup logs tell the truth, but keep
	// the handle either way; a store that comes up later starts serving
	// without a restart.
	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn("document store not reachable at startup",
			slog.Any("error", err))
	} else {
		logger.Info("document store connection established",
			slog.String("database", name),
			slog.Uint64("max_pool_size", cfg.MaxPoolSize),
			slog.Uint64("min_pool_size", cfg.MinPoolSize),
			slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))
	}

	return &Store{client: client, db: client.Database(name)}
}

// Available reports whether the store was configured and connected.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Database returns the underlying database handle, or nil when Unavailable.
func (s *Store) Database() *mongo.Database {
	if s == nil {
		return nil
	}
	return s.db
}

// Name returns the configured database name, or empty when Unavailable.
func (s *Store) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

// Ping verifies connectivity to the store.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return repository.ErrStoreUnavailable
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// CollectionNames lists up to limit collection names for diagnostics.
func (s *Store) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if !s.Available() {
		return nil, repository.ErrStoreUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Close disconnects the client. Safe to call on an Unavailable Store.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// getConnectionConfigFromEnv reads connection pool configuration from environment variables.
// Falls back to default values if not set.
func getConnectionConfigFromEnv() ConnectionConfig {
	cfg := DefaultConnectionConfig()

	if v := config.GetEnvInt("DB_MAX_POOL_SIZE", 0); v > 0 {
		cfg.MaxPoolSize = uint64(v)
	}
	if v := config.GetEnvInt("DB_MIN_POOL_SIZE", 0); v > 0 {
		cfg.MinPoolSize = uint64(v)
	}
	if v := config.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 0); v > 0 {
		cfg.ConnMaxIdleTime = v
	}
	if v := config.GetEnvDuration("DB_CONNECT_TIMEOUT", 0); v > 0 {
		cfg.ConnectTimeout = v
	}

	return cfg
}
