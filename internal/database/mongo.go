// ================== internal/database/mongo.go ==================
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config represents database configuration
type Config struct {
	URI     string
	DBName  string
	Timeout time.Duration
	MaxPool uint64
	MinPool uint64
}

// DefaultConfig returns default database configuration
func DefaultConfig() Config {
	return Config{
		URI:     "mongodb://localhost:27017",
		DBName:  "tasktracker",
		Timeout: 10 * time.Second,
		MaxPool: 100,
		MinPool: 5,
	}
}

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect dials MongoDB and pings the primary before returning, so a bad
// URI fails at startup rather than on the first request.
func Connect(cfg Config) (*MongoDB, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPool > 0 {
		clientOptions.SetMaxPoolSize(cfg.MaxPool)
	}
	clientOptions.SetMinPoolSize(cfg.MinPool)
	clientOptions.SetMaxConnIdleTime(30 * time.Second)
	clientOptions.SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.DBName),
	}, nil
}

func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the server and runs a trivial command against the database
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := m.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	if err := m.Database.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("database access failed: %w", err)
	}

	return nil
}

// WithTransaction runs fn inside a multi-document transaction. The context
// passed to fn carries the session and must be used for every operation
// that should take part in it. Requires a replica set or sharded cluster.
func (m *MongoDB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.Client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}
