// Package journal records which backend notifications a session has
// already acted on.
package journal

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/util"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsTable = "checkout_sdk_schema_migrations"

type Journal struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// Open connects to the journal database
func Open(databaseURL string) (*Journal, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return New(db), nil
}

// New wraps an existing connection
func New(db *sqlx.DB) *Journal {
	return &Journal{db: db, logger: util.GetLogger()}
}

// Close closes the database connection
func (j *Journal) Close() error {
	return j.db.Close()
}

// Ping checks the database connection
func (j *Journal) Ping(ctx context.Context) error {
	return j.db.PingContext(ctx)
}

// Migrate applies the embedded schema migrations
func (j *Journal) Migrate() error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	driver, err := postgres.WithInstance(j.db.DB, &postgres.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	j.logger.Info("Journal migrations applied")
	return nil
}

// IsNotificationProcessed checks if a notification has been processed
func (j *Journal) IsNotificationProcessed(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := j.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM processed_notifications WHERE event_id = $1)", eventID)
	if err != nil {
		return false, fmt.Errorf("failed to check notification %s: %w", eventID, err)
	}
	return exists, nil
}

// MarkNotificationProcessed records a notification as processed
func (j *Journal) MarkNotificationProcessed(ctx context.Context, n models.Notification) error {
	_, err := j.db.ExecContext(ctx,
		"INSERT INTO processed_notifications (event_id, event_type, checkout_id) VALUES ($1, $2, $3) ON CONFLICT (event_id) DO NOTHING",
		n.EventID, n.EventType, n.CheckoutID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s: %w", n.EventID, err)
	}
	return nil
}

// ProcessedNotification is a row of the processed notification table
type ProcessedNotification struct {
	EventID     string    `db:"event_id" json:"event_id"`
	EventType   string    `db:"event_type" json:"event_type"`
	CheckoutID  string    `db:"checkout_id" json:"checkout_id"`
	ProcessedAt time.Time `db:"processed_at" json:"processed_at"`
}

// RecentNotifications lists the latest processed notifications of a checkout
func (j *Journal) RecentNotifications(ctx context.Context, checkoutID string, limit int) ([]ProcessedNotification, error) {
	var rows []ProcessedNotification
	err := j.db.SelectContext(ctx, &rows,
		"SELECT event_id, event_type, checkout_id, processed_at FROM processed_notifications WHERE checkout_id = $1 ORDER BY processed_at DESC LIMIT $2",
		checkoutID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return rows, nil
}
