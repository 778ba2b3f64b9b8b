package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bank-ledger/internal/config"
	"bank-ledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens a connection for the configured driver. TranslateError is enabled
// so unique and foreign key violations surface as gorm sentinel errors.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	db, err := gorm.Open(dialector(cfg), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// SQLite has a single writer; one connection keeps transactions serialized
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverSQLite {
		return sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path))
	}
	return postgres.Open(cfg.DSN())
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Status{},
		&models.Gender{},
		&models.Address{},
		&models.TransactionType{},
		&models.Customer{},
		&models.Account{},
		&models.Movement{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_customers_email_lower ON customers(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_customers_status_id ON customers(status_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_customer_id ON accounts(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_status_id ON accounts(status_id)",
		"CREATE INDEX IF NOT EXISTS idx_movements_account_date ON movements(account_id, transaction_date, id)",
		"CREATE INDEX IF NOT EXISTS idx_movements_transaction_type_id ON movements(transaction_type_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("Failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection, brings the
// schema up to date and loads reference data
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == config.DriverPostgres {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		// Run SQL-based migrations using golang-migrate if enabled
		if err := RunMigrationsIfEnabled(ctx, sqlDB, &cfg.Database); err != nil {
			slog.Warn("Migration runner failed, falling back to GORM AutoMigrate", "error", err)

			if err := db.AutoMigrate(); err != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
	} else if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("Failed to create some indexes", "error", err)
	}

	if err := db.SeedReferenceData(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed reference data: %w", err)
	}

	if cfg.Database.Seed {
		if err := db.SeedDemoData(ctx, defaultDemoCustomers); err != nil {
			slog.Warn("Failed to seed demo data", "error", err)
		}
	}

	slog.Info("Database initialized successfully", "driver", cfg.Database.Driver)

	return db, nil
}
