package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bank-ledger/internal/config"
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory SQLite database with reference data
// loaded. The pool is pinned to a single connection so every query sees the
// same in-memory database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := testDB.SeedReferenceData(context.Background()); err != nil {
		t.Fatalf("failed to seed reference data: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// StatusID returns the id of a seeded status
func StatusID(t *testing.T, db *DB, name string) uint {
	t.Helper()

	var status models.Status
	if err := db.Where("name = ?", name).First(&status).Error; err != nil {
		t.Fatalf("status %s not seeded: %v", name, err)
	}
	return status.ID
}

// TransactionTypeID returns the id of a seeded transaction type
func TransactionTypeID(t *testing.T, db *DB, name string) uint {
	t.Helper()

	var tt models.TransactionType
	if err := db.Where("name = ?", name).First(&tt).Error; err != nil {
		t.Fatalf("transaction type %s not seeded: %v", name, err)
	}
	return tt.ID
}

func CreateTestCustomer(t *testing.T, db *DB, email string) *models.Customer {
	t.Helper()

	var gender models.Gender
	if err := db.First(&gender).Error; err != nil {
		t.Fatalf("no gender seeded: %v", err)
	}

	address := &models.Address{Street: "1 Main St", City: "Springfield", Country: "US"}
	if err := db.Create(address).Error; err != nil {
		t.Fatalf("failed to create test address: %v", err)
	}

	customer := &models.Customer{
		FirstName: "Test",
		LastName:  "Customer",
		Email:     email,
		BirthDate: time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
		StatusID:  StatusID(t, db, models.StatusActive),
		GenderID:  gender.ID,
		AddressID: address.ID,
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CreateTestAccount(t *testing.T, db *DB, customerID uint, balance string) *models.Account {
	t.Helper()

	opening := decimal.RequireFromString(balance)
	account := &models.Account{
		CustomerID:     customerID,
		StatusID:       StatusID(t, db, models.StatusActive),
		InitialBalance: opening,
		Balance:        opening,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

// CreateTestTransactionType inserts a transaction type with an arbitrary,
// possibly unsupported, operation
func CreateTestTransactionType(t *testing.T, db *DB, name, operation string) *models.TransactionType {
	t.Helper()

	tt := &models.TransactionType{Name: name, Operation: operation}
	if err := db.Create(tt).Error; err != nil {
		t.Fatalf("failed to create transaction type: %v", err)
	}

	return tt
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"movements",
		"accounts",
		"customers",
		"addresses",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
