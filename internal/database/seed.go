package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bank-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultDemoCustomers = 10

// SeedReferenceData inserts the default statuses, genders and transaction
// types. Existing rows are matched by name and left untouched.
func (db *DB) SeedReferenceData(ctx context.Context) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range models.DefaultStatuses {
			status := models.Status{Name: name}
			if err := tx.Where(models.Status{Name: name}).FirstOrCreate(&status).Error; err != nil {
				return fmt.Errorf("failed to seed status %s: %w", name, err)
			}
		}

		for _, name := range models.DefaultGenders {
			gender := models.Gender{Name: name}
			if err := tx.Where(models.Gender{Name: name}).FirstOrCreate(&gender).Error; err != nil {
				return fmt.Errorf("failed to seed gender %s: %w", name, err)
			}
		}

		for _, tt := range models.DefaultTransactionTypes {
			transactionType := tt
			if err := tx.Where(models.TransactionType{Name: tt.Name}).FirstOrCreate(&transactionType).Error; err != nil {
				return fmt.Errorf("failed to seed transaction type %s: %w", tt.Name, err)
			}
		}

		return nil
	})
}

// SeedDemoData creates fake customers with one or two accounts each. It does
// nothing when customers already exist.
func (db *DB) SeedDemoData(ctx context.Context, customers int) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count customers: %w", err)
	}
	if count > 0 {
		slog.Info("Demo data already present, skipping", "customers", count)
		return nil
	}

	var active models.Status
	if err := db.WithContext(ctx).Where("name = ?", models.StatusActive).First(&active).Error; err != nil {
		return fmt.Errorf("failed to load active status: %w", err)
	}

	var genders []models.Gender
	if err := db.WithContext(ctx).Find(&genders).Error; err != nil {
		return fmt.Errorf("failed to load genders: %w", err)
	}
	if len(genders) == 0 {
		return fmt.Errorf("no genders seeded")
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := 0; i < customers; i++ {
			address := &models.Address{
				Street:     gofakeit.Street(),
				City:       gofakeit.City(),
				Country:    gofakeit.Country(),
				PostalCode: gofakeit.Zip(),
			}
			if err := tx.Create(address).Error; err != nil {
				return fmt.Errorf("failed to create demo address: %w", err)
			}

			customer := &models.Customer{
				FirstName: gofakeit.FirstName(),
				LastName:  gofakeit.LastName(),
				Email:     fmt.Sprintf("%d.%s", i, gofakeit.Email()),
				BirthDate: gofakeit.DateRange(time.Now().AddDate(-80, 0, 0), time.Now().AddDate(-18, 0, 0)),
				StatusID:  active.ID,
				GenderID:  genders[gofakeit.IntN(len(genders))].ID,
				AddressID: address.ID,
			}
			if err := tx.Create(customer).Error; err != nil {
				return fmt.Errorf("failed to create demo customer: %w", err)
			}

			accounts := gofakeit.IntRange(1, 2)
			for j := 0; j < accounts; j++ {
				opening := decimal.NewFromFloat(gofakeit.Price(0, 5000)).Round(2)
				account := &models.Account{
					CustomerID:     customer.ID,
					StatusID:       active.ID,
					InitialBalance: opening,
					Balance:        opening,
				}
				if err := tx.Create(account).Error; err != nil {
					return fmt.Errorf("failed to create demo account: %w", err)
				}
			}
		}

		slog.Info("Demo data seeded", "customers", customers)
		return nil
	})
}
