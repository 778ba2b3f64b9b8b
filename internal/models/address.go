package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Address struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Street     string    `gorm:"type:varchar(255);not null" json:"street"`
	City       string    `gorm:"type:varchar(100);not null" json:"city"`
	Country    string    `gorm:"type:varchar(100);not null" json:"country"`
	PostalCode string    `gorm:"type:varchar(20)" json:"postal_code,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return a.Validate()
}

// Validate validates the address fields
func (a *Address) Validate() error {
	if strings.TrimSpace(a.Street) == "" {
		return errors.New("street is required")
	}
	if strings.TrimSpace(a.City) == "" {
		return errors.New("city is required")
	}
	if strings.TrimSpace(a.Country) == "" {
		return errors.New("country is required")
	}
	return nil
}

func (a *Address) TableName() string {
	return "addresses"
}
