package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidBirthDate = errors.New("birth date must be in the past")
)

// Customer owns zero or more accounts
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birth_date"`
	StatusID  uint      `gorm:"not null;index" json:"status_id"`
	GenderID  uint      `gorm:"not null" json:"gender_id"`
	AddressID uint      `gorm:"not null" json:"address_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Status   Status    `gorm:"foreignKey:StatusID" json:"-"`
	Gender   Gender    `gorm:"foreignKey:GenderID" json:"-"`
	Address  Address   `gorm:"foreignKey:AddressID" json:"-"`
	Accounts []Account `gorm:"foreignKey:CustomerID" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	c.Email = NormalizeEmail(c.Email)

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// Validate validates the customer fields and references
func (c *Customer) Validate() error {
	if err := c.ValidateProfile(); err != nil {
		return err
	}
	if c.StatusID == 0 || c.GenderID == 0 || c.AddressID == 0 {
		return errors.New("status, gender and address are required")
	}
	return nil
}

// ValidateProfile validates the personal fields only
func (c *Customer) ValidateProfile() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return errors.New("first name is required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return errors.New("last name is required")
	}
	if !IsValidEmail(c.Email) {
		return ErrInvalidEmail
	}
	if c.BirthDate.IsZero() || !c.BirthDate.Before(time.Now()) {
		return ErrInvalidBirthDate
	}
	return nil
}

// FullName returns "first last"
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Customer) TableName() string {
	return "customers"
}

// NormalizeEmail trims and lower-cases an address so uniqueness is case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
