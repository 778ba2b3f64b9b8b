package repositories

import (
	"context"
	"testing"
	"time"

	"bank-ledger/internal/database"
	"bank-ledger/internal/models"

	"github.com/stretchr/testify/suite"
)

type CustomerRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CustomerRepositoryInterface
	ctx  context.Context
}

func (s *CustomerRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCustomerRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *CustomerRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCustomerRepositorySuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositorySuite))
}

func (s *CustomerRepositorySuite) newCustomer(email string) *models.Customer {
	var gender models.Gender
	s.Require().NoError(s.db.First(&gender).Error)

	return &models.Customer{
		FirstName: "Ana",
		LastName:  "García",
		Email:     email,
		BirthDate: time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC),
		StatusID:  database.StatusID(s.T(), s.db, models.StatusActive),
		GenderID:  gender.ID,
	}
}

func (s *CustomerRepositorySuite) newAddress() *models.Address {
	return &models.Address{Street: "742 Evergreen Terrace", City: "Springfield", Country: "US"}
}

func (s *CustomerRepositorySuite) TestCreateWithAddress() {
	customer := s.newCustomer("Ana.Garcia@Example.com")

	err := s.repo.CreateWithAddress(s.ctx, customer, s.newAddress())
	s.Require().NoError(err)
	s.NotZero(customer.ID)
	s.NotZero(customer.AddressID)
	s.Equal("ana.garcia@example.com", customer.Email)
}

func (s *CustomerRepositorySuite) TestCreate_ExistingAddress() {
	address := s.newAddress()
	s.Require().NoError(s.db.Create(address).Error)

	customer := s.newCustomer("existing@example.com")
	customer.AddressID = address.ID

	s.NoError(s.repo.Create(s.ctx, customer))
}

func (s *CustomerRepositorySuite) TestCreate_DuplicateEmailIgnoresCase() {
	s.Require().NoError(s.repo.CreateWithAddress(s.ctx, s.newCustomer("dup@example.com"), s.newAddress()))

	err := s.repo.CreateWithAddress(s.ctx, s.newCustomer("DUP@example.com"), s.newAddress())
	s.ErrorIs(err, ErrEmailAlreadyExists)

	// The address of the rejected customer is rolled back
	var addresses int64
	s.db.Model(&models.Address{}).Count(&addresses)
	s.Equal(int64(1), addresses)
}

func (s *CustomerRepositorySuite) TestCreate_UnknownStatus() {
	customer := s.newCustomer("nostatus@example.com")
	customer.StatusID = 999

	err := s.repo.CreateWithAddress(s.ctx, customer, s.newAddress())
	s.ErrorIs(err, ErrIntegrity)
}

func (s *CustomerRepositorySuite) TestGetByID() {
	created := database.CreateTestCustomer(s.T(), s.db, "find@example.com")

	customer, err := s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("find@example.com", customer.Email)

	_, err = s.repo.GetByID(s.ctx, created.ID+1)
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestGetByEmail_And_ExistsByEmail() {
	created := database.CreateTestCustomer(s.T(), s.db, "lookup@example.com")

	customer, err := s.repo.GetByEmail(s.ctx, "  LOOKUP@example.com ")
	s.Require().NoError(err)
	s.Equal(created.ID, customer.ID)

	exists, err := s.repo.ExistsByEmail(s.ctx, "Lookup@Example.com")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByEmail(s.ctx, "nobody@example.com")
	s.NoError(err)
	s.False(exists)

	_, err = s.repo.GetByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(s.ctx, nil))
	s.Error(s.repo.CreateWithAddress(s.ctx, nil, nil))
}
