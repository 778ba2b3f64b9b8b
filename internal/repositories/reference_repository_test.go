package repositories

import (
	"context"
	"testing"

	"bank-ledger/internal/database"
	"bank-ledger/internal/models"

	"github.com/stretchr/testify/suite"
)

type ReferenceRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ReferenceRepositoryInterface
	ctx  context.Context
}

func (s *ReferenceRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewReferenceRepository(s.db.DB)
	s.ctx = context.Background()
}

func TestReferenceRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReferenceRepositorySuite))
}

func (s *ReferenceRepositorySuite) TestStatuses() {
	statuses, err := s.repo.ListStatuses(s.ctx)
	s.Require().NoError(err)
	s.Len(statuses, len(models.DefaultStatuses))

	byName, err := s.repo.GetStatusByName(s.ctx, " Active ")
	s.Require().NoError(err)
	s.Equal(models.StatusActive, byName.Name)

	byID, err := s.repo.GetStatusByID(s.ctx, byName.ID)
	s.Require().NoError(err)
	s.Equal(byName.ID, byID.ID)

	_, err = s.repo.GetStatusByID(s.ctx, 999)
	s.ErrorIs(err, ErrStatusNotFound)

	_, err = s.repo.GetStatusByName(s.ctx, "frozen")
	s.ErrorIs(err, ErrStatusNotFound)
}

func (s *ReferenceRepositorySuite) TestGender() {
	var gender models.Gender
	s.Require().NoError(s.db.First(&gender).Error)

	found, err := s.repo.GetGenderByID(s.ctx, gender.ID)
	s.Require().NoError(err)
	s.Equal(gender.Name, found.Name)

	_, err = s.repo.GetGenderByID(s.ctx, 999)
	s.ErrorIs(err, ErrGenderNotFound)
}

func (s *ReferenceRepositorySuite) TestAddress() {
	customer := database.CreateTestCustomer(s.T(), s.db, "addr@example.com")

	address, err := s.repo.GetAddressByID(s.ctx, customer.AddressID)
	s.Require().NoError(err)
	s.Equal("Springfield", address.City)

	_, err = s.repo.GetAddressByID(s.ctx, 999)
	s.ErrorIs(err, ErrAddressNotFound)
}

func (s *ReferenceRepositorySuite) TestTransactionTypes() {
	types, err := s.repo.ListTransactionTypes(s.ctx)
	s.Require().NoError(err)
	s.Len(types, len(models.DefaultTransactionTypes))

	tt, err := s.repo.GetTransactionTypeByID(s.ctx, types[0].ID)
	s.Require().NoError(err)
	s.Equal(types[0].Name, tt.Name)

	_, err = s.repo.GetTransactionTypeByID(s.ctx, 999)
	s.ErrorIs(err, ErrTransactionTypeNotFound)
}
