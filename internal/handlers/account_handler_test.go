package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"bank-ledger/internal/dto"
	"bank-ledger/internal/errors"
	"bank-ledger/internal/models"
	"bank-ledger/internal/services"
	"bank-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	customers *service_mocks.MockCustomerServiceInterface
	query     *service_mocks.MockQueryServiceInterface
	handler   *AccountHandler
	echo      *echo.Echo
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customers = service_mocks.NewMockCustomerServiceInterface(s.ctrl)
	s.query = service_mocks.NewMockQueryServiceInterface(s.ctrl)
	s.handler = NewAccountHandler(s.customers, s.query)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccountHandlerSuite) TestCreateAccount() {
	s.customers.EXPECT().
		OpenAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in services.OpenAccountInput) (*models.Account, error) {
			s.Equal(uint(3), in.CustomerID)
			s.Zero(in.StatusID)
			s.Equal("100.5", in.InitialBalance.String())
			return &models.Account{ID: 9, CustomerID: 3, StatusID: 1, InitialBalance: in.InitialBalance, Balance: in.InitialBalance}, nil
		})

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/accounts", `{"customer_id":3,"initial_balance":"100.50"}`)
	s.Require().NoError(s.handler.CreateAccount(c))

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.AccountResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(uint(9), resp.ID)
	s.Equal("100.50", resp.Balance)
}

func (s *AccountHandlerSuite) TestCreateAccount_NegativeBalanceRejected() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/accounts", `{"customer_id":3,"initial_balance":"-1"}`)

	s.Require().NoError(s.handler.CreateAccount(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AccountHandlerSuite) TestCreateAccount_UnknownCustomer() {
	s.customers.EXPECT().OpenAccount(gomock.Any(), gomock.Any()).Return(nil, services.ErrCustomerNotFound)
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/accounts", `{"customer_id":3,"initial_balance":"0"}`)

	s.Require().NoError(s.handler.CreateAccount(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.CustomerNotFound), decodeError(rec).Error.Code)
}

func (s *AccountHandlerSuite) TestGetBalance() {
	s.query.EXPECT().GetAccountBalance(gomock.Any(), uint(4)).Return(decimal.RequireFromString("350.5"), nil)
	c, rec := newTestContext(s.echo, http.MethodGet, "/", nil, "accountId", "4")

	s.Require().NoError(s.handler.GetBalance(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.BalanceResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("350.50", resp.Balance)
	s.Equal(uint(4), resp.AccountID)
}

func (s *AccountHandlerSuite) TestGetBalance_InvalidID() {
	for _, id := range []string{"abc", "0", "-2"} {
		c, rec := newTestContext(s.echo, http.MethodGet, "/", nil, "accountId", id)

		s.Require().NoError(s.handler.GetBalance(c))

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal(string(errors.AccountInvalidID), decodeError(rec).Error.Code)
	}
}

func (s *AccountHandlerSuite) TestGetAccount_NotFound() {
	s.query.EXPECT().GetAccount(gomock.Any(), uint(4)).Return(nil, services.ErrAccountNotFound)
	c, rec := newTestContext(s.echo, http.MethodGet, "/", nil, "accountId", "4")

	s.Require().NoError(s.handler.GetAccount(c))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *AccountHandlerSuite) TestListMovements_DefaultPage() {
	page := &models.MovementPage{
		AccountID: 4,
		Movements: []models.Movement{
			{ID: 1, AccountID: 4, Amount: decimal.NewFromInt(10), TransactionDate: time.Now()},
		},
		Offset: 0,
		Limit:  services.DefaultMovementPageSize,
		Total:  3,
	}
	s.query.EXPECT().ListMovements(gomock.Any(), uint(4), 0, services.DefaultMovementPageSize).Return(page, nil)
	c, rec := newTestContext(s.echo, http.MethodGet, "/", nil, "accountId", "4")

	s.Require().NoError(s.handler.ListMovements(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.ListMovementsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Movements, 1)
	s.Equal("10.00", resp.Movements[0].Amount)
	s.True(resp.Pagination.HasMore)
	s.Equal(int64(3), resp.Pagination.Total)
}

func (s *AccountHandlerSuite) TestListMovements_Pagination() {
	s.query.EXPECT().ListMovements(gomock.Any(), uint(4), 10, 5).
		Return(&models.MovementPage{AccountID: 4, Movements: []models.Movement{}, Offset: 10, Limit: 5, Total: 10}, nil)
	c, rec := newTestContext(s.echo, http.MethodGet, "/?offset=10&limit=5", nil, "accountId", "4")

	s.Require().NoError(s.handler.ListMovements(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.ListMovementsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotNil(resp.Movements)
	s.False(resp.Pagination.HasMore)
}

func (s *AccountHandlerSuite) TestListMovements_BadQuery() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/?limit=ten", nil, "accountId", "4")
	s.Require().NoError(s.handler.ListMovements(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	s.query.EXPECT().ListMovements(gomock.Any(), uint(4), -1, services.DefaultMovementPageSize).Return(nil, services.ErrInvalidPagination)
	c, rec = newTestContext(s.echo, http.MethodGet, "/?offset=-1", nil, "accountId", "4")
	s.Require().NoError(s.handler.ListMovements(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationOutOfRange), decodeError(rec).Error.Code)
}
