package services_test

import (
	"context"
	"testing"

	"github.com/ebanking/portal_backend/internal/apperrors"
	"github.com/ebanking/portal_backend/internal/core/domain"
	"github.com/ebanking/portal_backend/internal/core/services"
	"github.com/ebanking/portal_backend/internal/dto"
	"github.com/ebanking/portal_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// --- Test Suite ---
type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  *services.CustomerService
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CustomerServiceTestSuite) TestRegisterCustomer_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{CustomerID: "P-0123456789", Password: "s3cret-pass"}

	suite.mockRepo.On("FindCustomerByID", ctx, req.CustomerID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CustomerID == req.CustomerID &&
			c.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, c.PasswordHash)
	})).Return(nil).Once()

	customer, err := suite.service.RegisterCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.Equal(req.CustomerID, customer.CustomerID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestRegisterCustomer_Duplicate() {
	ctx := context.Background()
	req := dto.RegisterRequest{CustomerID: "P-0123456789", Password: "s3cret-pass"}
	existing := &domain.Customer{CustomerID: req.CustomerID}

	suite.mockRepo.On("FindCustomerByID", ctx, req.CustomerID).Return(existing, nil).Once()

	customer, err := suite.service.RegisterCustomer(ctx, req)

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustomer")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestVerifyCredentials_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	existing := &domain.Customer{CustomerID: "P-0123456789", PasswordHash: hash}

	suite.mockRepo.On("FindCustomerByID", ctx, existing.CustomerID).Return(existing, nil).Once()

	customer, err := suite.service.VerifyCredentials(ctx, existing.CustomerID, "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal(existing, customer)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestVerifyCredentials_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	existing := &domain.Customer{CustomerID: "P-0123456789", PasswordHash: hash}

	suite.mockRepo.On("FindCustomerByID", ctx, existing.CustomerID).Return(existing, nil).Once()

	customer, err := suite.service.VerifyCredentials(ctx, existing.CustomerID, "wrong-pass")

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *CustomerServiceTestSuite) TestVerifyCredentials_UnknownCustomerSameError() {
	ctx := context.Background()

	suite.mockRepo.On("FindCustomerByID", ctx, "P-9999999999").Return(nil, apperrors.ErrNotFound).Once()

	customer, err := suite.service.VerifyCredentials(ctx, "P-9999999999", "whatever")

	suite.Require().Error(err)
	suite.Nil(customer)
	// Unknown customer and bad password must be indistinguishable.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CustomerServiceTestSuite) TestGetCustomerByID_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindCustomerByID", ctx, "P-0123456789").Return(nil, expectedErr).Once()

	customer, err := suite.service.GetCustomerByID(ctx, "P-0123456789")

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, expectedErr)
}

func (suite *CustomerServiceTestSuite) TestResolvePrincipal_Success() {
	ctx := context.Background()
	existing := &domain.Customer{CustomerID: "P-0123456789"}

	suite.mockRepo.On("FindCustomerByID", ctx, existing.CustomerID).Return(existing, nil).Once()

	principal, err := suite.service.ResolvePrincipal(ctx, existing.CustomerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(principal)
	suite.Equal(existing.CustomerID, principal.CustomerID)
	suite.Equal(domain.RoleCustomer, principal.Role)
}

func (suite *CustomerServiceTestSuite) TestResolvePrincipal_Unknown() {
	ctx := context.Background()

	suite.mockRepo.On("FindCustomerByID", ctx, "P-9999999999").Return(nil, apperrors.ErrNotFound).Once()

	principal, err := suite.service.ResolvePrincipal(ctx, "P-9999999999")

	suite.Require().Error(err)
	suite.Nil(principal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
