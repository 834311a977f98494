package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ebanking/portal_backend/internal/apperrors"
	"github.com/ebanking/portal_backend/internal/core/domain"
	"github.com/ebanking/portal_backend/internal/core/services"
	"github.com/ebanking/portal_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionsByCustomerAndDateRange(ctx context.Context, customerID string, from, to time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	args := m.Called(ctx, customerID, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionsByAccountIBAN(ctx context.Context, iban string) ([]domain.Transaction, error) {
	args := m.Called(ctx, iban)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Mock ConverterSvc ---
type MockConverterSvc struct {
	mock.Mock
}

func (m *MockConverterSvc) Convert(ctx context.Context, amount *decimal.Decimal, fromCurrency, toCurrency string, date time.Time) decimal.Decimal {
	args := m.Called(ctx, amount, fromCurrency, toCurrency, date)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockConverterSvc) ClearCache() {
	m.Called()
}

// --- Mock TransactionPublisher ---
type MockTransactionPublisher struct {
	mock.Mock
}

func (m *MockTransactionPublisher) PublishTransaction(ctx context.Context, msg dto.TransactionMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockTransactionPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	mockConverter   *MockConverterSvc
	mockPublisher   *MockTransactionPublisher
	service         *services.TransactionService
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockConverter = new(MockConverterSvc)
	suite.mockPublisher = new(MockTransactionPublisher)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockAccountRepo,
		suite.mockConverter,
		suite.mockPublisher,
		nil,
	)
}

// --- SubmitTransaction ---

func (suite *TransactionServiceTestSuite) TestSubmitTransaction_Success() {
	ctx := context.Background()
	account := &domain.Account{IBAN: testIBAN, CustomerID: "P-0123456789", CurrencyCode: "CHF"}
	req := dto.AddTransactionRequest{
		AccountIBAN: testIBAN,
		Amount:      dec("-34.20"),
		ValueDate:   dto.NewDate(time.Date(2022, 10, 3, 0, 0, 0, 0, time.UTC)),
		Description: "Online payment CHF",
	}

	suite.mockAccountRepo.On("FindAccountByIBAN", ctx, testIBAN).Return(account, nil).Once()
	suite.mockPublisher.On("PublishTransaction", ctx, mock.MatchedBy(func(msg dto.TransactionMessage) bool {
		_, parseErr := uuid.Parse(msg.TransactionID)
		return parseErr == nil &&
			msg.AccountIBAN == testIBAN &&
			msg.Amount.Equal(req.Amount) &&
			msg.Description == req.Description
	})).Return(nil).Once()

	txnID, err := suite.service.SubmitTransaction(ctx, req, "P-0123456789")

	suite.Require().NoError(err)
	suite.NotEmpty(txnID)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSubmitTransaction_ForeignAccount() {
	ctx := context.Background()
	account := &domain.Account{IBAN: testIBAN, CustomerID: "P-9999999999", CurrencyCode: "CHF"}
	req := dto.AddTransactionRequest{AccountIBAN: testIBAN, Amount: dec("10")}

	suite.mockAccountRepo.On("FindAccountByIBAN", ctx, testIBAN).Return(account, nil).Once()

	txnID, err := suite.service.SubmitTransaction(ctx, req, "P-0123456789")

	suite.Require().Error(err)
	suite.Empty(txnID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishTransaction")
}

func (suite *TransactionServiceTestSuite) TestSubmitTransaction_ZeroAmount() {
	ctx := context.Background()
	account := &domain.Account{IBAN: testIBAN, CustomerID: "P-0123456789", CurrencyCode: "CHF"}
	req := dto.AddTransactionRequest{AccountIBAN: testIBAN, Amount: decimal.Zero}

	suite.mockAccountRepo.On("FindAccountByIBAN", ctx, testIBAN).Return(account, nil).Once()

	_, err := suite.service.SubmitTransaction(ctx, req, "P-0123456789")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishTransaction")
}

func (suite *TransactionServiceTestSuite) TestSubmitTransaction_PublishError() {
	ctx := context.Background()
	account := &domain.Account{IBAN: testIBAN, CustomerID: "P-0123456789", CurrencyCode: "CHF"}
	req := dto.AddTransactionRequest{AccountIBAN: testIBAN, Amount: dec("10")}
	expectedErr := assert.AnError

	suite.mockAccountRepo.On("FindAccountByIBAN", ctx, testIBAN).Return(account, nil).Once()
	suite.mockPublisher.On("PublishTransaction", ctx, mock.AnythingOfType("dto.TransactionMessage")).Return(expectedErr).Once()

	txnID, err := suite.service.SubmitTransaction(ctx, req, "P-0123456789")

	suite.Require().Error(err)
	suite.Empty(txnID)
	suite.ErrorIs(err, expectedErr)
}

// --- IngestTransaction ---

func (suite *TransactionServiceTestSuite) TestIngestTransaction_StampsAccountCurrency() {
	ctx := context.Background()
	account := &domain.Account{IBAN: testIBAN, CustomerID: "P-0123456789", CurrencyCode: "CHF"}
	msg := dto.TransactionMessage{
		TransactionID: uuid.NewString(),
		AccountIBAN:   testIBAN,
		Amount:        dec("-34.20"),
		ValueDate:     dto.NewDate(time.Date(2022, 10, 3, 0, 0, 0, 0, time.UTC)),
		Description:   "Online payment CHF",
	}

	suite.mockAccountRepo.On("FindAccountByIBAN", ctx, testIBAN).Return(account, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionID == msg.TransactionID &&
			txn.CurrencyCode == "CHF" &&
			txn.Amount.Equal(msg.Amount)
	})).Return(nil).Once()

	err := suite.service.IngestTransaction(ctx, msg)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestIngestTransaction_UnknownAccount() {
	ctx := context.Background()
	msg := dto.TransactionMessage{TransactionID: uuid.NewString(), AccountIBAN: testIBAN}

	suite.mockAccountRepo.On("FindAccountByIBAN", ctx, testIBAN).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.IngestTransaction(ctx, msg)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestIngestTransaction_MissingIDGetsGenerated() {
	ctx := context.Background()
	account := &domain.Account{IBAN: testIBAN, CustomerID: "P-0123456789", CurrencyCode: "CHF"}
	msg := dto.TransactionMessage{AccountIBAN: testIBAN, Amount: dec("10")}

	suite.mockAccountRepo.On("FindAccountByIBAN", ctx, testIBAN).Return(account, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		_, parseErr := uuid.Parse(txn.TransactionID)
		return parseErr == nil
	})).Return(nil).Once()

	err := suite.service.IngestTransaction(ctx, msg)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- ListTransactions ---

func (suite *TransactionServiceTestSuite) TestListTransactions_TotalsInBaseCurrency() {
	ctx := context.Background()
	valueDate := time.Date(2022, 10, 5, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{TransactionID: "t1", AccountIBAN: testIBAN, Amount: dec("100"), CurrencyCode: "USD", ValueDate: valueDate},
		{TransactionID: "t2", AccountIBAN: testIBAN, Amount: dec("-50"), CurrencyCode: "CHF", ValueDate: valueDate},
		{TransactionID: "t3", AccountIBAN: testIBAN, Amount: dec("20"), CurrencyCode: "GBP", ValueDate: valueDate},
	}
	expectedStart := time.Date(2022, 10, 1, 0, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2022, 10, 31, 0, 0, 0, 0, time.UTC)

	suite.mockTxnRepo.On("FindTransactionsByCustomerAndDateRange",
		ctx, "P-0123456789", expectedStart, expectedEnd, 20, 0).
		Return(txns, 3, nil).Once()

	suite.mockConverter.On("Convert", ctx, mock.Anything, "USD", "GBP", valueDate).Return(dec("79.00")).Once()
	suite.mockConverter.On("Convert", ctx, mock.Anything, "CHF", "GBP", valueDate).Return(dec("-44.50")).Once()
	suite.mockConverter.On("Convert", ctx, mock.Anything, "GBP", "GBP", valueDate).Return(dec("20")).Once()

	resp, err := suite.service.ListTransactions(ctx, "P-0123456789", dto.ListTransactionsParams{
		Year: 2022, Month: 10, BaseCurrency: "GBP", Page: 0, Size: 20,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Transactions, 3)
	suite.True(dec("99.00").Equal(resp.TotalCredit), "credit %s", resp.TotalCredit)
	suite.True(dec("44.50").Equal(resp.TotalDebit), "debit %s", resp.TotalDebit)
	suite.Equal("GBP", resp.BaseCurrency)
	suite.Equal(3, resp.TotalElements)
	suite.Equal(1, resp.TotalPages)
	suite.True(resp.First)
	suite.True(resp.Last)
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Pagination() {
	ctx := context.Background()
	expectedStart := time.Date(2022, 10, 1, 0, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2022, 10, 31, 0, 0, 0, 0, time.UTC)

	suite.mockTxnRepo.On("FindTransactionsByCustomerAndDateRange",
		ctx, "P-0123456789", expectedStart, expectedEnd, 10, 20).
		Return([]domain.Transaction{}, 45, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, "P-0123456789", dto.ListTransactionsParams{
		Year: 2022, Month: 10, BaseCurrency: "GBP", Page: 2, Size: 10,
	})

	suite.Require().NoError(err)
	suite.Equal(45, resp.TotalElements)
	suite.Equal(5, resp.TotalPages)
	suite.False(resp.First)
	suite.False(resp.Last)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyMonth() {
	ctx := context.Background()

	suite.mockTxnRepo.On("FindTransactionsByCustomerAndDateRange",
		ctx, "P-0123456789", mock.Anything, mock.Anything, 20, 0).
		Return([]domain.Transaction{}, 0, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, "P-0123456789", dto.ListTransactionsParams{
		Year: 2022, Month: 10, BaseCurrency: "GBP", Size: 20,
	})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.True(resp.TotalCredit.IsZero())
	suite.True(resp.TotalDebit.IsZero())
	suite.Equal(0, resp.TotalPages)
	suite.True(resp.First)
	suite.True(resp.Last)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockTxnRepo.On("FindTransactionsByCustomerAndDateRange",
		ctx, "P-0123456789", mock.Anything, mock.Anything, 20, 0).
		Return(nil, 0, expectedErr).Once()

	resp, err := suite.service.ListTransactions(ctx, "P-0123456789", dto.ListTransactionsParams{
		Year: 2022, Month: 10, BaseCurrency: "GBP", Size: 20,
	})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, expectedErr)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
