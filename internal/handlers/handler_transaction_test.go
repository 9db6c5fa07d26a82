package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/handlers"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetSummary(ctx context.Context, ownerID string, filter domain.TransactionFilter) (*domain.Summary, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]byte, string, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

var _ portssvc.ExportSvcFacade = (*MockExportService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	mockExport  *MockExportService
	jwtSecret   string
	userID      string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fintrack-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockTransactionService)
	suite.mockExport = new(MockExportService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockService, suite.mockExport)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validSaveRequest() dto.SaveTransactionRequest {
	return dto.SaveTransactionRequest{
		Type:     "expense",
		Amount:   "4.50",
		Category: "food",
		Title:    "Lunch",
		Date:     "2025-06-15",
	}
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	expected := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			UserID:        suite.userID,
			Type:          domain.TypeExpense,
			Amount:        decimal.RequireFromString("4.50"),
			Category:      "food",
			Title:         "Lunch",
			Date:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt:     time.Now(),
		},
	}

	suite.mockService.On("ListTransactions", mock.Anything, suite.userID, domain.TransactionFilter{}).
		Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal(expected[0].TransactionID, resp.Transactions[0].TransactionID)
	suite.Equal("4.5", resp.Transactions[0].Amount)
	suite.Equal("2025-06-15", resp.Transactions[0].Date)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_CategoryFilterForwarded() {
	category := "bills"
	suite.mockService.On("ListTransactions", mock.Anything, suite.userID,
		domain.TransactionFilter{Category: &category}).
		Return([]domain.Transaction{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?category=bills", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadDateRejected() {
	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?from=15-06-2025", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_NoToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	req := validSaveRequest()
	created := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Type:          domain.TypeExpense,
		Amount:        decimal.RequireFromString("4.50"),
		Category:      "food",
		Title:         "Lunch",
		Date:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Now(),
	}

	suite.mockService.On("CreateTransaction", mock.Anything, suite.userID, req).
		Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_BindingRejectsUnknownType() {
	req := validSaveRequest()
	req.Type = "transfer"

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ServiceValidationMapsTo400() {
	req := validSaveRequest()
	req.Category = "salary"

	suite.mockService.On("CreateTransaction", mock.Anything, suite.userID, req).
		Return(nil, fmt.Errorf("category %q is not valid for type %q: %w", req.Category, req.Type, apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	transactionID := uuid.NewString()
	req := validSaveRequest()

	suite.mockService.On("UpdateTransaction", mock.Anything, suite.userID, transactionID, req).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/transactions/"+transactionID, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	transactionID := uuid.NewString()

	suite.mockService.On("DeleteTransaction", mock.Anything, suite.userID, transactionID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DeleteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_AbsentIDStillSucceeds() {
	transactionID := uuid.NewString()

	// The service reports no error for an absent id; the handler reports
	// success either way.
	suite.mockService.On("DeleteTransaction", mock.Anything, suite.userID, transactionID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetSummary_Success() {
	summary := &domain.Summary{
		Income:  decimal.Zero,
		Expense: decimal.RequireFromString("4.50"),
		Balance: decimal.RequireFromString("-4.50"),
	}

	suite.mockService.On("GetSummary", mock.Anything, suite.userID, domain.TransactionFilter{}).
		Return(summary, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("0", resp.Income)
	suite.Equal("4.5", resp.Expense)
	suite.Equal("-4.5", resp.Balance)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestExportTransactions_Success() {
	content := []byte("PK\x03\x04workbook-bytes")
	filename := "transactions-2025-06-15.xlsx"

	suite.mockExport.On("ExportTransactions", mock.Anything, suite.userID, domain.TransactionFilter{}).
		Return(content, filename, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/export", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(content, w.Body.Bytes())
	suite.Contains(w.Header().Get("Content-Disposition"), filename)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	suite.mockExport.AssertExpectations(suite.T())
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
