package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bistrobooks/backoffice/internal/apperrors"
	"github.com/bistrobooks/backoffice/internal/core/domain"
	portssvc "github.com/bistrobooks/backoffice/internal/core/ports/services"
	"github.com/bistrobooks/backoffice/internal/dto"
	"github.com/bistrobooks/backoffice/internal/handlers"
)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) TrialBalance(ctx context.Context, restaurantID string, asOf time.Time) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, restaurantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

func (m *MockStatementService) IncomeStatement(ctx context.Context, restaurantID string, from, to time.Time, strict bool) (*domain.IncomeStatementReport, error) {
	args := m.Called(ctx, restaurantID, from, to, strict)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatementReport), args.Error(1)
}

func (m *MockStatementService) BalanceSheet(ctx context.Context, restaurantID string, asOf time.Time, strict bool) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, restaurantID, asOf, strict)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *MockStatementService) CashFlow(ctx context.Context, restaurantID string, from, to time.Time) (*domain.CashFlowReport, error) {
	args := m.Called(ctx, restaurantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowReport), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.StatementService = (*MockStatementService)(nil)

// --- Test Suite ---
type StatementHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockStatementService
}

func (suite *StatementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockStatementService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterStatementRoutes(v1, suite.mockService, false)
}

func (suite *StatementHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	suite.Require().NoError(err)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func trialBalanceFixture() *domain.TrialBalanceReport {
	return &domain.TrialBalanceReport{
		Rows: []domain.TrialBalanceRow{
			{AccountID: "cash", Code: "1000", AccountName: "Cash", AccountType: domain.Asset, Debit: decimal.RequireFromString("700"), Credit: decimal.Zero},
			{AccountID: "sales", Code: "4000", AccountName: "Food Sales", AccountType: domain.Revenue, Debit: decimal.Zero, Credit: decimal.RequireFromString("700")},
		},
		TotalDebits:  decimal.RequireFromString("700"),
		TotalCredits: decimal.RequireFromString("700"),
		Balanced:     true,
		Difference:   decimal.Zero,
	}
}

// --- Test Cases ---

func (suite *StatementHandlerTestSuite) TestGetTrialBalance_Success() {
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("TrialBalance", mock.Anything, "rest-42", asOf).
		Return(trialBalanceFixture(), nil).Once()

	w := suite.get("/api/v1/restaurants/rest-42/statements/trial-balance?asOf=2026-03-31")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2026-03-31", resp.AsOf)
	suite.Len(resp.Rows, 2)
	suite.True(resp.Balanced)
	suite.True(resp.Totals.Debit.Equal(decimal.RequireFromString("700")))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestGetTrialBalance_InvalidDateReturns400() {
	w := suite.get("/api/v1/restaurants/rest-42/statements/trial-balance?asOf=31-03-2026")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid asOf date format")
	suite.mockService.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestGetTrialBalance_CSVFormat() {
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("TrialBalance", mock.Anything, "rest-42", asOf).
		Return(trialBalanceFixture(), nil).Once()

	w := suite.get("/api/v1/restaurants/rest-42/statements/trial-balance?asOf=2026-03-31&format=csv")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "trial-balance-2026-03-31.csv")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	suite.Equal("code,name,debit,credit", lines[0])
	suite.Contains(lines[1], "1000,Cash")
}

func (suite *StatementHandlerTestSuite) TestGetBalanceSheet_StrictFlagPassedThrough() {
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	report := &domain.BalanceSheetReport{Balanced: true}
	suite.mockService.On("BalanceSheet", mock.Anything, "rest-42", asOf, true).
		Return(report, nil).Once()

	w := suite.get("/api/v1/restaurants/rest-42/statements/balance-sheet?asOf=2026-03-31&strict=true")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestGetIncomeStatement_ServiceFailureReturns500() {
	suite.mockService.On("IncomeStatement", mock.Anything, "rest-42", mock.Anything, mock.Anything, false).
		Return(nil, fmt.Errorf("%w: connection refused", apperrors.ErrUpstream)).Once()

	w := suite.get("/api/v1/restaurants/rest-42/statements/income-statement?fromDate=2026-03-01&toDate=2026-03-31")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to generate income statement")
	// Internal error detail must not leak to the client
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *StatementHandlerTestSuite) TestGetIncomeStatement_InvertedPeriodReturns400() {
	w := suite.get("/api/v1/restaurants/rest-42/statements/income-statement?fromDate=2026-03-31&toDate=2026-03-01")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "IncomeStatement",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestGetCashFlow_Success() {
	report := &domain.CashFlowReport{
		Operating: decimal.RequireFromString("580"),
		Investing: decimal.Zero,
		Financing: decimal.Zero,
		NetChange: decimal.RequireFromString("580"),
	}
	suite.mockService.On("CashFlow", mock.Anything, "rest-42", mock.Anything, mock.Anything).
		Return(report, nil).Once()

	w := suite.get("/api/v1/restaurants/rest-42/statements/cash-flow?fromDate=2026-03-01&toDate=2026-03-31")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CashFlowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.NetChange.Equal(decimal.RequireFromString("580")))
	suite.True(resp.Operating.Equal(resp.NetChange))
}

func TestStatementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatementHandlerTestSuite))
}
