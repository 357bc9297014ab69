package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/apperrors"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	portssvc "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/services"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/services"
)

type ClassificationServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockHistoryRepo *MockHistoryRepository
	service         portssvc.ClassificationSvcFacade
	clock           time.Time
	clientID        string
	sheetID         string
}

func (suite *ClassificationServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockHistoryRepo = new(MockHistoryRepository)
	suite.clock = time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewClassificationService(
		suite.mockTxnRepo,
		suite.mockHistoryRepo,
		services.WithClassificationClock(func() time.Time { return suite.clock }),
	)
	suite.clientID = uuid.NewString()
	suite.sheetID = uuid.NewString()
}

func (suite *ClassificationServiceTestSuite) txn(description string, amount int64, ledger string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		ClientID:      suite.clientID,
		SheetID:       suite.sheetID,
		Description:   description,
		Amount:        decimal.NewFromInt(amount),
		Type:          domain.Debit,
		Date:          suite.clock,
		Vendor:        "Acme Traders",
		Ledger:        ledger,
	}
}

func historyWith(method domain.ClassificationMethod, check func(domain.ClassificationHistoryEntry) bool) interface{} {
	return mock.MatchedBy(func(e domain.ClassificationHistoryEntry) bool {
		return e.Method == method && e.HistoryID != "" && check(e)
	})
}

func (suite *ClassificationServiceTestSuite) TestClassifyTransactions_Success() {
	ctx := context.Background()
	rent := suite.txn("Office rent for March", 25000, "")
	misc := suite.txn("misc xyz", 100, "Sales")
	ids := []string{rent.TransactionID, misc.TransactionID, "missing-id"}

	suite.mockTxnRepo.On("FindTransactionsByIDs", ctx, ids).Return([]domain.Transaction{rent, misc}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionLedger", ctx, rent.TransactionID, "Rent Expense").Return(nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionLedger", ctx, misc.TransactionID, domain.Uncategorized).Return(nil).Once()
	suite.mockHistoryRepo.On("AppendHistory", ctx, historyWith(domain.MethodRuleBased, func(e domain.ClassificationHistoryEntry) bool {
		return e.TransactionID == rent.TransactionID && e.Confidence == 0.75 && e.OldLedger == nil && e.Timestamp.Equal(suite.clock)
	})).Return(nil).Once()
	suite.mockHistoryRepo.On("AppendHistory", ctx, historyWith(domain.MethodRuleBased, func(e domain.ClassificationHistoryEntry) bool {
		return e.TransactionID == misc.TransactionID && e.OldLedger != nil && *e.OldLedger == "Sales"
	})).Return(nil).Once()

	results, err := suite.service.ClassifyTransactions(ctx, ids)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.Equal("Rent Expense", results[0].PredictedLedger)
	suite.Equal(0.75, results[0].Confidence)
	suite.True(results[0].IsRecurring)
	suite.Equal(domain.Uncategorized, results[1].PredictedLedger)
	suite.Equal(0.0, results[1].Confidence)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *ClassificationServiceTestSuite) TestClassifyTransactions_EmptyInput() {
	results, err := suite.service.ClassifyTransactions(context.Background(), nil)

	suite.Require().NoError(err)
	suite.NotNil(results)
	suite.Empty(results)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsByIDs", mock.Anything, mock.Anything)
}

func (suite *ClassificationServiceTestSuite) TestClassifyTransactions_NoMatches() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionsByIDs", ctx, []string{"a"}).Return([]domain.Transaction{}, nil).Once()

	results, err := suite.service.ClassifyTransactions(ctx, []string{"a"})

	suite.Require().NoError(err)
	suite.Empty(results)
}

func (suite *ClassificationServiceTestSuite) TestClassifyTransactions_FetchError() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionsByIDs", ctx, []string{"a"}).Return(nil, errors.New("connection refused")).Once()

	results, err := suite.service.ClassifyTransactions(ctx, []string{"a"})

	suite.Require().Error(err)
	suite.Nil(results)
	suite.Contains(err.Error(), "connection refused")
}

func (suite *ClassificationServiceTestSuite) TestClassifyTransactions_PartialFailures() {
	ctx := context.Background()
	broken := suite.txn("Office rent", 25000, "")
	fine := suite.txn("Petrol refill", 2000, "")
	ids := []string{broken.TransactionID, fine.TransactionID}

	suite.mockTxnRepo.On("FindTransactionsByIDs", ctx, ids).Return([]domain.Transaction{broken, fine}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionLedger", ctx, broken.TransactionID, "Rent Expense").Return(errors.New("write timeout")).Once()
	suite.mockTxnRepo.On("UpdateTransactionLedger", ctx, fine.TransactionID, "Fuel Expense").Return(nil).Once()
	suite.mockHistoryRepo.On("AppendHistory", ctx, mock.AnythingOfType("domain.ClassificationHistoryEntry")).Return(errors.New("audit table locked")).Once()

	results, err := suite.service.ClassifyTransactions(ctx, ids)

	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(fine.TransactionID, results[0].TransactionID)
	suite.Equal("Fuel Expense", results[0].PredictedLedger)
	suite.mockHistoryRepo.AssertNumberOfCalls(suite.T(), "AppendHistory", 1)
}

func (suite *ClassificationServiceTestSuite) TestOverrideClassification_Success() {
	ctx := context.Background()
	txn := suite.txn("professional consulting fees", 35000, "")
	userID := "user-7"

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(&txn, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionLedger", ctx, txn.TransactionID, "Sales").Return(nil).Once()
	suite.mockHistoryRepo.On("AppendHistory", ctx, historyWith(domain.MethodManualOverride, func(e domain.ClassificationHistoryEntry) bool {
		return e.Confidence == 1.0 &&
			e.PredictedLedger == "Sales" &&
			e.OldLedger != nil && *e.OldLedger == domain.Uncategorized &&
			e.Reason != nil && *e.Reason == "client confirmed" &&
			e.UserID != nil && *e.UserID == userID &&
			e.TDSApplicable
	})).Return(nil).Once()

	result, err := suite.service.OverrideClassification(ctx, txn.TransactionID, "Sales", " client confirmed ", &userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("Sales", result.PredictedLedger)
	suite.Equal(1.0, result.Confidence)
	suite.True(result.TDSApplicable, "flags come from the transaction, not the new ledger")
	suite.True(result.GSTApplicable)
	suite.False(result.IsCapitalExpense)
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *ClassificationServiceTestSuite) TestOverrideClassification_RepeatedAppendsEachTime() {
	ctx := context.Background()
	txn := suite.txn("team lunch", 1200, "Sales")

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(&txn, nil).Twice()
	suite.mockTxnRepo.On("UpdateTransactionLedger", ctx, txn.TransactionID, "Staff Welfare").Return(nil).Twice()
	suite.mockHistoryRepo.On("AppendHistory", ctx, historyWith(domain.MethodManualOverride, func(e domain.ClassificationHistoryEntry) bool {
		return e.Confidence == 1.0 && *e.OldLedger == "Sales"
	})).Return(nil).Twice()

	for i := 0; i < 2; i++ {
		_, err := suite.service.OverrideClassification(ctx, txn.TransactionID, "Staff Welfare", "reviewed", nil)
		suite.Require().NoError(err)
	}

	suite.mockHistoryRepo.AssertNumberOfCalls(suite.T(), "AppendHistory", 2)
}

func (suite *ClassificationServiceTestSuite) TestOverrideClassification_NotFound() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.OverrideClassification(ctx, "nope", "Sales", "reason", nil)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransactionLedger", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClassificationServiceTestSuite) TestOverrideClassification_Validation() {
	ctx := context.Background()

	_, err := suite.service.OverrideClassification(ctx, "t1", "Sales", "   ", nil)
	suite.True(errors.Is(err, apperrors.ErrValidation))

	_, err = suite.service.OverrideClassification(ctx, "t1", "", "reason", nil)
	suite.True(errors.Is(err, apperrors.ErrValidation))

	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *ClassificationServiceTestSuite) TestGetClassificationHistory_NewestFirst() {
	ctx := context.Background()
	older := domain.ClassificationHistoryEntry{HistoryID: "h1", Timestamp: suite.clock.Add(-time.Hour)}
	newer := domain.ClassificationHistoryEntry{HistoryID: "h2", Timestamp: suite.clock}
	suite.mockHistoryRepo.On("ListHistoryByTransaction", ctx, "t1").Return([]domain.ClassificationHistoryEntry{older, newer}, nil).Once()
	suite.mockHistoryRepo.On("ListHistoryByTransaction", ctx, "t2").Return(nil, nil).Once()

	entries, err := suite.service.GetClassificationHistory(ctx, "t1")
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("h2", entries[0].HistoryID)

	entries, err = suite.service.GetClassificationHistory(ctx, "t2")
	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *ClassificationServiceTestSuite) TestBulkClassify_EmptySheet() {
	ctx := context.Background()
	scope := domain.TransactionScope{ClientID: suite.clientID, SheetID: suite.sheetID}
	suite.mockTxnRepo.On("ListTransactionsByScope", ctx, scope).Return([]domain.Transaction{}, nil).Once()

	stats, err := suite.service.BulkClassify(ctx, suite.clientID, suite.sheetID)

	suite.Require().NoError(err)
	suite.Equal(domain.ClassificationStats{}, *stats)
}

func (suite *ClassificationServiceTestSuite) TestBulkClassify_Stats() {
	ctx := context.Background()
	scope := domain.TransactionScope{ClientID: suite.clientID, SheetID: suite.sheetID}
	txns := []domain.Transaction{
		suite.txn("Office rent", 25000, ""),
		suite.txn("Legal and audit fees", 40000, ""),
		suite.txn("misc xyz", 50, ""),
	}
	suite.mockTxnRepo.On("ListTransactionsByScope", ctx, scope).Return(txns, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionLedger", ctx, mock.Anything, mock.Anything).Return(nil).Times(3)
	suite.mockHistoryRepo.On("AppendHistory", ctx, mock.Anything).Return(nil).Times(3)

	stats, err := suite.service.BulkClassify(ctx, suite.clientID, suite.sheetID)

	suite.Require().NoError(err)
	suite.Equal(3, stats.Total)
	suite.Equal(2, stats.HighConfidence)
	suite.Equal(0, stats.LowConfidence)
	suite.Equal(1, stats.Uncategorized)
	suite.Equal(66.67, stats.HighConfidencePercentage)
	suite.Equal(33.33, stats.UncategorizedPercentage)
}

func (suite *ClassificationServiceTestSuite) TestSummarizeClassifications_LowConfidence() {
	stats := services.SummarizeClassifications([]domain.ClassificationResult{
		{PredictedLedger: "Sales", Confidence: 0.5},
		{PredictedLedger: "Sales", Confidence: 0.95},
		{PredictedLedger: "Sales", Confidence: 0.75},
		{PredictedLedger: domain.Uncategorized, Confidence: 0},
	})

	suite.Equal(4, stats.Total)
	suite.Equal(2, stats.HighConfidence)
	suite.Equal(1, stats.LowConfidence)
	suite.Equal(1, stats.Uncategorized)
	suite.Equal(25.0, stats.LowConfidencePercentage)
}

func (suite *ClassificationServiceTestSuite) TestRetrainPatterns() {
	ctx := context.Background()
	overrides := make([]domain.ClassificationHistoryEntry, 0)
	for i := 0; i < 3; i++ {
		overrides = append(overrides, domain.ClassificationHistoryEntry{PredictedLedger: "Sales", Method: domain.MethodManualOverride})
	}
	for i := 0; i < 2; i++ {
		overrides = append(overrides, domain.ClassificationHistoryEntry{PredictedLedger: "Rent Expense", Method: domain.MethodManualOverride})
	}
	suite.mockHistoryRepo.On("ListHistoryByMethod", ctx, domain.MethodManualOverride).Return(overrides, nil).Once()

	patterns, err := suite.service.RetrainPatterns(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(patterns, 1)
	suite.Equal(domain.LearnedPattern{Ledger: "Sales", SampleCount: 3, Confidence: 0.65}, patterns[0])
}

func (suite *ClassificationServiceTestSuite) TestRetrainPatterns_NoData() {
	ctx := context.Background()
	suite.mockHistoryRepo.On("ListHistoryByMethod", ctx, domain.MethodManualOverride).Return([]domain.ClassificationHistoryEntry{}, nil).Once()

	patterns, err := suite.service.RetrainPatterns(ctx)

	suite.Require().NoError(err)
	suite.NotNil(patterns)
	suite.Empty(patterns)
}

func (suite *ClassificationServiceTestSuite) TestGetSuggestions() {
	ctx := context.Background()
	txn := suite.txn("Rent for staff salary payroll", 1000, "")
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(&txn, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	suggestions, err := suite.service.GetSuggestions(ctx, txn.TransactionID, 3)
	suite.Require().NoError(err)
	suite.Require().Len(suggestions, 2)
	suite.Equal("Salary & Wages", suggestions[0].Ledger)

	_, err = suite.service.GetSuggestions(ctx, "missing", 3)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *ClassificationServiceTestSuite) TestGetStatistics() {
	ctx := context.Background()
	scope := domain.TransactionScope{ClientID: suite.clientID}
	txns := []domain.Transaction{
		suite.txn("a", 1, "Rent Expense"),
		suite.txn("b", 1, ""),
		suite.txn("c", 1, domain.Uncategorized),
		suite.txn("d", 1, "Rent Expense"),
	}
	suite.mockTxnRepo.On("ListTransactionsByScope", ctx, scope).Return(txns, nil).Once()

	stats, err := suite.service.GetStatistics(ctx, suite.clientID, nil, nil)

	suite.Require().NoError(err)
	suite.Equal(4, stats.Total)
	suite.Equal(map[string]int{"Rent Expense": 2, domain.Uncategorized: 2}, stats.ByLedger)
	suite.Equal(2, stats.UncategorizedCount)
	suite.Equal(50.0, stats.UncategorizedPercentage)
	suite.Equal(2, stats.UniqueLedgers)
}

func (suite *ClassificationServiceTestSuite) TestGetStatistics_InvalidRange() {
	from := suite.clock
	to := suite.clock.Add(-time.Hour)

	_, err := suite.service.GetStatistics(context.Background(), suite.clientID, &from, &to)

	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func TestClassificationService(t *testing.T) {
	suite.Run(t, new(ClassificationServiceTestSuite))
}
