package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	portssvc "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/services"
)

// --- Mock ClassificationService ---
type MockClassificationService struct {
	mock.Mock
}

func (m *MockClassificationService) ClassifyTransactions(ctx context.Context, transactionIDs []string) ([]domain.ClassificationResult, error) {
	args := m.Called(ctx, transactionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassificationResult), args.Error(1)
}

func (m *MockClassificationService) OverrideClassification(ctx context.Context, transactionID, newLedger, reason string, userID *string) (*domain.ClassificationResult, error) {
	args := m.Called(ctx, transactionID, newLedger, reason, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassificationResult), args.Error(1)
}

func (m *MockClassificationService) BulkClassify(ctx context.Context, clientID, sheetID string) (*domain.ClassificationStats, error) {
	args := m.Called(ctx, clientID, sheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassificationStats), args.Error(1)
}

func (m *MockClassificationService) GetClassificationHistory(ctx context.Context, transactionID string) ([]domain.ClassificationHistoryEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassificationHistoryEntry), args.Error(1)
}

func (m *MockClassificationService) GetSuggestions(ctx context.Context, transactionID string, topN int) ([]domain.LedgerSuggestion, error) {
	args := m.Called(ctx, transactionID, topN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerSuggestion), args.Error(1)
}

func (m *MockClassificationService) GetStatistics(ctx context.Context, clientID string, from, to *time.Time) (*domain.LedgerStatistics, error) {
	args := m.Called(ctx, clientID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerStatistics), args.Error(1)
}

func (m *MockClassificationService) RetrainPatterns(ctx context.Context) ([]domain.LearnedPattern, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LearnedPattern), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ClassificationSvcFacade = (*MockClassificationService)(nil)

// --- Mock RedFlagService ---
type MockRedFlagService struct {
	mock.Mock
}

func (m *MockRedFlagService) ScanForRedFlags(ctx context.Context, scope domain.TransactionScope) ([]domain.RedFlag, *domain.ScanSummary, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.RedFlag), args.Get(1).(*domain.ScanSummary), args.Error(2)
}

func (m *MockRedFlagService) ScanAllClients(ctx context.Context, progress func(domain.ScanSummary)) ([]domain.ScanSummary, error) {
	args := m.Called(ctx, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanSummary), args.Error(1)
}

func (m *MockRedFlagService) ListRedFlags(ctx context.Context, clientID string, resolved *bool, limit int, nextToken *string) ([]domain.RedFlag, *string, error) {
	args := m.Called(ctx, clientID, resolved, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		next = &tokenVal
	}
	return args.Get(0).([]domain.RedFlag), next, args.Error(2)
}

func (m *MockRedFlagService) ResolveRedFlag(ctx context.Context, flagID, note string) (*domain.RedFlag, error) {
	args := m.Called(ctx, flagID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RedFlag), args.Error(1)
}

var _ portssvc.RedFlagSvcFacade = (*MockRedFlagService)(nil)
