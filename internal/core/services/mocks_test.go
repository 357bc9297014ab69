package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	portsrepo "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/repositories"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionsByIDs(ctx context.Context, ids []string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByScope(ctx context.Context, scope domain.TransactionScope) ([]domain.Transaction, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListClientIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionLedger(ctx context.Context, transactionID string, ledger string) error {
	args := m.Called(ctx, transactionID, ledger)
	return args.Error(0)
}

// --- Mock ClassificationHistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

var _ portsrepo.ClassificationHistoryRepository = (*MockHistoryRepository)(nil)

func (m *MockHistoryRepository) AppendHistory(ctx context.Context, entry domain.ClassificationHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListHistoryByTransaction(ctx context.Context, transactionID string) ([]domain.ClassificationHistoryEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassificationHistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) ListHistoryByMethod(ctx context.Context, method domain.ClassificationMethod) ([]domain.ClassificationHistoryEntry, error) {
	args := m.Called(ctx, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassificationHistoryEntry), args.Error(1)
}

// --- Mock RedFlagRepository ---
type MockRedFlagRepository struct {
	mock.Mock
}

var _ portsrepo.RedFlagRepositoryWithTx = (*MockRedFlagRepository)(nil)

func (m *MockRedFlagRepository) FindRedFlagByID(ctx context.Context, flagID string) (*domain.RedFlag, error) {
	args := m.Called(ctx, flagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RedFlag), args.Error(1)
}

func (m *MockRedFlagRepository) ListRedFlags(ctx context.Context, clientID string, resolved *bool, limit int, nextToken *string) ([]domain.RedFlag, *string, error) {
	args := m.Called(ctx, clientID, resolved, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.RedFlag), returnedNextToken, args.Error(2)
}

func (m *MockRedFlagRepository) CreateRedFlag(ctx context.Context, flag domain.RedFlag) (bool, error) {
	args := m.Called(ctx, flag)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedFlagRepository) ResolveRedFlag(ctx context.Context, flagID string, note string, resolvedAt time.Time) (*domain.RedFlag, error) {
	args := m.Called(ctx, flagID, note, resolvedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RedFlag), args.Error(1)
}

func (m *MockRedFlagRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockRedFlagRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRedFlagRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
