package repositories

import (
	"context"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Soft-deleted transactions are never returned, and no match yields an empty slice rather than an error.
type TransactionReader interface {
	// FindTransactionsByIDs retrieves the transactions among ids, in the order given.
	FindTransactionsByIDs(ctx context.Context, ids []string) ([]domain.Transaction, error)

	// FindTransactionByID retrieves one transaction. Returns apperrors.ErrNotFound if absent.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByScope retrieves a client's transactions, optionally narrowed by sheet and date range.
	ListTransactionsByScope(ctx context.Context, scope domain.TransactionScope) ([]domain.Transaction, error)

	// ListClientIDs returns every client that owns at least one live transaction.
	ListClientIDs(ctx context.Context) ([]string, error)
}

// TransactionWriter defines the single write this core performs on transactions.
type TransactionWriter interface {
	// UpdateTransactionLedger sets the ledger field. Returns apperrors.ErrNotFound if absent.
	UpdateTransactionLedger(ctx context.Context, transactionID string, ledger string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
