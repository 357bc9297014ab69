package repositories

import (
	"context"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

// ClassificationHistoryRepository persists the append-only classification audit log.
type ClassificationHistoryRepository interface {
	// AppendHistory inserts one entry. Entries are never updated or deleted.
	AppendHistory(ctx context.Context, entry domain.ClassificationHistoryEntry) error

	// ListHistoryByTransaction returns a transaction's entries, newest first.
	ListHistoryByTransaction(ctx context.Context, transactionID string) ([]domain.ClassificationHistoryEntry, error)

	// ListHistoryByMethod returns every entry recorded with the given method, oldest first.
	ListHistoryByMethod(ctx context.Context, method domain.ClassificationMethod) ([]domain.ClassificationHistoryEntry, error)
}
