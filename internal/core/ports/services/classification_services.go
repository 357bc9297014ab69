package services

import (
	"context"
	"time"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

// ClassificationReaderSvc defines read operations over classifications
type ClassificationReaderSvc interface {
	// GetClassificationHistory returns a transaction's audit log, newest first.
	GetClassificationHistory(ctx context.Context, transactionID string) ([]domain.ClassificationHistoryEntry, error)

	// GetSuggestions ranks candidate ledgers for a transaction.
	GetSuggestions(ctx context.Context, transactionID string, topN int) ([]domain.LedgerSuggestion, error)

	// GetStatistics counts a client's transactions per ledger, optionally within a date range.
	GetStatistics(ctx context.Context, clientID string, from, to *time.Time) (*domain.LedgerStatistics, error)
}

// ClassificationWriterSvc defines operations that classify transactions and record history
type ClassificationWriterSvc interface {
	// ClassifyTransactions runs the rules over each transaction and writes the predicted ledger.
	ClassifyTransactions(ctx context.Context, transactionIDs []string) ([]domain.ClassificationResult, error)

	// OverrideClassification sets a ledger manually. Returns apperrors.ErrNotFound for an unknown transaction.
	OverrideClassification(ctx context.Context, transactionID, newLedger, reason string, userID *string) (*domain.ClassificationResult, error)

	// BulkClassify classifies every transaction in a sheet and summarises confidence.
	BulkClassify(ctx context.Context, clientID, sheetID string) (*domain.ClassificationStats, error)
}

// PatternLearnerSvc derives learned patterns from manual overrides
type PatternLearnerSvc interface {
	// RetrainPatterns recomputes patterns from every recorded manual override.
	RetrainPatterns(ctx context.Context) ([]domain.LearnedPattern, error)
}

// ClassificationSvcFacade combines all classification service interfaces
type ClassificationSvcFacade interface {
	ClassificationReaderSvc
	ClassificationWriterSvc
	PatternLearnerSvc
}
