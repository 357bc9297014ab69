package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/apperrors"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	portsrepo "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/repositories"
	portssvc "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/services"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/rules"
)

const (
	// Results at or above this confidence count as high confidence in bulk stats.
	highConfidenceThreshold = 0.75
	overrideConfidence      = 1.0
)

// classificationService implements portssvc.ClassificationSvcFacade
type classificationService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	historyRepo portsrepo.ClassificationHistoryRepository
	classifier  *rules.Classifier
}

// ClassificationServiceOption is a functional option for configuring the classification service
type ClassificationServiceOption func(*classificationService)

// WithClassifier sets the rule classifier. Without it the built-in rule table is used.
func WithClassifier(classifier *rules.Classifier) ClassificationServiceOption {
	return func(s *classificationService) {
		s.classifier = classifier
	}
}

// WithClassificationClock overrides the clock used for history timestamps.
func WithClassificationClock(now func() time.Time) ClassificationServiceOption {
	return func(s *classificationService) {
		s.Now = now
	}
}

// NewClassificationService creates a new classification service with the provided options
func NewClassificationService(txnRepo portsrepo.TransactionRepositoryFacade, historyRepo portsrepo.ClassificationHistoryRepository, options ...ClassificationServiceOption) portssvc.ClassificationSvcFacade {
	svc := &classificationService{
		txnRepo:     txnRepo,
		historyRepo: historyRepo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	if svc.classifier == nil {
		svc.classifier = rules.NewClassifier(nil)
	}
	return svc
}

// Ensure classificationService implements the ClassificationSvcFacade interface
var _ portssvc.ClassificationSvcFacade = (*classificationService)(nil)

// ClassifyTransactions classifies each transaction found among ids and writes the predicted ledger back.
// A failed ledger write skips that transaction; a failed history append is logged and ignored.
func (s *classificationService) ClassifyTransactions(ctx context.Context, transactionIDs []string) ([]domain.ClassificationResult, error) {
	results := make([]domain.ClassificationResult, 0, len(transactionIDs))
	if len(transactionIDs) == 0 {
		return results, nil
	}

	txns, err := s.txnRepo.FindTransactionsByIDs(ctx, transactionIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for classification", slog.Int("requested", len(transactionIDs)))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	for _, txn := range txns {
		if result, ok := s.classifyOne(ctx, txn); ok {
			results = append(results, result)
		}
	}

	s.LogInfo(ctx, "Transactions classified",
		slog.Int("requested", len(transactionIDs)),
		slog.Int("found", len(txns)),
		slog.Int("classified", len(results)))
	return results, nil
}

func (s *classificationService) classifyOne(ctx context.Context, txn domain.Transaction) (domain.ClassificationResult, bool) {
	result := s.classifier.Evaluate(txn)

	if err := s.txnRepo.UpdateTransactionLedger(ctx, txn.TransactionID, result.PredictedLedger); err != nil {
		s.LogError(ctx, err, "Failed to write predicted ledger, skipping transaction",
			slog.String("transaction_id", txn.TransactionID))
		return domain.ClassificationResult{}, false
	}

	entry := s.newHistoryEntry(txn, result, domain.MethodRuleBased)
	if txn.Ledger != "" {
		old := txn.Ledger
		entry.OldLedger = &old
	}
	s.appendHistory(ctx, entry)
	return result, true
}

// OverrideClassification sets the ledger unconditionally and records a manual override.
// Compliance flags in the result come from the transaction itself, not the new ledger.
func (s *classificationService) OverrideClassification(ctx context.Context, transactionID, newLedger, reason string, userID *string) (*domain.ClassificationResult, error) {
	newLedger = strings.TrimSpace(newLedger)
	reason = strings.TrimSpace(reason)
	if newLedger == "" {
		return nil, fmt.Errorf("%w: new ledger is required", apperrors.ErrValidation)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: a reason is required for a manual override", apperrors.ErrValidation)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Transaction not found for override", slog.String("transaction_id", transactionID))
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to fetch transaction for override", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}

	oldLedger := txn.Ledger
	if oldLedger == "" {
		oldLedger = domain.Uncategorized
	}

	if err := s.txnRepo.UpdateTransactionLedger(ctx, transactionID, newLedger); err != nil {
		s.LogError(ctx, err, "Failed to write overridden ledger", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update ledger: %w", err)
	}

	result := s.classifier.Flags(*txn)
	result.PredictedLedger = newLedger
	result.Confidence = overrideConfidence

	entry := s.newHistoryEntry(*txn, result, domain.MethodManualOverride)
	entry.OldLedger = &oldLedger
	entry.Reason = &reason
	entry.UserID = userID
	s.appendHistory(ctx, entry)

	s.LogInfo(ctx, "Classification overridden",
		slog.String("transaction_id", transactionID),
		slog.String("old_ledger", oldLedger),
		slog.String("new_ledger", newLedger))
	return &result, nil
}

func (s *classificationService) newHistoryEntry(txn domain.Transaction, result domain.ClassificationResult, method domain.ClassificationMethod) domain.ClassificationHistoryEntry {
	return domain.ClassificationHistoryEntry{
		HistoryID:        uuid.NewString(),
		TransactionID:    txn.TransactionID,
		PredictedLedger:  result.PredictedLedger,
		Confidence:       result.Confidence,
		Method:           method,
		GSTApplicable:    result.GSTApplicable,
		TDSApplicable:    result.TDSApplicable,
		IsCapitalExpense: result.IsCapitalExpense,
		Timestamp:        s.now(),
	}
}

func (s *classificationService) appendHistory(ctx context.Context, entry domain.ClassificationHistoryEntry) {
	if err := s.historyRepo.AppendHistory(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append classification history",
			slog.String("transaction_id", entry.TransactionID),
			slog.String("method", string(entry.Method)))
	}
}

// GetClassificationHistory returns a transaction's audit log, newest first.
func (s *classificationService) GetClassificationHistory(ctx context.Context, transactionID string) ([]domain.ClassificationHistoryEntry, error) {
	entries, err := s.historyRepo.ListHistoryByTransaction(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list classification history", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to list classification history: %w", err)
	}
	if entries == nil {
		entries = []domain.ClassificationHistoryEntry{}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

// BulkClassify classifies every live transaction of a sheet and summarises the confidence spread.
func (s *classificationService) BulkClassify(ctx context.Context, clientID, sheetID string) (*domain.ClassificationStats, error) {
	txns, err := s.txnRepo.ListTransactionsByScope(ctx, domain.TransactionScope{ClientID: clientID, SheetID: sheetID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list sheet transactions",
			slog.String("client_id", clientID),
			slog.String("sheet_id", sheetID))
		return nil, fmt.Errorf("failed to list sheet transactions: %w", err)
	}

	results := make([]domain.ClassificationResult, 0, len(txns))
	for _, txn := range txns {
		if result, ok := s.classifyOne(ctx, txn); ok {
			results = append(results, result)
		}
	}

	stats := SummarizeClassifications(results)
	s.LogInfo(ctx, "Bulk classification completed",
		slog.String("client_id", clientID),
		slog.String("sheet_id", sheetID),
		slog.Int("total", stats.Total),
		slog.Int("uncategorized", stats.Uncategorized))
	return &stats, nil
}

// SummarizeClassifications buckets results by confidence. An empty input yields all zeros.
func SummarizeClassifications(results []domain.ClassificationResult) domain.ClassificationStats {
	stats := domain.ClassificationStats{Total: len(results)}
	for _, r := range results {
		switch {
		case r.PredictedLedger == domain.Uncategorized:
			stats.Uncategorized++
		case r.Confidence >= highConfidenceThreshold:
			stats.HighConfidence++
		case r.Confidence > 0:
			stats.LowConfidence++
		}
	}
	stats.HighConfidencePercentage = percentage(stats.HighConfidence, stats.Total)
	stats.LowConfidencePercentage = percentage(stats.LowConfidence, stats.Total)
	stats.UncategorizedPercentage = percentage(stats.Uncategorized, stats.Total)
	return stats
}

// RetrainPatterns recomputes learned patterns from every manual override on record, sorted by ledger.
func (s *classificationService) RetrainPatterns(ctx context.Context) ([]domain.LearnedPattern, error) {
	overrides, err := s.historyRepo.ListHistoryByMethod(ctx, domain.MethodManualOverride)
	if err != nil {
		s.LogError(ctx, err, "Failed to load manual overrides")
		return nil, fmt.Errorf("failed to load manual overrides: %w", err)
	}

	patterns := rules.LearnPatterns(overrides)
	sort.Slice(patterns, func(i, j int) bool { return patterns[i].Ledger < patterns[j].Ledger })

	s.LogInfo(ctx, "Patterns retrained",
		slog.Int("overrides", len(overrides)),
		slog.Int("patterns", len(patterns)))
	return patterns, nil
}

// GetSuggestions ranks candidate ledgers for one transaction.
func (s *classificationService) GetSuggestions(ctx context.Context, transactionID string, topN int) ([]domain.LedgerSuggestion, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to fetch transaction for suggestions", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return s.classifier.Suggest(*txn, topN), nil
}

// GetStatistics counts a client's live transactions per ledger. An empty ledger counts as Uncategorized.
func (s *classificationService) GetStatistics(ctx context.Context, clientID string, from, to *time.Time) (*domain.LedgerStatistics, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.ListTransactionsByScope(ctx, domain.TransactionScope{ClientID: clientID, From: from, To: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to list client transactions", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list client transactions: %w", err)
	}

	stats := &domain.LedgerStatistics{
		Total:    len(txns),
		ByLedger: make(map[string]int),
	}
	for _, txn := range txns {
		ledger := txn.Ledger
		if ledger == "" {
			ledger = domain.Uncategorized
		}
		if ledger == domain.Uncategorized {
			stats.UncategorizedCount++
		}
		stats.ByLedger[ledger]++
	}
	stats.UncategorizedPercentage = percentage(stats.UncategorizedCount, stats.Total)
	stats.UniqueLedgers = len(stats.ByLedger)
	return stats, nil
}

// percentage returns part/total*100 rounded to two places, or 0 when total is 0.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*100*100) / 100
}
