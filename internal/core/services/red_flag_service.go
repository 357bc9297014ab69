package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/apperrors"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/anomaly"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	portsrepo "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/repositories"
	portssvc "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/services"
)

// redFlagService implements portssvc.RedFlagSvcFacade
type redFlagService struct {
	BaseService
	txnRepo  portsrepo.TransactionReader
	flagRepo portsrepo.RedFlagRepositoryFacade
	detector *anomaly.Detector
}

// RedFlagServiceOption is a functional option for configuring the red-flag service
type RedFlagServiceOption func(*redFlagService)

// WithDetector sets the anomaly detector. Without it every rule runs with default thresholds.
func WithDetector(detector *anomaly.Detector) RedFlagServiceOption {
	return func(s *redFlagService) {
		s.detector = detector
	}
}

// WithRedFlagClock overrides the clock used for created/resolved timestamps.
func WithRedFlagClock(now func() time.Time) RedFlagServiceOption {
	return func(s *redFlagService) {
		s.Now = now
	}
}

// NewRedFlagService creates a new red-flag service with the provided options
func NewRedFlagService(txnRepo portsrepo.TransactionReader, flagRepo portsrepo.RedFlagRepositoryFacade, options ...RedFlagServiceOption) portssvc.RedFlagSvcFacade {
	svc := &redFlagService{
		txnRepo:  txnRepo,
		flagRepo: flagRepo,
	}

	for _, option := range options {
		option(svc)
	}

	if svc.detector == nil {
		svc.detector = anomaly.NewDetector(anomaly.DefaultThresholds())
	}
	return svc
}

// Ensure redFlagService implements the RedFlagSvcFacade interface
var _ portssvc.RedFlagSvcFacade = (*redFlagService)(nil)

// ScanForRedFlags runs the detector over the scope and persists each candidate.
// Candidates that fail to persist, or that already exist for the same transaction
// and flag type, are skipped. Only the initial fetch can fail the scan.
func (s *redFlagService) ScanForRedFlags(ctx context.Context, scope domain.TransactionScope) ([]domain.RedFlag, *domain.ScanSummary, error) {
	if strings.TrimSpace(scope.ClientID) == "" {
		return nil, nil, fmt.Errorf("%w: client id is required", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.ListTransactionsByScope(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for red-flag scan",
			slog.String("client_id", scope.ClientID),
			slog.String("sheet_id", scope.SheetID))
		return nil, nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	summary := &domain.ScanSummary{ClientID: scope.ClientID, TransactionsScanned: len(txns)}
	candidates := s.detector.Detect(txns)
	created := make([]domain.RedFlag, 0, len(candidates))

	for _, flag := range candidates {
		flag.FlagID = uuid.NewString()
		flag.ClientID = scope.ClientID
		flag.CreatedAt = s.now()
		if flag.Metadata == nil {
			flag.Metadata = map[string]any{}
		}

		ok, err := s.flagRepo.CreateRedFlag(ctx, flag)
		if err != nil {
			s.LogError(ctx, err, "Failed to persist red flag, skipping",
				slog.String("transaction_id", flag.TransactionID),
				slog.String("flag_type", string(flag.FlagType)))
			summary.FlagsSkipped++
			continue
		}
		if !ok {
			s.LogDebug(ctx, "Red flag already recorded",
				slog.String("transaction_id", flag.TransactionID),
				slog.String("flag_type", string(flag.FlagType)))
			summary.FlagsSkipped++
			continue
		}
		created = append(created, flag)
	}
	summary.FlagsCreated = len(created)

	s.LogInfo(ctx, "Red-flag scan completed",
		slog.String("client_id", scope.ClientID),
		slog.String("sheet_id", scope.SheetID),
		slog.Int("transactions_scanned", summary.TransactionsScanned),
		slog.Int("candidates", len(candidates)),
		slog.Int("flags_created", summary.FlagsCreated),
		slog.Int("flags_skipped", summary.FlagsSkipped))
	return created, summary, nil
}

// ScanAllClients scans each client with live transactions in turn. A client whose scan
// fails is reported with its error and the batch moves on. progress, if set, is called
// after every client.
func (s *redFlagService) ScanAllClients(ctx context.Context, progress func(domain.ScanSummary)) ([]domain.ScanSummary, error) {
	clientIDs, err := s.txnRepo.ListClientIDs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients for batch scan")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	summaries := make([]domain.ScanSummary, 0, len(clientIDs))
	failed := 0
	for _, clientID := range clientIDs {
		if err := ctx.Err(); err != nil {
			return summaries, err
		}

		_, summary, err := s.ScanForRedFlags(ctx, domain.TransactionScope{ClientID: clientID})
		if err != nil {
			failed++
			summary = &domain.ScanSummary{ClientID: clientID, Error: err.Error()}
		}
		summaries = append(summaries, *summary)
		if progress != nil {
			progress(*summary)
		}
	}

	s.LogInfo(ctx, "Batch red-flag scan completed",
		slog.Int("clients", len(clientIDs)),
		slog.Int("failed", failed))
	return summaries, nil
}

// ListRedFlags returns a page of a client's flags, newest first.
func (s *redFlagService) ListRedFlags(ctx context.Context, clientID string, resolved *bool, limit int, nextToken *string) ([]domain.RedFlag, *string, error) {
	flags, next, err := s.flagRepo.ListRedFlags(ctx, clientID, resolved, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list red flags", slog.String("client_id", clientID))
		return nil, nil, fmt.Errorf("failed to list red flags: %w", err)
	}
	if flags == nil {
		flags = []domain.RedFlag{}
	}
	return flags, next, nil
}

// ResolveRedFlag marks a flag resolved with a note.
func (s *redFlagService) ResolveRedFlag(ctx context.Context, flagID, note string) (*domain.RedFlag, error) {
	flag, err := s.flagRepo.ResolveRedFlag(ctx, flagID, strings.TrimSpace(note), s.now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("red flag %s: %w", flagID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to resolve red flag", slog.String("flag_id", flagID))
		return nil, fmt.Errorf("failed to resolve red flag: %w", err)
	}

	s.LogInfo(ctx, "Red flag resolved", slog.String("flag_id", flagID))
	return flag, nil
}
