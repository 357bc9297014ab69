package services

import (
	"context"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

// RedFlagScannerSvc runs the anomaly detector and persists what it finds
type RedFlagScannerSvc interface {
	// ScanForRedFlags scans a client's transactions (optionally one sheet) and returns the flags written.
	ScanForRedFlags(ctx context.Context, scope domain.TransactionScope) ([]domain.RedFlag, *domain.ScanSummary, error)

	// ScanAllClients scans every client that has transactions. A failing client does not stop the batch.
	ScanAllClients(ctx context.Context, progress func(domain.ScanSummary)) ([]domain.ScanSummary, error)
}

// RedFlagReviewSvc defines listing and resolution of red flags
type RedFlagReviewSvc interface {
	// ListRedFlags returns a page of a client's flags and the token for the next page.
	ListRedFlags(ctx context.Context, clientID string, resolved *bool, limit int, nextToken *string) ([]domain.RedFlag, *string, error)

	// ResolveRedFlag marks a flag resolved with a note. Returns apperrors.ErrNotFound if absent.
	ResolveRedFlag(ctx context.Context, flagID, note string) (*domain.RedFlag, error)
}

// RedFlagSvcFacade combines all red-flag service interfaces
type RedFlagSvcFacade interface {
	RedFlagScannerSvc
	RedFlagReviewSvc
}
