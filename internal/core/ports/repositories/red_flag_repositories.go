package repositories

import (
	"context"
	"time"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

// RedFlagReader defines read operations for red flags
type RedFlagReader interface {
	// FindRedFlagByID retrieves one flag. Returns apperrors.ErrNotFound if absent.
	FindRedFlagByID(ctx context.Context, flagID string) (*domain.RedFlag, error)

	// ListRedFlags retrieves a client's flags newest first using token-based pagination.
	// A nil resolved returns both states. limit <= 0 returns every remaining flag.
	// It returns the flags, a token for the next page, and an error.
	ListRedFlags(ctx context.Context, clientID string, resolved *bool, limit int, nextToken *string) ([]domain.RedFlag, *string, error)
}

// RedFlagWriter defines write operations for red flags
type RedFlagWriter interface {
	// CreateRedFlag inserts a flag unless one already exists for the same
	// (transaction, flag type). created is false when the insert was skipped.
	CreateRedFlag(ctx context.Context, flag domain.RedFlag) (created bool, err error)

	// ResolveRedFlag marks a flag resolved and returns the updated row.
	// Returns apperrors.ErrNotFound if absent.
	ResolveRedFlag(ctx context.Context, flagID string, note string, resolvedAt time.Time) (*domain.RedFlag, error)
}

// RedFlagRepositoryFacade combines all red-flag repository interfaces
type RedFlagRepositoryFacade interface {
	RedFlagReader
	RedFlagWriter
}

// RedFlagRepositoryWithTx extends RedFlagRepositoryFacade with transaction capabilities
type RedFlagRepositoryWithTx interface {
	RedFlagRepositoryFacade
	TransactionManager
}
