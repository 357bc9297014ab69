package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/apperrors"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	portsrepo "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/repositories"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/models"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/utils/mapping"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/utils/pagination"
)

const redFlagColumns = `
		flag_id, client_id, transaction_id, flag_type, severity, message, metadata,
		resolved, resolution_note, created_at, resolved_at`

type PgxRedFlagRepository struct {
	BaseRepository
}

func newPgxRedFlagRepository(pool *pgxpool.Pool) portsrepo.RedFlagRepositoryWithTx {
	return &PgxRedFlagRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxRedFlagRepository implements portsrepo.RedFlagRepositoryWithTx
var _ portsrepo.RedFlagRepositoryWithTx = (*PgxRedFlagRepository)(nil)

func scanRedFlag(row pgx.Row) (models.RedFlag, error) {
	var m models.RedFlag
	err := row.Scan(
		&m.FlagID,
		&m.ClientID,
		&m.TransactionID,
		&m.FlagType,
		&m.Severity,
		&m.Message,
		&m.Metadata,
		&m.Resolved,
		&m.ResolutionNote,
		&m.CreatedAt,
		&m.ResolvedAt,
	)
	return m, err
}

// CreateRedFlag inserts a flag unless one already exists for the same transaction and
// flag type. created is false when the insert was skipped for that reason.
func (r *PgxRedFlagRepository) CreateRedFlag(ctx context.Context, flag domain.RedFlag) (bool, error) {
	m, err := mapping.ToModelRedFlag(flag)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to encode red flag", err)
	}

	query := `
		INSERT INTO red_flags (` + redFlagColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (transaction_id, flag_type) DO NOTHING
		RETURNING flag_id;
	`
	var insertedID string
	err = r.Pool.QueryRow(ctx, query,
		m.FlagID,
		m.ClientID,
		m.TransactionID,
		m.FlagType,
		m.Severity,
		m.Message,
		m.Metadata,
		m.Resolved,
		m.ResolutionNote,
		m.CreatedAt,
		m.ResolvedAt,
	).Scan(&insertedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.NewAppError(500, "failed to insert red flag for transaction "+m.TransactionID, err)
	}
	return true, nil
}

// FindRedFlagByID retrieves a flag by its ID.
func (r *PgxRedFlagRepository) FindRedFlagByID(ctx context.Context, flagID string) (*domain.RedFlag, error) {
	query := `SELECT` + redFlagColumns + ` FROM red_flags WHERE flag_id = $1;`
	return r.findOne(r.Pool.QueryRow(ctx, query, flagID), flagID)
}

func (r *PgxRedFlagRepository) findOne(row pgx.Row, flagID string) (*domain.RedFlag, error) {
	m, err := scanRedFlag(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find red flag by ID %s: %w", flagID, err)
	}
	d, err := mapping.ToDomainRedFlag(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode red flag "+flagID, err)
	}
	return &d, nil
}

// ListRedFlags retrieves a client's flags newest first using token-based pagination.
// resolved, when set, filters on the resolved state. limit <= 0 returns every flag.
func (r *PgxRedFlagRepository) ListRedFlags(ctx context.Context, clientID string, resolved *bool, limit int, nextToken *string) ([]domain.RedFlag, *string, error) {
	query := `SELECT` + redFlagColumns + ` FROM red_flags WHERE client_id = $1`
	args := []interface{}{clientID}

	if resolved != nil {
		args = append(args, *resolved)
		query += ` AND resolved = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt, lastID)
		// Tuple comparison keeps the cursor stable when created_at ties
		query += ` AND (created_at, flag_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	query += ` ORDER BY created_at DESC, flag_id DESC`
	if limit > 0 {
		// We fetch one extra item to determine if there's a next page.
		args = append(args, limit+1)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.Pool.Query(ctx, query+";", args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query red flags for client "+clientID, err)
	}
	defer rows.Close()

	modelFlags := make([]models.RedFlag, 0)
	for rows.Next() {
		m, scanErr := scanRedFlag(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan red flag row for client "+clientID, scanErr)
		}
		modelFlags = append(modelFlags, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating red flag rows for client "+clientID, err)
	}

	var nextTokenVal *string
	if limit > 0 && len(modelFlags) > limit {
		last := modelFlags[limit-1] // The last item of the current page
		token := pagination.EncodeToken(last.CreatedAt, last.FlagID)
		nextTokenVal = &token
		modelFlags = modelFlags[:limit]
	}

	flags := make([]domain.RedFlag, 0, len(modelFlags))
	for _, m := range modelFlags {
		d, err := mapping.ToDomainRedFlag(m)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to decode red flag "+m.FlagID, err)
		}
		flags = append(flags, d)
	}
	return flags, nextTokenVal, nil
}

// ResolveRedFlag locks the flag row, marks it resolved and returns the updated flag.
// Resolving an already resolved flag replaces its note and timestamp.
func (r *PgxRedFlagRepository) ResolveRedFlag(ctx context.Context, flagID string, note string, resolvedAt time.Time) (*domain.RedFlag, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT flag_id FROM red_flags WHERE flag_id = $1 FOR UPDATE;`
	var lockedID string
	if err := tx.QueryRow(ctx, lockQuery, flagID).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock red flag "+flagID, err)
	}

	updateQuery := `
		UPDATE red_flags
		SET resolved = TRUE, resolution_note = $2, resolved_at = $3
		WHERE flag_id = $1
		RETURNING` + redFlagColumns + `;`
	flag, err := r.findOne(tx.QueryRow(ctx, updateQuery, flagID, note, resolvedAt), flagID)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return flag, nil
}
