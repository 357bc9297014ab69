package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/apperrors"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	portsrepo "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/repositories"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/models"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/utils/mapping"
)

const transactionColumns = `
		transaction_id, client_id, sheet_id, description, amount, transaction_type, transaction_date,
		vendor, invoice_number, gstin, payment_mode, ledger, deleted_at,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a repository over the ingestion-owned transactions table.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.ClientID,
		&t.SheetID,
		&t.Description,
		&t.Amount,
		&t.TransactionType,
		&t.TransactionDate,
		&t.Vendor,
		&t.InvoiceNumber,
		&t.GSTIN,
		&t.PaymentMode,
		&t.Ledger,
		&t.DeletedAt,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, what string, query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions "+what, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row "+what, err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows "+what, err)
	}
	return transactions, nil
}

// FindTransactionsByIDs returns the live transactions among ids, in the order the ids were given.
// Unknown and soft-deleted ids are dropped.
func (r *PgxTransactionRepository) FindTransactionsByIDs(ctx context.Context, ids []string) ([]domain.Transaction, error) {
	if len(ids) == 0 {
		return []domain.Transaction{}, nil
	}

	query := `SELECT` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = ANY($1) AND deleted_at IS NULL;`
	found, err := r.queryTransactions(ctx, "by ids", query, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Transaction, len(found))
	for _, t := range found {
		byID[t.TransactionID] = t
	}
	ordered := make([]domain.Transaction, 0, len(found))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, mapping.ToDomainTransaction(t))
			delete(byID, id) // a repeated id yields one result
		}
	}
	return ordered, nil
}

// FindTransactionByID retrieves one live transaction.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND deleted_at IS NULL;`

	t, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(t)
	return &d, nil
}

// ListTransactionsByScope returns a client's live transactions, optionally narrowed to a sheet
// and an inclusive date range, ordered by date and id.
func (r *PgxTransactionRepository) ListTransactionsByScope(ctx context.Context, scope domain.TransactionScope) ([]domain.Transaction, error) {
	query, args := scopeQuery(scope)
	found, err := r.queryTransactions(ctx, "for client "+scope.ClientID, query, args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(found), nil
}

func scopeQuery(scope domain.TransactionScope) (string, []interface{}) {
	conditions := []string{"client_id = $1", "deleted_at IS NULL"}
	args := []interface{}{scope.ClientID}

	if scope.SheetID != "" {
		args = append(args, scope.SheetID)
		conditions = append(conditions, "sheet_id = $"+strconv.Itoa(len(args)))
	}
	if scope.From != nil {
		args = append(args, *scope.From)
		conditions = append(conditions, "transaction_date >= $"+strconv.Itoa(len(args)))
	}
	if scope.To != nil {
		args = append(args, *scope.To)
		conditions = append(conditions, "transaction_date <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT` + transactionColumns + `
		FROM transactions
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY transaction_date, transaction_id;`
	return query, args
}

// ListClientIDs returns every client that owns at least one live transaction.
func (r *PgxTransactionRepository) ListClientIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT client_id
		FROM transactions
		WHERE deleted_at IS NULL
		ORDER BY client_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query client ids", err)
	}
	defer rows.Close()

	clientIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan client id", err)
		}
		clientIDs = append(clientIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating client ids", err)
	}
	return clientIDs, nil
}

// UpdateTransactionLedger writes the ledger column of a live transaction.
func (r *PgxTransactionRepository) UpdateTransactionLedger(ctx context.Context, transactionID string, ledger string) error {
	query := `
		UPDATE transactions
		SET ledger = $2
		WHERE transaction_id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, ledger)
	if err != nil {
		return fmt.Errorf("failed to update ledger for transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
