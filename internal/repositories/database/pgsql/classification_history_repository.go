package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/apperrors"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	portsrepo "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/repositories"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/models"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/utils/mapping"
)

const historyColumns = `
		history_id, transaction_id, old_ledger, predicted_ledger, confidence, method,
		reason, user_id, gst_applicable, tds_applicable, is_capital_expense, created_at`

type PgxClassificationHistoryRepository struct {
	BaseRepository
}

func newPgxClassificationHistoryRepository(pool *pgxpool.Pool) portsrepo.ClassificationHistoryRepository {
	return &PgxClassificationHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClassificationHistoryRepository = (*PgxClassificationHistoryRepository)(nil)

// AppendHistory inserts one audit entry.
func (r *PgxClassificationHistoryRepository) AppendHistory(ctx context.Context, entry domain.ClassificationHistoryEntry) error {
	m := mapping.ToModelClassificationHistory(entry)
	query := `
		INSERT INTO classification_history (` + historyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.HistoryID,
		m.TransactionID,
		m.OldLedger,
		m.PredictedLedger,
		m.Confidence,
		m.Method,
		m.Reason,
		m.UserID,
		m.GSTApplicable,
		m.TDSApplicable,
		m.IsCapitalExpense,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert classification history for transaction "+m.TransactionID, err)
	}
	return nil
}

// ListHistoryByTransaction returns a transaction's entries, newest first.
func (r *PgxClassificationHistoryRepository) ListHistoryByTransaction(ctx context.Context, transactionID string) ([]domain.ClassificationHistoryEntry, error) {
	query := `SELECT` + historyColumns + `
		FROM classification_history
		WHERE transaction_id = $1
		ORDER BY created_at DESC, history_id DESC;`
	return r.list(ctx, "for transaction "+transactionID, query, transactionID)
}

// ListHistoryByMethod returns every entry of one method, oldest first.
func (r *PgxClassificationHistoryRepository) ListHistoryByMethod(ctx context.Context, method domain.ClassificationMethod) ([]domain.ClassificationHistoryEntry, error) {
	query := `SELECT` + historyColumns + `
		FROM classification_history
		WHERE method = $1
		ORDER BY created_at, history_id;`
	return r.list(ctx, "for method "+string(method), query, string(method))
}

func (r *PgxClassificationHistoryRepository) list(ctx context.Context, what, query string, args ...interface{}) ([]domain.ClassificationHistoryEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query classification history "+what, err)
	}
	defer rows.Close()

	entries := []models.ClassificationHistory{}
	for rows.Next() {
		m, err := scanHistory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan classification history "+what, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating classification history "+what, err)
	}
	return mapping.ToDomainClassificationHistorySlice(entries), nil
}

func scanHistory(row pgx.Row) (models.ClassificationHistory, error) {
	var m models.ClassificationHistory
	err := row.Scan(
		&m.HistoryID,
		&m.TransactionID,
		&m.OldLedger,
		&m.PredictedLedger,
		&m.Confidence,
		&m.Method,
		&m.Reason,
		&m.UserID,
		&m.GSTApplicable,
		&m.TDSApplicable,
		&m.IsCapitalExpense,
		&m.CreatedAt,
	)
	return m, err
}
