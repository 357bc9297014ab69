package models

import "time"

// ClassificationHistory is a row of the append-only classification_history table.
type ClassificationHistory struct {
	HistoryID        string    `db:"history_id"`
	TransactionID    string    `db:"transaction_id"`
	OldLedger        *string   `db:"old_ledger"`
	PredictedLedger  string    `db:"predicted_ledger"`
	Confidence       float64   `db:"confidence"`
	Method           string    `db:"method"`
	Reason           *string   `db:"reason"`
	UserID           *string   `db:"user_id"`
	GSTApplicable    bool      `db:"gst_applicable"`
	TDSApplicable    bool      `db:"tds_applicable"`
	IsCapitalExpense bool      `db:"is_capital_expense"`
	CreatedAt        time.Time `db:"created_at"`
}
