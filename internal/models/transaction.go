package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Nullable columns are pointers.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`   // Primary Key (UUID)
	ClientID        string          `db:"client_id"`        // Not Null
	SheetID         *string         `db:"sheet_id"`         // Source sheet, nullable for manual entries
	Description     string          `db:"description"`      // Free text from the bank statement
	Amount          decimal.Decimal `db:"amount"`           // Positive value
	TransactionType string          `db:"transaction_type"` // debit, credit or a legacy value
	TransactionDate time.Time       `db:"transaction_date"`
	Vendor          *string         `db:"vendor"`
	InvoiceNumber   *string         `db:"invoice_number"`
	GSTIN           *string         `db:"gstin"`
	PaymentMode     *string         `db:"payment_mode"`
	Ledger          *string         `db:"ledger"` // Only column this service writes
	DeletedAt       *time.Time      `db:"deleted_at"`
	AuditFields
}
