package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of money for a transaction.
type TransactionType string

const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"

	// Legacy ingestion values that also denote outgoing money.
	Expense  TransactionType = "expense"
	Purchase TransactionType = "purchase"
)

// PaymentModeCash is the payment mode checked by the large-cash detector.
const PaymentModeCash = "CASH"

// Transaction is a financial record owned by the ingestion subsystem.
// This core only reads it and writes the Ledger field.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	ClientID      string          `json:"clientID"`
	SheetID       string          `json:"sheetID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`
	Vendor        string          `json:"vendor"`
	InvoiceNumber *string         `json:"invoiceNumber,omitempty"`
	GSTIN         *string         `json:"gstin,omitempty"`
	PaymentMode   string          `json:"paymentMode"`
	Ledger        string          `json:"ledger"`
	DeletedAt     *time.Time      `json:"deletedAt,omitempty"` // Used for soft delete
	AuditFields
}

// IsOutgoing reports whether the transaction moves money out (a debit/expense).
func (t Transaction) IsOutgoing() bool {
	switch TransactionType(strings.ToLower(strings.TrimSpace(string(t.Type)))) {
	case Debit, Expense, Purchase:
		return true
	}
	return false
}

// IsCash reports whether the payment mode is cash, ignoring case.
func (t Transaction) IsCash() bool {
	return strings.ToUpper(strings.TrimSpace(t.PaymentMode)) == PaymentModeCash
}

// HasInvoiceNumber reports whether a non-blank invoice number is present.
func (t Transaction) HasInvoiceNumber() bool {
	return t.InvoiceNumber != nil && strings.TrimSpace(*t.InvoiceNumber) != ""
}

// HasGSTIN reports whether a non-blank GSTIN is present.
func (t Transaction) HasGSTIN() bool {
	return t.GSTIN != nil && strings.TrimSpace(*t.GSTIN) != ""
}

// TransactionScope narrows a transaction fetch to a client and optionally a sheet.
type TransactionScope struct {
	ClientID string
	SheetID  string // Empty means every sheet of the client
	From     *time.Time
	To       *time.Time
}
