package domain

import "time"

// FlagType names the anomaly a red flag reports.
type FlagType string

const (
	FlagDuplicate              FlagType = "duplicate"
	FlagLargeCash              FlagType = "large_cash"
	FlagRoundNumber            FlagType = "round_number"
	FlagMissingInvoice         FlagType = "missing_invoice"
	FlagSuspiciousVendorName   FlagType = "suspicious_vendor_name"
	FlagMissingGSTIN           FlagType = "missing_gstin"
	FlagOneTimeVendor          FlagType = "one_time_vendor"
	FlagMissingInvoiceSequence FlagType = "missing_invoice_sequence"
)

// Severity ranks how urgently a red flag needs review.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RedFlag is a persisted record of one suspected anomaly tied to a transaction.
type RedFlag struct {
	FlagID         string         `json:"flagID"`
	ClientID       string         `json:"clientID"`
	TransactionID  string         `json:"transactionID"`
	FlagType       FlagType       `json:"flagType"`
	Severity       Severity       `json:"severity"`
	Message        string         `json:"message"`
	Metadata       map[string]any `json:"metadata"`
	Resolved       bool           `json:"resolved"`
	ResolutionNote *string        `json:"resolutionNote,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	ResolvedAt     *time.Time     `json:"resolvedAt,omitempty"`
}

// ScanSummary reports the outcome of scanning one client.
type ScanSummary struct {
	ClientID            string `json:"clientID"`
	TransactionsScanned int    `json:"transactionsScanned"`
	FlagsCreated        int    `json:"flagsCreated"`
	FlagsSkipped        int    `json:"flagsSkipped"`
	Error               string `json:"error,omitempty"`
}
