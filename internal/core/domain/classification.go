package domain

import "time"

// Uncategorized is the ledger assigned when no rule matches.
const Uncategorized = "Uncategorized"

// ClassificationMethod records how a ledger was assigned.
type ClassificationMethod string

const (
	MethodRuleBased      ClassificationMethod = "rule_based"
	MethodManualOverride ClassificationMethod = "manual_override"
)

// ClassificationResult is the transient outcome of classifying one transaction.
type ClassificationResult struct {
	TransactionID    string  `json:"transactionID"`
	PredictedLedger  string  `json:"predictedLedger"`
	Confidence       float64 `json:"confidence"`
	GSTApplicable    bool    `json:"gstApplicable"`
	TDSApplicable    bool    `json:"tdsApplicable"`
	IsCapitalExpense bool    `json:"isCapitalExpense"`
	IsRecurring      bool    `json:"isRecurring"`
}

// ClassificationHistoryEntry is one row of the append-only classification audit log.
type ClassificationHistoryEntry struct {
	HistoryID        string               `json:"historyID"`
	TransactionID    string               `json:"transactionID"`
	OldLedger        *string              `json:"oldLedger,omitempty"`
	PredictedLedger  string               `json:"predictedLedger"`
	Confidence       float64              `json:"confidence"`
	Method           ClassificationMethod `json:"method"`
	Reason           *string              `json:"reason,omitempty"`
	UserID           *string              `json:"userID,omitempty"`
	GSTApplicable    bool                 `json:"gstApplicable"`
	TDSApplicable    bool                 `json:"tdsApplicable"`
	IsCapitalExpense bool                 `json:"isCapitalExpense"`
	Timestamp        time.Time            `json:"timestamp"`
}

// LearnedPattern is derived from manual overrides; it is never authoritative.
type LearnedPattern struct {
	Ledger      string  `json:"ledger"`
	SampleCount int     `json:"sampleCount"`
	Confidence  float64 `json:"confidence"`
}

// LedgerSuggestion is one ranked candidate ledger for a transaction.
type LedgerSuggestion struct {
	Ledger          string   `json:"ledger"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matchedKeywords"`
}

// ClassificationStats summarises a bulk classification run.
type ClassificationStats struct {
	Total                    int     `json:"total"`
	HighConfidence           int     `json:"highConfidence"`
	LowConfidence            int     `json:"lowConfidence"`
	Uncategorized            int     `json:"uncategorized"`
	HighConfidencePercentage float64 `json:"highConfidencePercentage"`
	LowConfidencePercentage  float64 `json:"lowConfidencePercentage"`
	UncategorizedPercentage  float64 `json:"uncategorizedPercentage"`
}

// LedgerStatistics describes how a client's transactions are spread across ledgers.
type LedgerStatistics struct {
	Total                   int            `json:"total"`
	ByLedger                map[string]int `json:"byLedger"`
	UncategorizedCount      int            `json:"uncategorizedCount"`
	UncategorizedPercentage float64        `json:"uncategorizedPercentage"`
	UniqueLedgers           int            `json:"uniqueLedgers"`
}
