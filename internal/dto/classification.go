package dto

import (
	"time"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

// ClassifyTransactionsRequest lists the transactions to classify. An empty list is allowed.
type ClassifyTransactionsRequest struct {
	TransactionIDs []string `json:"transactionIDs" binding:"required,max=1000,dive,notblank"`
}

// OverrideClassificationRequest sets a ledger by hand.
type OverrideClassificationRequest struct {
	NewLedger string `json:"newLedger" binding:"required,notblank,max=100"`
	Reason    string `json:"reason" binding:"required,notblank,max=500"`
}

// BulkClassifyRequest names the sheet to classify.
type BulkClassifyRequest struct {
	ClientID string `json:"clientID" binding:"required,notblank"`
	SheetID  string `json:"sheetID" binding:"required,notblank"`
}

// SuggestionsParams holds query parameters for ledger suggestions.
type SuggestionsParams struct {
	TopN int `form:"topN" binding:"omitempty,min=1,max=20"`
}

// StatisticsParams holds query parameters for ledger statistics. Dates are inclusive.
type StatisticsParams struct {
	ClientID string     `form:"clientID" binding:"required,notblank"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
}

// ClassificationResponse is the outcome of classifying one transaction.
type ClassificationResponse struct {
	TransactionID    string  `json:"transactionID"`
	PredictedLedger  string  `json:"predictedLedger"`
	Confidence       float64 `json:"confidence"`
	GSTApplicable    bool    `json:"gstApplicable"`
	TDSApplicable    bool    `json:"tdsApplicable"`
	IsCapitalExpense bool    `json:"isCapitalExpense"`
	IsRecurring      bool    `json:"isRecurring"`
}

// ClassifyTransactionsResponse wraps a batch of classification results.
type ClassifyTransactionsResponse struct {
	Results []ClassificationResponse `json:"results"`
	Count   int                      `json:"count"`
}

// HistoryEntryResponse is one audit-log entry.
type HistoryEntryResponse struct {
	HistoryID       string    `json:"historyID"`
	OldLedger       *string   `json:"oldLedger,omitempty"`
	PredictedLedger string    `json:"predictedLedger"`
	Confidence      float64   `json:"confidence"`
	Method          string    `json:"method"`
	Reason          *string   `json:"reason,omitempty"`
	UserID          *string   `json:"userID,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// ClassificationHistoryResponse lists a transaction's audit log, newest first.
type ClassificationHistoryResponse struct {
	TransactionID string                 `json:"transactionID"`
	History       []HistoryEntryResponse `json:"history"`
}

// SuggestionsResponse lists ranked candidate ledgers.
type SuggestionsResponse struct {
	TransactionID string                    `json:"transactionID"`
	Suggestions   []domain.LedgerSuggestion `json:"suggestions"`
}

// PatternsResponse lists learned patterns.
type PatternsResponse struct {
	Patterns []domain.LearnedPattern `json:"patterns"`
}

// ToClassificationResponse converts a domain result to its response form.
func ToClassificationResponse(r domain.ClassificationResult) ClassificationResponse {
	return ClassificationResponse{
		TransactionID:    r.TransactionID,
		PredictedLedger:  r.PredictedLedger,
		Confidence:       r.Confidence,
		GSTApplicable:    r.GSTApplicable,
		TDSApplicable:    r.TDSApplicable,
		IsCapitalExpense: r.IsCapitalExpense,
		IsRecurring:      r.IsRecurring,
	}
}

// ToClassifyTransactionsResponse converts a slice of results.
func ToClassifyTransactionsResponse(results []domain.ClassificationResult) ClassifyTransactionsResponse {
	responses := make([]ClassificationResponse, len(results))
	for i, r := range results {
		responses[i] = ToClassificationResponse(r)
	}
	return ClassifyTransactionsResponse{Results: responses, Count: len(responses)}
}

// ToClassificationHistoryResponse converts a transaction's history entries.
func ToClassificationHistoryResponse(transactionID string, entries []domain.ClassificationHistoryEntry) ClassificationHistoryResponse {
	history := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		history[i] = HistoryEntryResponse{
			HistoryID:       e.HistoryID,
			OldLedger:       e.OldLedger,
			PredictedLedger: e.PredictedLedger,
			Confidence:      e.Confidence,
			Method:          string(e.Method),
			Reason:          e.Reason,
			UserID:          e.UserID,
			Timestamp:       e.Timestamp,
		}
	}
	return ClassificationHistoryResponse{TransactionID: transactionID, History: history}
}
