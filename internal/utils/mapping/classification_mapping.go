package mapping

import (
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/models"
)

// ToModelClassificationHistory converts a domain history entry to its row form
func ToModelClassificationHistory(d domain.ClassificationHistoryEntry) models.ClassificationHistory {
	return models.ClassificationHistory{
		HistoryID:        d.HistoryID,
		TransactionID:    d.TransactionID,
		OldLedger:        d.OldLedger,
		PredictedLedger:  d.PredictedLedger,
		Confidence:       d.Confidence,
		Method:           string(d.Method),
		Reason:           d.Reason,
		UserID:           d.UserID,
		GSTApplicable:    d.GSTApplicable,
		TDSApplicable:    d.TDSApplicable,
		IsCapitalExpense: d.IsCapitalExpense,
		CreatedAt:        d.Timestamp,
	}
}

// ToDomainClassificationHistory converts a history row to a domain entry
func ToDomainClassificationHistory(m models.ClassificationHistory) domain.ClassificationHistoryEntry {
	return domain.ClassificationHistoryEntry{
		HistoryID:        m.HistoryID,
		TransactionID:    m.TransactionID,
		OldLedger:        m.OldLedger,
		PredictedLedger:  m.PredictedLedger,
		Confidence:       m.Confidence,
		Method:           domain.ClassificationMethod(m.Method),
		Reason:           m.Reason,
		UserID:           m.UserID,
		GSTApplicable:    m.GSTApplicable,
		TDSApplicable:    m.TDSApplicable,
		IsCapitalExpense: m.IsCapitalExpense,
		Timestamp:        m.CreatedAt,
	}
}

// ToDomainClassificationHistorySlice converts a slice of history rows
func ToDomainClassificationHistorySlice(ms []models.ClassificationHistory) []domain.ClassificationHistoryEntry {
	ds := make([]domain.ClassificationHistoryEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClassificationHistory(m)
	}
	return ds
}
