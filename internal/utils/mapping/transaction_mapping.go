package mapping

import (
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		ClientID:        d.ClientID,
		SheetID:         nullable(d.SheetID),
		Description:     d.Description,
		Amount:          d.Amount,
		TransactionType: string(d.Type),
		TransactionDate: d.Date,
		Vendor:          nullable(d.Vendor),
		InvoiceNumber:   d.InvoiceNumber,
		GSTIN:           d.GSTIN,
		PaymentMode:     nullable(d.PaymentMode),
		Ledger:          nullable(d.Ledger),
		DeletedAt:       d.DeletedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ClientID:      m.ClientID,
		SheetID:       deref(m.SheetID),
		Description:   m.Description,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.TransactionType),
		Date:          m.TransactionDate,
		Vendor:        deref(m.Vendor),
		InvoiceNumber: m.InvoiceNumber,
		GSTIN:         m.GSTIN,
		PaymentMode:   deref(m.PaymentMode),
		Ledger:        deref(m.Ledger),
		DeletedAt:     m.DeletedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
