package anomaly

import (
	"fmt"
	"strings"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/utils"
)

type duplicateKey struct {
	amount string
	vendor string
	date   string
}

// detectDuplicates flags every member of each (amount, vendor, day) group larger than one.
func detectDuplicates(txns []domain.Transaction) []domain.RedFlag {
	groups := make(map[duplicateKey][]domain.Transaction)
	order := make([]duplicateKey, 0)
	for _, txn := range txns {
		key := duplicateKey{
			amount: txn.Amount.String(),
			vendor: strings.ToLower(strings.TrimSpace(txn.Vendor)),
			date:   txn.Date.Format("2006-01-02"),
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], txn)
	}

	flags := make([]domain.RedFlag, 0)
	for _, key := range order {
		group := groups[key]
		if len(group) < 2 {
			continue
		}
		ids := make([]string, 0, len(group))
		for _, txn := range group {
			ids = append(ids, txn.TransactionID)
		}
		message := fmt.Sprintf("Potential duplicate: %d transactions with same amount (%s), vendor (%s), and date (%s)",
			len(group), utils.FormatINR(group[0].Amount), key.vendor, key.date)
		for _, txn := range group {
			flags = append(flags, newFlag(txn, domain.FlagDuplicate, domain.SeverityHigh, message, map[string]any{
				"duplicate_ids": ids,
				"count":         len(group),
			}))
		}
	}
	return flags
}

func detectLargeCash(txns []domain.Transaction, th Thresholds) []domain.RedFlag {
	flags := make([]domain.RedFlag, 0)
	for _, txn := range txns {
		if !txn.IsCash() || !txn.Amount.GreaterThan(th.LargeCash) {
			continue
		}
		severity := domain.SeverityMedium
		if txn.Amount.GreaterThan(th.CashCeiling) {
			severity = domain.SeverityHigh
		}
		message := fmt.Sprintf("Large cash transaction of %s detected. Section 269ST restricts cash transactions above %s",
			utils.FormatINR(txn.Amount), utils.FormatINR(th.CashCeiling))
		flags = append(flags, newFlag(txn, domain.FlagLargeCash, severity, message, map[string]any{
			"amount": txn.Amount.String(),
			"mode":   strings.ToUpper(strings.TrimSpace(txn.PaymentMode)),
		}))
	}
	return flags
}

func detectRoundNumbers(txns []domain.Transaction, th Thresholds) []domain.RedFlag {
	flags := make([]domain.RedFlag, 0)
	for _, txn := range txns {
		if txn.Amount.LessThan(th.RoundNumberFloor) || !isRound(txn) {
			continue
		}
		message := fmt.Sprintf("Suspiciously round amount: %s. Verify if this is a genuine transaction.", utils.FormatINR(txn.Amount))
		flags = append(flags, newFlag(txn, domain.FlagRoundNumber, domain.SeverityLow, message, map[string]any{
			"amount": txn.Amount.String(),
		}))
	}
	return flags
}

func isRound(txn domain.Transaction) bool {
	for _, m := range roundNumberModuli {
		if txn.Amount.Mod(m).IsZero() {
			return true
		}
	}
	return false
}

func detectMissingInvoices(txns []domain.Transaction, th Thresholds) []domain.RedFlag {
	flags := make([]domain.RedFlag, 0)
	for _, txn := range txns {
		if !txn.IsOutgoing() || !txn.Amount.GreaterThan(th.MissingInvoice) || txn.HasInvoiceNumber() {
			continue
		}
		message := fmt.Sprintf("Expense of %s missing invoice number. Required for audit trail.", utils.FormatINR(txn.Amount))
		flags = append(flags, newFlag(txn, domain.FlagMissingInvoice, domain.SeverityMedium, message, map[string]any{
			"amount": txn.Amount.String(),
		}))
	}
	return flags
}
