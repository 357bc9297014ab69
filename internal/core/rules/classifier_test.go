package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func txn(description string, amount int64, txnType domain.TransactionType) domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-1",
		Description:   description,
		Amount:        decimal.NewFromInt(amount),
		Type:          txnType,
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "rent  q12024", Normalize("Rent - Q1/2024!"))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "ca fees", Normalize("C.A. Fees"))
}

func TestClassify(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name        string
		description string
		ledger      string
		ok          bool
		confidence  float64
	}{
		{"single keyword", "Office rent for March", "Rent Expense", true, 0.75},
		{"multiple keywords", "Office rental lease", "Rent Expense", true, 0.95},
		{"punctuation stripped", "Legal & Audit fees", "Professional Fees", true, 0.95},
		{"table order wins", "Rent for staff salary payroll", "Rent Expense", true, 0.75},
		{"no match", "misc xyz", domain.Uncategorized, false, 0.0},
		{"empty description", "", domain.Uncategorized, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := txn(tt.description, 1000, domain.Debit)
			ledger, ok := c.Classify(tx)
			assert.Equal(t, tt.ledger, ledger)
			assert.Equal(t, tt.ok, ok)

			result := c.Evaluate(tx)
			assert.Equal(t, tt.ledger, result.PredictedLedger)
			assert.Equal(t, tt.confidence, result.Confidence)
			assert.Equal(t, "txn-1", result.TransactionID)
		})
	}
}

func TestClassifyAlwaysReturnsKnownLedger(t *testing.T) {
	c := NewClassifier(nil)
	known := map[string]bool{domain.Uncategorized: true}
	for _, name := range c.Table().LedgerNames() {
		known[name] = true
	}

	descriptions := []string{
		"Petrol at HP pump", "Uber ride to airport", "AWS invoice", "Jio recharge",
		"Purchase of stock", "Loan interest EMI", "random words", "12345",
	}
	for _, d := range descriptions {
		result := c.Evaluate(txn(d, 500, domain.Debit))
		assert.True(t, known[result.PredictedLedger], "unexpected ledger %q for %q", result.PredictedLedger, d)
		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 1.0)
	}
}

func TestConfidence(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, 0.95, c.Confidence(txn("legal audit", 0, domain.Debit), "Professional Fees"))
	assert.Equal(t, 0.75, c.Confidence(txn("legal", 0, domain.Debit), "Professional Fees"))
	assert.Equal(t, 0.5, c.Confidence(txn("taxi", 0, domain.Debit), "Professional Fees"))
	assert.Equal(t, 0.5, c.Confidence(txn("legal audit", 0, domain.Debit), "Made Up Ledger"))
}

func TestIsTDSApplicable(t *testing.T) {
	c := NewClassifier(nil)

	assert.True(t, c.IsTDSApplicable(txn("professional consulting fees", 35000, domain.Debit)))
	assert.False(t, c.IsTDSApplicable(txn("professional consulting fees", 20000, domain.Debit)))
	assert.True(t, c.IsTDSApplicable(txn("professional consulting fees", 30000, domain.Debit)), "threshold is inclusive")

	section, ok := c.TDSSection(txn("professional consulting fees", 35000, domain.Debit))
	assert.True(t, ok)
	assert.Equal(t, "194J", section)

	// Rent keyword meets 194I only at its own threshold; sections are not combined.
	assert.False(t, c.IsTDSApplicable(txn("office rent", 100000, domain.Debit)))
	section, ok = c.TDSSection(txn("office rent", 240000, domain.Debit))
	assert.True(t, ok)
	assert.Equal(t, "194I", section)

	assert.False(t, c.IsTDSApplicable(txn("stationery", 99999, domain.Debit)))
}

func TestIsGSTApplicable(t *testing.T) {
	c := NewClassifier(nil)
	validGSTIN := "27AAPFU0939F1ZV"

	restaurant := txn("restaurant bill", 2000, domain.Debit)
	restaurant.GSTIN = strPtr(validGSTIN)
	assert.False(t, c.IsGSTApplicable(restaurant))

	credit := txn("office chair", 2000, domain.Credit)
	assert.False(t, c.IsGSTApplicable(credit))
	credit.GSTIN = strPtr(validGSTIN)
	assert.True(t, c.IsGSTApplicable(credit))
	credit.GSTIN = strPtr("27AAPFU0939")
	assert.False(t, c.IsGSTApplicable(credit), "malformed GSTIN is ignored")

	assert.True(t, c.IsGSTApplicable(txn("office chair", 2000, domain.Debit)))
	assert.True(t, c.IsGSTApplicable(txn("office chair", 2000, "PURCHASE")))
}

func TestValidGSTIN(t *testing.T) {
	assert.True(t, ValidGSTIN("27AAPFU0939F1ZV"))
	assert.True(t, ValidGSTIN(" 27aapfu0939f1zv "))
	assert.False(t, ValidGSTIN("27AAPFU0939F0ZV"))
	assert.False(t, ValidGSTIN("ABCDEFGHIJKLMNO"))
	assert.False(t, ValidGSTIN(""))
}

func TestIsCapitalExpenseAndRecurring(t *testing.T) {
	c := NewClassifier(nil)

	assert.True(t, c.IsCapitalExpense(txn("new computer", 1000, domain.Debit)))
	assert.True(t, c.IsCapitalExpense(txn("bulk order", 60000, domain.Debit)))
	assert.False(t, c.IsCapitalExpense(txn("bulk order", 50000, domain.Debit)))

	assert.True(t, c.IsRecurring(txn("Monthly Subscription", 100, domain.Debit)))
	assert.False(t, c.IsRecurring(txn("one off repair", 100, domain.Debit)))
}

func TestFlagsIgnoreLedger(t *testing.T) {
	c := NewClassifier(nil)
	tx := txn("professional consulting fees", 35000, domain.Debit)
	tx.Ledger = "Sales"

	result := c.Flags(tx)
	assert.Empty(t, result.PredictedLedger)
	assert.True(t, result.TDSApplicable)
	assert.True(t, result.GSTApplicable)
	assert.False(t, result.IsCapitalExpense)
}

func TestSuggest(t *testing.T) {
	c := NewClassifier(nil)
	tx := txn("Rent for staff salary payroll", 1000, domain.Debit)

	suggestions := c.Suggest(tx, 0)
	if assert.Len(t, suggestions, 2) {
		assert.Equal(t, "Salary & Wages", suggestions[0].Ledger)
		assert.Equal(t, 0.95, suggestions[0].Confidence)
		assert.ElementsMatch(t, []string{"salary", "payroll", "staff"}, suggestions[0].MatchedKeywords)
		assert.Equal(t, "Rent Expense", suggestions[1].Ledger)
		assert.Equal(t, 0.75, suggestions[1].Confidence)
	}

	assert.Len(t, c.Suggest(tx, 1), 1)
	assert.NotNil(t, c.Suggest(txn("misc xyz", 1, domain.Debit), 3))
	assert.Empty(t, c.Suggest(txn("misc xyz", 1, domain.Debit), 3))
}
