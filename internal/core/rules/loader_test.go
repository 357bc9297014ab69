package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	require.NoError(t, table.Validate())
	assert.Len(t, table.Ledgers, 17)
	assert.Len(t, table.TDSSections, 4)
	assert.Equal(t, "Rent Expense", table.Ledgers[0].Ledger)

	rule, ok := table.Ledger("Fixed Assets")
	assert.True(t, ok)
	assert.Contains(t, rule.Keywords, "machinery")
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().LedgerNames(), table.LedgerNames())
}

func TestLoadFile(t *testing.T) {
	table, err := Load("testdata/rules.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"Software Subscriptions", "Rent Expense"}, table.LedgerNames())
	require.Len(t, table.TDSSections, 1)
	assert.True(t, decimal.NewFromInt(50000).Equal(table.TDSSections[0].Threshold))
	assert.True(t, decimal.NewFromInt(100000).Equal(table.CapitalThreshold))
	// Sections missing from the file keep their defaults.
	assert.Equal(t, Default().GSTBlockedKeywords, table.GSTBlockedKeywords)

	c := NewClassifier(table)
	ledger, ok := c.Classify(domain.Transaction{Description: "SaaS license renewal"})
	assert.True(t, ok)
	assert.Equal(t, "Software Subscriptions", ledger)
	assert.False(t, c.IsTDSApplicable(txn("professional fees", 35000, domain.Debit)))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("tds_sections:\n  - section: '194C'\n    keywords: [contract]\n    threshold: abc\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid threshold")

	_, err = Parse([]byte("ledgers:\n  - ledger: A\n    keywords: [x]\n  - ledger: A\n    keywords: [y]\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")

	_, err = Parse([]byte("ledgers: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte("tds_sections:\n  - section: '194C'\n    keywords: [contract]\n"))
	assert.ErrorContains(t, err, "has no threshold")
}

func TestParseRejectsBlankKeywords(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"gst blocked", "gst_blocked_keywords: [food, \"  \"]\n", "gst_blocked_keywords contains a blank keyword"},
		{"capital", "capital_keywords: [\"\"]\n", "capital_keywords contains a blank keyword"},
		{"recurring", "recurring_keywords: [rent, \" \"]\n", "recurring_keywords contains a blank keyword"},
		{"tds section", "tds_sections: [{section: 194C, keywords: [\"\"], threshold: \"0\"}]\n", "TDS section 194C contains a blank keyword"},
		{"ledger", "ledgers: [{ledger: Rent, keywords: [rent, \" \"]}]\n", "keyword \"\" must be non-empty normalized text"},
		{"ledger punctuation only", "ledgers: [{ledger: Misc, keywords: [\"--\"]}]\n", "must be non-empty normalized text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBlankKeywordsDoNotMatchEverything(t *testing.T) {
	table := Default()
	table.CapitalKeywords = append(table.CapitalKeywords, "")
	assert.Error(t, table.Validate())

	// The defaults leave an ordinary small purchase alone.
	c := NewClassifier(Default())
	chair := txn("office chair", 10, domain.Debit)
	assert.True(t, c.IsGSTApplicable(chair))
	assert.False(t, c.IsCapitalExpense(chair))
	assert.False(t, c.IsTDSApplicable(chair))
}

func TestParseNormalizesLedgerKeywords(t *testing.T) {
	table, err := Parse([]byte("ledgers:\n  - ledger: Online Sales\n    keywords: [E-Commerce]\n  - ledger: Bank Charges\n    keywords: [\"A/C Charges\"]\n"))
	require.NoError(t, err)

	rule, ok := table.Ledger("Online Sales")
	require.True(t, ok)
	assert.Equal(t, []string{"ecommerce"}, rule.Keywords)

	c := NewClassifier(table)
	ledger, ok := c.Classify(domain.Transaction{Description: "E-commerce payout"})
	assert.True(t, ok)
	assert.Equal(t, "Online Sales", ledger)

	ledger, ok = c.Classify(domain.Transaction{Description: "Quarterly a/c charges"})
	assert.True(t, ok)
	assert.Equal(t, "Bank Charges", ledger)
}
