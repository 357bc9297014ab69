// Package rules holds the static keyword/threshold knowledge base used to
// classify transactions into ledger accounts, and the classifier that applies it.
package rules

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LedgerRule maps one ledger account to the keywords that select it.
type LedgerRule struct {
	Ledger   string
	Keywords []string
}

// TDSSection is a withholding section: a keyword set plus the amount at which it applies.
type TDSSection struct {
	Section   string
	Keywords  []string
	Threshold decimal.Decimal
}

// Table is the rule knowledge base. Build it once at startup with Default or
// Load and treat it as read-only afterwards.
type Table struct {
	// Ledgers is scanned in order; the first ledger with a matching keyword wins.
	Ledgers            []LedgerRule
	GSTBlockedKeywords []string
	TDSSections        []TDSSection
	CapitalKeywords    []string
	// CapitalThreshold is exclusive: amounts strictly above it are capital.
	CapitalThreshold  decimal.Decimal
	RecurringKeywords []string
}

// Default returns the built-in rule table.
func Default() *Table {
	return &Table{
		Ledgers: []LedgerRule{
			{Ledger: "Rent Expense", Keywords: []string{"rent", "lease", "rental"}},
			{Ledger: "Salary & Wages", Keywords: []string{"salary", "wages", "payroll", "employee", "staff"}},
			{Ledger: "Professional Fees", Keywords: []string{"consultant", "legal", "audit", "ca fees", "professional"}},
			{Ledger: "Electricity Expense", Keywords: []string{"electricity", "power", "eb bill", "mseb"}},
			{Ledger: "Telephone Expense", Keywords: []string{"telephone", "mobile", "airtel", "jio", "vodafone"}},
			{Ledger: "Internet Expense", Keywords: []string{"internet", "broadband", "wifi"}},
			{Ledger: "Office Supplies", Keywords: []string{"stationery", "office supplies", "printing"}},
			{Ledger: "Travel Expense", Keywords: []string{"travel", "flight", "train", "taxi", "uber", "ola"}},
			{Ledger: "Fuel Expense", Keywords: []string{"petrol", "diesel", "fuel", "cng"}},
			{Ledger: "Repairs & Maintenance", Keywords: []string{"repair", "maintenance", "servicing"}},
			{Ledger: "Insurance Expense", Keywords: []string{"insurance", "premium", "policy"}},
			{Ledger: "Bank Charges", Keywords: []string{"bank charges", "bank fee", "service charge"}},
			{Ledger: "Interest Expense", Keywords: []string{"interest", "loan interest", "emi"}},
			{Ledger: "Depreciation", Keywords: []string{"depreciation"}},
			{Ledger: "Purchase of Goods", Keywords: []string{"purchase", "inventory", "stock"}},
			{Ledger: "Sales", Keywords: []string{"sales", "revenue", "income"}},
			{Ledger: "Fixed Assets", Keywords: []string{"machinery", "equipment", "vehicle", "computer", "furniture", "building"}},
		},
		// Section 17(5) blocked input credit categories.
		GSTBlockedKeywords: []string{"food", "beverage", "restaurant", "hotel", "guest house", "club"},
		TDSSections: []TDSSection{
			{Section: "194C", Keywords: []string{"contractor", "contract", "labour"}, Threshold: decimal.NewFromInt(30000)},
			{Section: "194J", Keywords: []string{"professional", "consultant", "technical", "legal", "audit"}, Threshold: decimal.NewFromInt(30000)},
			{Section: "194I", Keywords: []string{"rent"}, Threshold: decimal.NewFromInt(240000)},
			{Section: "194H", Keywords: []string{"commission", "brokerage"}, Threshold: decimal.NewFromInt(15000)},
		},
		CapitalKeywords:   []string{"machinery", "equipment", "vehicle", "computer", "furniture", "building", "land", "plant"},
		CapitalThreshold:  decimal.NewFromInt(50000),
		RecurringKeywords: []string{"rent", "salary", "subscription", "insurance", "emi", "lease"},
	}
}

// Ledger looks up the rule for a ledger name.
func (t *Table) Ledger(name string) (LedgerRule, bool) {
	for _, rule := range t.Ledgers {
		if rule.Ledger == name {
			return rule, true
		}
	}
	return LedgerRule{}, false
}

// LedgerNames returns the ledger names in table order.
func (t *Table) LedgerNames() []string {
	names := make([]string, 0, len(t.Ledgers))
	for _, rule := range t.Ledgers {
		names = append(names, rule.Ledger)
	}
	return names
}

// Validate checks the table is usable: named unique ledgers and no blank keywords.
// Ledger keywords must already be in Normalize form since Classify matches normalized text.
func (t *Table) Validate() error {
	if len(t.Ledgers) == 0 {
		return fmt.Errorf("rule table has no ledgers")
	}
	seen := make(map[string]bool, len(t.Ledgers))
	for i, rule := range t.Ledgers {
		if strings.TrimSpace(rule.Ledger) == "" {
			return fmt.Errorf("ledger rule %d has no name", i)
		}
		if seen[rule.Ledger] {
			return fmt.Errorf("ledger %q defined more than once", rule.Ledger)
		}
		seen[rule.Ledger] = true
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("ledger %q has no keywords", rule.Ledger)
		}
		for _, kw := range rule.Keywords {
			if strings.TrimSpace(kw) == "" || kw != Normalize(kw) {
				return fmt.Errorf("ledger %q keyword %q must be non-empty normalized text", rule.Ledger, kw)
			}
		}
	}
	for _, section := range t.TDSSections {
		if section.Section == "" || len(section.Keywords) == 0 {
			return fmt.Errorf("TDS section %q must have a code and keywords", section.Section)
		}
		if err := checkKeywords("TDS section "+section.Section, section.Keywords); err != nil {
			return err
		}
		if section.Threshold.IsNegative() {
			return fmt.Errorf("TDS section %s threshold must not be negative", section.Section)
		}
	}
	if err := checkKeywords("gst_blocked_keywords", t.GSTBlockedKeywords); err != nil {
		return err
	}
	if err := checkKeywords("capital_keywords", t.CapitalKeywords); err != nil {
		return err
	}
	return checkKeywords("recurring_keywords", t.RecurringKeywords)
}

// checkKeywords rejects blank and upper-case entries; a blank keyword would match every description.
func checkKeywords(list string, keywords []string) error {
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("%s contains a blank keyword", list)
		}
		if kw != strings.ToLower(kw) {
			return fmt.Errorf("%s keyword %q must be lower case", list, kw)
		}
	}
	return nil
}
