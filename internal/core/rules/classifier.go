package rules

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

const (
	ConfidenceMultiMatch  = 0.95
	ConfidenceSingleMatch = 0.75
	ConfidenceDefault     = 0.5

	defaultSuggestions = 3
)

var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// ValidGSTIN reports whether s is a syntactically valid 15-character GSTIN.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// Normalize lower-cases text and drops everything except letters a-z, digits and whitespace.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classifier applies a rule Table to single transactions. It is safe for concurrent use.
type Classifier struct {
	table *Table
}

// NewClassifier builds a Classifier over table. A nil table uses Default().
func NewClassifier(table *Table) *Classifier {
	if table == nil {
		table = Default()
	}
	return &Classifier{table: table}
}

// Table returns the rule table the classifier was built with.
func (c *Classifier) Table() *Table {
	return c.table
}

// Classify returns the first ledger, in table order, with a keyword contained in the
// normalized description. ok is false and the ledger is Uncategorized when nothing matches.
func (c *Classifier) Classify(txn domain.Transaction) (string, bool) {
	description := Normalize(txn.Description)
	for _, rule := range c.table.Ledgers {
		for _, kw := range rule.Keywords {
			if strings.Contains(description, kw) {
				return rule.Ledger, true
			}
		}
	}
	return domain.Uncategorized, false
}

// Confidence scores ledger against the transaction by counting matching keywords.
func (c *Classifier) Confidence(txn domain.Transaction, ledger string) float64 {
	rule, ok := c.table.Ledger(ledger)
	if !ok {
		return ConfidenceDefault
	}
	return confidenceFor(len(matchedKeywords(Normalize(txn.Description), rule.Keywords)))
}

func confidenceFor(matches int) float64 {
	switch {
	case matches >= 2:
		return ConfidenceMultiMatch
	case matches == 1:
		return ConfidenceSingleMatch
	default:
		return ConfidenceDefault
	}
}

// Evaluate runs the full rule set against one transaction.
func (c *Classifier) Evaluate(txn domain.Transaction) domain.ClassificationResult {
	ledger, ok := c.Classify(txn)
	confidence := 0.0
	if ok {
		confidence = c.Confidence(txn, ledger)
	}
	result := c.Flags(txn)
	result.PredictedLedger = ledger
	result.Confidence = confidence
	return result
}

// Flags fills only the compliance predicates of a result; the ledger is left empty.
func (c *Classifier) Flags(txn domain.Transaction) domain.ClassificationResult {
	return domain.ClassificationResult{
		TransactionID:    txn.TransactionID,
		GSTApplicable:    c.IsGSTApplicable(txn),
		TDSApplicable:    c.IsTDSApplicable(txn),
		IsCapitalExpense: c.IsCapitalExpense(txn),
		IsRecurring:      c.IsRecurring(txn),
	}
}

// IsGSTApplicable reports whether input GST credit is expected for the transaction.
// Blocked categories always win over a GSTIN.
func (c *Classifier) IsGSTApplicable(txn domain.Transaction) bool {
	description := strings.ToLower(txn.Description)
	if containsAny(description, c.table.GSTBlockedKeywords) {
		return false
	}
	if txn.GSTIN != nil && ValidGSTIN(*txn.GSTIN) {
		return true
	}
	return txn.IsOutgoing()
}

// IsTDSApplicable reports whether some single TDS section has both a keyword match
// and an amount at or above its threshold.
func (c *Classifier) IsTDSApplicable(txn domain.Transaction) bool {
	_, ok := c.TDSSection(txn)
	return ok
}

// TDSSection returns the first section that applies to the transaction.
func (c *Classifier) TDSSection(txn domain.Transaction) (string, bool) {
	description := strings.ToLower(txn.Description)
	for _, section := range c.table.TDSSections {
		if containsAny(description, section.Keywords) && txn.Amount.GreaterThanOrEqual(section.Threshold) {
			return section.Section, true
		}
	}
	return "", false
}

// IsCapitalExpense is true for a capital keyword or an amount above the capital threshold.
func (c *Classifier) IsCapitalExpense(txn domain.Transaction) bool {
	if containsAny(strings.ToLower(txn.Description), c.table.CapitalKeywords) {
		return true
	}
	return txn.Amount.GreaterThan(c.table.CapitalThreshold)
}

// IsRecurring is keyword based only.
func (c *Classifier) IsRecurring(txn domain.Transaction) bool {
	return containsAny(strings.ToLower(txn.Description), c.table.RecurringKeywords)
}

// Suggest ranks every ledger with at least one keyword match, most matches first,
// keeping table order for ties. topN <= 0 returns three suggestions.
func (c *Classifier) Suggest(txn domain.Transaction, topN int) []domain.LedgerSuggestion {
	if topN <= 0 {
		topN = defaultSuggestions
	}
	description := Normalize(txn.Description)
	suggestions := make([]domain.LedgerSuggestion, 0)
	for _, rule := range c.table.Ledgers {
		matched := matchedKeywords(description, rule.Keywords)
		if len(matched) == 0 {
			continue
		}
		suggestions = append(suggestions, domain.LedgerSuggestion{
			Ledger:          rule.Ledger,
			Confidence:      confidenceFor(len(matched)),
			MatchedKeywords: matched,
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return len(suggestions[i].MatchedKeywords) > len(suggestions[j].MatchedKeywords)
	})
	if len(suggestions) > topN {
		suggestions = suggestions[:topN]
	}
	return suggestions
}

func matchedKeywords(description string, keywords []string) []string {
	matched := make([]string, 0)
	for _, kw := range keywords {
		if strings.Contains(description, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
