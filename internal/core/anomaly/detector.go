// Package anomaly detects red flags in a loaded set of transactions.
// Every rule is a pure function; persistence is left to the caller.
package anomaly

import (
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

// Rule identifies one detector check.
type Rule int

const (
	RuleDuplicate Rule = iota
	RuleLargeCash
	RuleRoundNumber
	RuleMissingInvoice
	RuleVendorChecks
)

func (r Rule) String() string {
	switch r {
	case RuleDuplicate:
		return "duplicate"
	case RuleLargeCash:
		return "large_cash"
	case RuleRoundNumber:
		return "round_number"
	case RuleMissingInvoice:
		return "missing_invoice"
	case RuleVendorChecks:
		return "vendor_checks"
	default:
		return "unknown"
	}
}

// AllRules is the fixed rule list, in the order results are concatenated.
var AllRules = []Rule{
	RuleDuplicate,
	RuleLargeCash,
	RuleRoundNumber,
	RuleMissingInvoice,
	RuleVendorChecks,
}

// Detector runs a fixed list of rules over a transaction set.
type Detector struct {
	thresholds Thresholds
	rules      []Rule
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithRules restricts the detector to the given rules.
func WithRules(rules ...Rule) DetectorOption {
	return func(d *Detector) {
		d.rules = rules
	}
}

// NewDetector creates a Detector running AllRules with the given thresholds.
func NewDetector(thresholds Thresholds, opts ...DetectorOption) *Detector {
	d := &Detector{
		thresholds: thresholds,
		rules:      AllRules,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Rules returns the rules this detector runs.
func (d *Detector) Rules() []Rule {
	return d.rules
}

// Detect runs every configured rule and concatenates the candidate flags.
// Soft-deleted transactions are ignored. Returned flags have no ID or CreatedAt yet.
func (d *Detector) Detect(txns []domain.Transaction) []domain.RedFlag {
	live := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.DeletedAt == nil {
			live = append(live, txn)
		}
	}

	flags := make([]domain.RedFlag, 0)
	for _, rule := range d.rules {
		flags = append(flags, d.Run(rule, live)...)
	}
	return flags
}

// Run evaluates a single rule.
func (d *Detector) Run(rule Rule, txns []domain.Transaction) []domain.RedFlag {
	switch rule {
	case RuleDuplicate:
		return detectDuplicates(txns)
	case RuleLargeCash:
		return detectLargeCash(txns, d.thresholds)
	case RuleRoundNumber:
		return detectRoundNumbers(txns, d.thresholds)
	case RuleMissingInvoice:
		return detectMissingInvoices(txns, d.thresholds)
	case RuleVendorChecks:
		flags := detectInvoiceGaps(txns, d.thresholds)
		return append(flags, detectVendorIssues(txns, d.thresholds)...)
	default:
		return nil
	}
}

func newFlag(txn domain.Transaction, flagType domain.FlagType, severity domain.Severity, message string, metadata map[string]any) domain.RedFlag {
	return domain.RedFlag{
		ClientID:      txn.ClientID,
		TransactionID: txn.TransactionID,
		FlagType:      flagType,
		Severity:      severity,
		Message:       message,
		Metadata:      metadata,
	}
}
