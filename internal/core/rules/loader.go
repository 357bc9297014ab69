package rules

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk YAML shape of a rule table.
type ruleFile struct {
	Ledgers []struct {
		Ledger   string   `yaml:"ledger"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"ledgers"`
	GSTBlockedKeywords []string `yaml:"gst_blocked_keywords"`
	TDSSections        []struct {
		Section   string   `yaml:"section"`
		Keywords  []string `yaml:"keywords"`
		Threshold string   `yaml:"threshold"`
	} `yaml:"tds_sections"`
	CapitalKeywords   []string `yaml:"capital_keywords"`
	CapitalThreshold  string   `yaml:"capital_threshold"`
	RecurringKeywords []string `yaml:"recurring_keywords"`
}

// Load reads a rule table from a YAML file. An empty path returns Default().
// Sections omitted from the file keep their default values.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML rule table, overlaying it on the defaults.
func Parse(data []byte) (*Table, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	table := Default()
	if len(file.Ledgers) > 0 {
		table.Ledgers = make([]LedgerRule, 0, len(file.Ledgers))
		for _, l := range file.Ledgers {
			table.Ledgers = append(table.Ledgers, LedgerRule{Ledger: strings.TrimSpace(l.Ledger), Keywords: normalizeAll(l.Keywords)})
		}
	}
	if len(file.GSTBlockedKeywords) > 0 {
		table.GSTBlockedKeywords = lowerAll(file.GSTBlockedKeywords)
	}
	if len(file.TDSSections) > 0 {
		table.TDSSections = make([]TDSSection, 0, len(file.TDSSections))
		for _, s := range file.TDSSections {
			if strings.TrimSpace(s.Threshold) == "" {
				return nil, fmt.Errorf("TDS section %s has no threshold", s.Section)
			}
			threshold, err := decimal.NewFromString(strings.TrimSpace(s.Threshold))
			if err != nil {
				return nil, fmt.Errorf("invalid threshold %q for TDS section %s: %w", s.Threshold, s.Section, err)
			}
			table.TDSSections = append(table.TDSSections, TDSSection{Section: s.Section, Keywords: lowerAll(s.Keywords), Threshold: threshold})
		}
	}
	if len(file.CapitalKeywords) > 0 {
		table.CapitalKeywords = lowerAll(file.CapitalKeywords)
	}
	if file.CapitalThreshold != "" {
		threshold, err := decimal.NewFromString(strings.TrimSpace(file.CapitalThreshold))
		if err != nil {
			return nil, fmt.Errorf("invalid capital_threshold %q: %w", file.CapitalThreshold, err)
		}
		table.CapitalThreshold = threshold
	}
	if len(file.RecurringKeywords) > 0 {
		table.RecurringKeywords = lowerAll(file.RecurringKeywords)
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}
	return table, nil
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}

// normalizeAll puts ledger keywords in the same form Classify matches against,
// so "a/c charges" becomes "ac charges".
func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(Normalize(s)))
	}
	return out
}
