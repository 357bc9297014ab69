package rules

import (
	"math"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

const (
	MinPatternSamples    = 3
	patternBase          = 0.5
	patternStep          = 0.05
	patternMaxConfidence = 0.9
)

// LearnPatterns groups manual override entries by the ledger they assigned and emits
// one pattern per ledger seen at least MinPatternSamples times. Other methods are ignored.
// Patterns come out in the order their ledger first appears.
func LearnPatterns(entries []domain.ClassificationHistoryEntry) []domain.LearnedPattern {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, entry := range entries {
		if entry.Method != domain.MethodManualOverride {
			continue
		}
		if _, seen := counts[entry.PredictedLedger]; !seen {
			order = append(order, entry.PredictedLedger)
		}
		counts[entry.PredictedLedger]++
	}

	patterns := make([]domain.LearnedPattern, 0)
	for _, ledger := range order {
		n := counts[ledger]
		if n < MinPatternSamples {
			continue
		}
		patterns = append(patterns, domain.LearnedPattern{
			Ledger:      ledger,
			SampleCount: n,
			Confidence:  PatternConfidence(n),
		})
	}
	return patterns
}

// PatternConfidence is min(0.9, 0.5 + 0.05*n) rounded to two places.
func PatternConfidence(n int) float64 {
	c := math.Min(patternMaxConfidence, patternBase+patternStep*float64(n))
	return math.Round(c*100) / 100
}
