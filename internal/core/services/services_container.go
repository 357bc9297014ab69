package services

import (
	"fmt"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/anomaly"
	portsrepo "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/repositories"
	portssvc "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/services"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/rules"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The rule table is loaded once here and shared by every classification.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	table, err := rules.Load(cfg.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule table: %w", err)
	}

	detector := anomaly.NewDetector(ThresholdsFromConfig(cfg.RedFlag))

	return &portssvc.ServiceContainer{
		Classification: NewClassificationService(repos.TransactionRepo, repos.HistoryRepo, WithClassifier(rules.NewClassifier(table))),
		RedFlag:        NewRedFlagService(repos.TransactionRepo, repos.RedFlagRepo, WithDetector(detector)),
	}, nil
}

// ThresholdsFromConfig maps configured red-flag limits onto detector thresholds.
func ThresholdsFromConfig(rc config.RedFlagConfig) anomaly.Thresholds {
	return anomaly.Thresholds{
		LargeCash:         rc.LargeCash,
		CashCeiling:       rc.CashCeiling,
		RoundNumberFloor:  rc.RoundNumberFloor,
		MissingInvoice:    rc.MissingInvoice,
		OneTimeVendor:     rc.OneTimeVendor,
		MissingGSTIN:      rc.MissingGSTIN,
		MinSequenceLength: rc.MinSequenceLength,
	}
}
