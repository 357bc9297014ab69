package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/models"
)

// ToModelRedFlag converts a domain RedFlag to a model RedFlag, encoding metadata as JSON.
// A nil metadata map is stored as an empty object.
func ToModelRedFlag(d domain.RedFlag) (models.RedFlag, error) {
	metadata := d.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return models.RedFlag{}, fmt.Errorf("encode metadata for flag %s: %w", d.FlagID, err)
	}
	return models.RedFlag{
		FlagID:         d.FlagID,
		ClientID:       d.ClientID,
		TransactionID:  d.TransactionID,
		FlagType:       string(d.FlagType),
		Severity:       string(d.Severity),
		Message:        d.Message,
		Metadata:       raw,
		Resolved:       d.Resolved,
		ResolutionNote: d.ResolutionNote,
		CreatedAt:      d.CreatedAt,
		ResolvedAt:     d.ResolvedAt,
	}, nil
}

// ToDomainRedFlag converts a model RedFlag to a domain RedFlag
func ToDomainRedFlag(m models.RedFlag) (domain.RedFlag, error) {
	metadata := map[string]any{}
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			return domain.RedFlag{}, fmt.Errorf("decode metadata for flag %s: %w", m.FlagID, err)
		}
	}
	return domain.RedFlag{
		FlagID:         m.FlagID,
		ClientID:       m.ClientID,
		TransactionID:  m.TransactionID,
		FlagType:       domain.FlagType(m.FlagType),
		Severity:       domain.Severity(m.Severity),
		Message:        m.Message,
		Metadata:       metadata,
		Resolved:       m.Resolved,
		ResolutionNote: m.ResolutionNote,
		CreatedAt:      m.CreatedAt,
		ResolvedAt:     m.ResolvedAt,
	}, nil
}
