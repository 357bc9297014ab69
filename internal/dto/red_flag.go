package dto

import (
	"time"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

// ScanRedFlagsRequest narrows a scan to a client and optionally a sheet and date range.
type ScanRedFlagsRequest struct {
	ClientID string     `json:"clientID" binding:"required,notblank"`
	SheetID  string     `json:"sheetID"`
	From     *time.Time `json:"from"`
	To       *time.Time `json:"to"`
}

// ListRedFlagsParams holds query parameters for listing flags.
type ListRedFlagsParams struct {
	ClientID  string  `form:"clientID" binding:"required,notblank"`
	Resolved  *bool   `form:"resolved"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ResolveRedFlagRequest carries the reviewer's note.
type ResolveRedFlagRequest struct {
	Note string `json:"note" binding:"required,notblank,max=1000"`
}

// RedFlagResponse is a flag as returned by the API.
type RedFlagResponse struct {
	FlagID         string         `json:"flagID"`
	ClientID       string         `json:"clientID"`
	TransactionID  string         `json:"transactionID"`
	FlagType       string         `json:"flagType"`
	Severity       string         `json:"severity"`
	Message        string         `json:"message"`
	Metadata       map[string]any `json:"metadata"`
	Resolved       bool           `json:"resolved"`
	ResolutionNote *string        `json:"resolutionNote,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	ResolvedAt     *time.Time     `json:"resolvedAt,omitempty"`
}

// ScanRedFlagsResponse returns the flags written by one scan.
type ScanRedFlagsResponse struct {
	Flags   []RedFlagResponse  `json:"flags"`
	Summary domain.ScanSummary `json:"summary"`
}

// ScanAllClientsResponse returns one summary per client scanned.
type ScanAllClientsResponse struct {
	Summaries []domain.ScanSummary `json:"summaries"`
}

// ListRedFlagsResponse is a page of flags.
type ListRedFlagsResponse struct {
	Flags     []RedFlagResponse `json:"flags"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToRedFlagResponse converts a domain RedFlag to its response form.
func ToRedFlagResponse(f domain.RedFlag) RedFlagResponse {
	return RedFlagResponse{
		FlagID:         f.FlagID,
		ClientID:       f.ClientID,
		TransactionID:  f.TransactionID,
		FlagType:       string(f.FlagType),
		Severity:       string(f.Severity),
		Message:        f.Message,
		Metadata:       f.Metadata,
		Resolved:       f.Resolved,
		ResolutionNote: f.ResolutionNote,
		CreatedAt:      f.CreatedAt,
		ResolvedAt:     f.ResolvedAt,
	}
}

// ToRedFlagResponses converts a slice of flags.
func ToRedFlagResponses(flags []domain.RedFlag) []RedFlagResponse {
	responses := make([]RedFlagResponse, len(flags))
	for i, f := range flags {
		responses[i] = ToRedFlagResponse(f)
	}
	return responses
}
