package models

import "time"

// RedFlag is a row of the red_flags table. Metadata is stored as JSONB.
type RedFlag struct {
	FlagID         string     `db:"flag_id"`
	ClientID       string     `db:"client_id"`
	TransactionID  string     `db:"transaction_id"`
	FlagType       string     `db:"flag_type"`
	Severity       string     `db:"severity"`
	Message        string     `db:"message"`
	Metadata       []byte     `db:"metadata"`
	Resolved       bool       `db:"resolved"`
	ResolutionNote *string    `db:"resolution_note"`
	CreatedAt      time.Time  `db:"created_at"`
	ResolvedAt     *time.Time `db:"resolved_at"`
}
