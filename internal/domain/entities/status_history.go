package entities

import "time"

// StatusHistoryEntry is one append-only audit row per successful status
// transition. Rows are best-effort diagnostics, never authoritative: a failed
// append must not roll back an already-committed status change.
//
// Storage model (DynamoDB):
//   - PK: report_id
//   - SK: sk (created_at#entry_id, RFC3339Nano so lexicographic order is
//     chronological order)

type StatusHistoryEntry struct {
	ID        string       `json:"id"`
	ReportID  string       `json:"report_id"`
	OldStatus ReportStatus `json:"old_status"`
	NewStatus ReportStatus `json:"new_status"`
	ChangedBy string       `json:"changed_by"`
	Reason    string       `json:"reason,omitempty"`
	CreatedAt time.Time    `json:"created_at"`

	// Synthesized marks timeline entries reconstructed from a report's
	// timestamp fields when no history row was recorded (backward migration
	// compatibility). Never persisted.
	Synthesized bool `json:"synthesized,omitempty"`
}
