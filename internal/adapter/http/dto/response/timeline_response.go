package response

import (
	"time"

	"fleetval/internal/domain/entities"
)

type TimelineEntryResponse struct {
	ID          string    `json:"id"`
	OldStatus   string    `json:"old_status,omitempty"`
	NewStatus   string    `json:"new_status"`
	ChangedBy   string    `json:"changed_by"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Synthesized bool      `json:"synthesized,omitempty"`
}

type TimelineResponse struct {
	ReportID string                  `json:"report_id"`
	Entries  []TimelineEntryResponse `json:"entries"`
}

func FromTimeline(reportID string, entries []entities.StatusHistoryEntry) TimelineResponse {
	out := TimelineResponse{ReportID: reportID, Entries: make([]TimelineEntryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, TimelineEntryResponse{
			ID:          e.ID,
			OldStatus:   string(e.OldStatus),
			NewStatus:   string(e.NewStatus),
			ChangedBy:   e.ChangedBy,
			Reason:      e.Reason,
			CreatedAt:   e.CreatedAt,
			Synthesized: e.Synthesized,
		})
	}
	return out
}

type FleetCreditsResponse struct {
	PaymentIntentID string `json:"payment_intent_id"`
	Included        int    `json:"valuations_included"`
	Used            int    `json:"valuations_used"`
	Remaining       int    `json:"valuations_remaining"`
	CanUse          bool   `json:"can_use"`
}
