package interfaces

import (
	"context"

	"fleetval/internal/domain/entities"
)

// IStatusHistoryRepository abstracts DynamoDB persistence for the append-only
// StatusHistoryEntry audit rows.

type IStatusHistoryRepository interface {
	Append(ctx context.Context, e entities.StatusHistoryEntry) error
	ListByReportID(ctx context.Context, reportID string) ([]entities.StatusHistoryEntry, error)
}
