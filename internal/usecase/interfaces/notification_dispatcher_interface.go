package interfaces

import (
	"context"

	"fleetval/internal/domain/entities"
)

// INotificationDispatcher consumes domain events (report submitted, status
// changed, payment failed...). Delivery is best-effort: emit failures are
// logged and never affect the transition that produced the event.
type INotificationDispatcher interface {
	Emit(ctx context.Context, event entities.ReportEvent) error
}
