package notifications

import (
	"context"
	"encoding/json"
	"log"

	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase/interfaces"
)

// LogDispatcher is the default notification sink: it records domain events to
// the process log. Real delivery (email, templates) lives in a separate
// service consuming the same events; correctness never depends on it.

type LogDispatcher struct{}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) Emit(_ context.Context, event entities.ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	log.Printf("[notify][dispatcher] event=%s payload=%s", event.Type, payload)
	return nil
}
