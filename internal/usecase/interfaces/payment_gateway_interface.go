package interfaces

import (
	"context"
	"encoding/json"

	"fleetval/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (e.g. Mercado
// Pago). The service only depends on the intent contract: an intent id it can
// later reconcile a webhook (or a client polling confirmation) against. The
// provider response is kept raw for traceability.
type IPaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, reportID string, amount entities.Money, description string) (intentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
