package request

import "strings"

// Webhook event types the service reacts to.
const (
	WebhookPaymentSucceeded = "payment_intent.succeeded"
	WebhookPaymentFailed    = "payment_intent.payment_failed"
	WebhookPaymentCanceled  = "payment_intent.canceled"
	WebhookChargeRefunded   = "charge.refunded"
)

// WebhookEnvelope is the gateway event contract:
// {type, data.object: {id, amount, amount_received, status, metadata}}.
type WebhookEnvelope struct {
	Type string      `json:"type"`
	Data WebhookData `json:"data"`
}

type WebhookData struct {
	Object WebhookObject `json:"object"`
}

type WebhookObject struct {
	ID             string            `json:"id"`
	Amount         float64           `json:"amount"`
	AmountReceived float64           `json:"amount_received"`
	Status         string            `json:"status"`
	Metadata       map[string]string `json:"metadata"`
}

// RawAmount prefers the received amount; Amount is the requested figure and
// only a fallback.
func (o WebhookObject) RawAmount() float64 {
	if o.AmountReceived > 0 {
		return o.AmountReceived
	}
	return o.Amount
}

// ReportIDHint extracts the report id planted in the intent metadata at
// creation time, if any.
func (o WebhookObject) ReportIDHint() string {
	return strings.TrimSpace(o.Metadata["report_id"])
}
