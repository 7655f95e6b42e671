package request

import (
	"encoding/json"
	"testing"
)

func TestWebhookEnvelope_Decode(t *testing.T) {
	payload := `{
		"type": "payment_intent.succeeded",
		"data": {"object": {
			"id": "pi_1",
			"amount": 49500,
			"amount_received": 49500,
			"status": "succeeded",
			"metadata": {"report_id": "rep-1"}
		}}
	}`

	var envelope WebhookEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if envelope.Type != WebhookPaymentSucceeded {
		t.Fatalf("expected succeeded type, got %s", envelope.Type)
	}
	obj := envelope.Data.Object
	if obj.ID != "pi_1" || obj.RawAmount() != 49500 {
		t.Fatalf("unexpected object: %+v", obj)
	}
	if obj.ReportIDHint() != "rep-1" {
		t.Fatalf("expected rep-1 hint, got %q", obj.ReportIDHint())
	}
}

func TestWebhookObject_RawAmount(t *testing.T) {
	// amount_received wins when present; amount is only the requested figure.
	if got := (WebhookObject{Amount: 100, AmountReceived: 49500}).RawAmount(); got != 49500 {
		t.Fatalf("expected 49500, got %v", got)
	}
	if got := (WebhookObject{Amount: 49500}).RawAmount(); got != 49500 {
		t.Fatalf("expected fallback to amount, got %v", got)
	}
}

func TestWebhookObject_ReportIDHint(t *testing.T) {
	if got := (WebhookObject{}).ReportIDHint(); got != "" {
		t.Fatalf("expected empty hint without metadata, got %q", got)
	}
	if got := (WebhookObject{Metadata: map[string]string{"report_id": "  rep-1 "}}).ReportIDHint(); got != "rep-1" {
		t.Fatalf("expected trimmed hint, got %q", got)
	}
}
