package response

import "encoding/json"

type PaymentIntentResponse struct {
	ReportID         string          `json:"report_id"`
	PaymentIntentID  string          `json:"payment_intent_id"`
	Amount           string          `json:"amount"`
	AmountMinor      int64           `json:"amount_minor"`
	Currency         string          `json:"currency"`
	ProviderStatus   string          `json:"provider_status"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}
