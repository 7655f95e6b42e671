package request

import "strings"

// PaymentIntentRequest asks the server to create a gateway intent for a
// draft report. The server computes the price; any client-asserted amount is
// dropped at this boundary.
type PaymentIntentRequest struct {
	ReportID string `json:"report_id" binding:"required"`
}

// PaymentConfirmedRequest is the client-initiated confirmation fallback used
// when webhook delivery is delayed. Amount is the raw gateway figure and is
// normalized exactly once, at ingestion.
type PaymentConfirmedRequest struct {
	PaymentIntentID string  `json:"payment_intent_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required"`
	ReportID        string  `json:"report_id"`
}

func (r PaymentConfirmedRequest) ResolveIntentID() string {
	return strings.TrimSpace(r.PaymentIntentID)
}

func (r PaymentConfirmedRequest) ResolveReportID() string {
	return strings.TrimSpace(r.ReportID)
}
