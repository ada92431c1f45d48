package payments

// SettlePaymentRequest represents the outcome reported by the payment gateway
type SettlePaymentRequest struct {
	Outcome Status `json:"outcome" binding:"required,oneof=CONFIRMED FAILED"`
}
