package service

// PaymentQRService defines the interface for rendering the payment QR code a
// user scans before submitting a subscription request.
type PaymentQRService interface {
	// GeneratePaymentQR renders a PNG QR code encoding a UPI payment link for
	// the fixed subscription amount.
	GeneratePaymentQR(payeeVPA, payeeName string, amount float64) ([]byte, error)
}
