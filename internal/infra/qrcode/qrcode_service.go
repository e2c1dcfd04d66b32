// Package qrcode renders UPI payment QR codes.
package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"bitefeed/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new payment QR service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.PaymentQRService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR renders a PNG QR code encoding a UPI deep link for the
// given payee and amount.
func (s *qrcodeService) GeneratePaymentQR(payeeVPA, payeeName string, amount float64) ([]byte, error) {
	if strings.TrimSpace(payeeVPA) == "" {
		return nil, errors.New("payee VPA is required")
	}
	if amount <= 0 {
		return nil, errors.Errorf("invalid payment amount: %.2f", amount)
	}

	link := buildUPILink(payeeVPA, payeeName, amount)

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// buildUPILink builds a upi://pay deep link understood by UPI payment apps.
func buildUPILink(payeeVPA, payeeName string, amount float64) string {
	params := url.Values{}
	params.Set("pa", payeeVPA)
	if payeeName != "" {
		params.Set("pn", payeeName)
	}
	params.Set("am", fmt.Sprintf("%.2f", amount))
	params.Set("cu", "INR")

	return "upi://pay?" + params.Encode()
}
