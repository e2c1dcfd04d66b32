package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestGeneratePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GeneratePaymentQR("bitefeed@upi", "BiteFeed", 399)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestGeneratePaymentQR_Validation(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GeneratePaymentQR("", "BiteFeed", 399)
	assert.Error(t, err)

	_, err = svc.GeneratePaymentQR("bitefeed@upi", "BiteFeed", 0)
	assert.Error(t, err)

	_, err = svc.GeneratePaymentQR("bitefeed@upi", "BiteFeed", -5)
	assert.Error(t, err)
}

func TestBuildUPILink(t *testing.T) {
	link := buildUPILink("bitefeed@upi", "BiteFeed", 399)

	assert.Contains(t, link, "upi://pay?")
	assert.Contains(t, link, "pa=bitefeed%40upi")
	assert.Contains(t, link, "pn=BiteFeed")
	assert.Contains(t, link, "am=399.00")
	assert.Contains(t, link, "cu=INR")

	// Payee name is optional
	link = buildUPILink("bitefeed@upi", "", 399)
	assert.NotContains(t, link, "pn=")
}
