package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"portal/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateLinkQR(t *testing.T) {
	service := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}})

	qrBytes, err := service.GenerateLinkQR("https://www.google.com/maps/search/?api=1&query=50.450100,30.523400")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateLinkQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := newQRCodeService(size, "L")

		qrBytes, err := service.GenerateLinkQR("https://example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateLinkQR_EmptyLink(t *testing.T) {
	service := newQRCodeService(256, "M")

	_, err := service.GenerateLinkQR("")
	assert.Error(t, err)
}
