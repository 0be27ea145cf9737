package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateAndParseRoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	vendorID := uuid.New()

	png, err := service.GenerateHailQR(vendorID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// The PNG encodes the JSON payload; parse the payload directly.
	payload, err := json.Marshal(QRCodeData{VendorID: vendorID.String(), Type: "hail"})
	require.NoError(t, err)

	parsed, err := service.ParseHailQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, vendorID, parsed)
}

func TestQRCodeService_ParseHailQR_WrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{VendorID: uuid.New().String(), Type: "payment"})
	require.NoError(t, err)

	parsed, err := service.ParseHailQR(string(payload))
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestQRCodeService_ParseHailQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	parsed, err := service.ParseHailQR("not-json")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestQRCodeService_ParseHailQR_BadVendorID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{VendorID: "not-a-uuid", Type: "hail"})
	require.NoError(t, err)

	parsed, err := service.ParseHailQR(string(payload))
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestQRCodeService_UnknownCorrectionLevelFallsBack(t *testing.T) {
	service := NewQRCodeService(128, "X")

	png, err := service.GenerateHailQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
