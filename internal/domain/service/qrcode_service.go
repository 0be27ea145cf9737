package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses vendor hail QR codes. A customer scans
// the code on a vendor's cart to open the call flow for that vendor.
type QRCodeService interface {
	// GenerateHailQR renders a PNG QR code identifying the vendor.
	GenerateHailQR(vendorID uuid.UUID) ([]byte, error)

	// ParseHailQR extracts the vendor ID from scanned QR payload data.
	ParseHailQR(qrData string) (uuid.UUID, error)
}
