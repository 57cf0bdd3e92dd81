package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateFollowQR generates a QR code that follows a masjid when scanned
	GenerateFollowQR(masjidID uuid.UUID) ([]byte, error)

	// ParseFollowQR parses QR code data and returns the masjid ID
	ParseFollowQR(qrData string) (uuid.UUID, error)
}
