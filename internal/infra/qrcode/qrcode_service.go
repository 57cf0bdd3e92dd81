package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"masjidcast/config"
	"masjidcast/internal/domain/service"
	"masjidcast/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	followType = "follow"
	followPath = "/follow"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	MasjidID string `json:"masjid_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateFollowQR generates a PNG QR code for following a masjid.
// With a base URL the code is an app link, otherwise a JSON document.
func (s *qrcodeService) GenerateFollowQR(masjidID uuid.UUID) ([]byte, error) {
	content, err := s.encode(masjidID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) encode(masjidID uuid.UUID) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + followPath + "?" + url.Values{"masjid_id": {masjidID.String()}}.Encode(), nil
	}

	jsonData, err := json.Marshal(QRCodeData{
		MasjidID: masjidID.String(),
		Type:     followType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// ParseFollowQR parses scanned QR content and returns the masjid ID
func (s *qrcodeService) ParseFollowQR(qrData string) (uuid.UUID, error) {
	qrData = strings.TrimSpace(qrData)

	var rawID string
	if strings.HasPrefix(qrData, "{") {
		var data QRCodeData
		if err := json.Unmarshal([]byte(qrData), &data); err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
		}
		if data.Type != followType {
			return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
		}
		rawID = data.MasjidID
	} else {
		link, err := url.Parse(qrData)
		if err != nil || !strings.HasSuffix(link.Path, followPath) {
			return uuid.Nil, errors.New("failed to unmarshal QR code data: not a follow link")
		}
		rawID = link.Query().Get("masjid_id")
	}

	masjidID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse masjid ID")
	}

	return masjidID, nil
}
