// Package qrcode generates share codes pointing at public catalog pages.
package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"atelier/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	publicBaseURL        string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, publicBaseURL string) service.QRCodeService {
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
		publicBaseURL:        strings.TrimRight(publicBaseURL, "/"),
	}
}

// GenerateShareQR generates a QR code for a project's public detail page
func (s *qrcodeService) GenerateShareQR(projectName string) ([]byte, error) {
	shareURL := s.publicBaseURL + "/project-details?title=" + url.QueryEscape(projectName)

	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
