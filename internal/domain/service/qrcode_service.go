package service

// QRCodeService generates share codes for catalog entries.
type QRCodeService interface {
	// GenerateShareQR returns a PNG QR code encoding the public detail
	// page URL of the named project.
	GenerateShareQR(projectName string) ([]byte, error)
}
