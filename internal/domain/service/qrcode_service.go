package service

// QRCodeService defines the interface for rendering promotion codes as
// scannable images, so vendors can hand followers a code to redeem at the
// counter.
type QRCodeService interface {
	// GenerateComplimentQR renders the given redemption code as a PNG.
	GenerateComplimentQR(code string) ([]byte, error)
}
