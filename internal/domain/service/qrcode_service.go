package service

// QRCodeService defines the interface for store subscription QR codes
type QRCodeService interface {
	// GenerateStoreQR renders a PNG QR code pointing browsers at the store's subscribe page
	GenerateStoreQR(storeID string) ([]byte, error)

	// SubscribeURL returns the URL encoded in the store's QR code
	SubscribeURL(storeID string) (string, error)
}
