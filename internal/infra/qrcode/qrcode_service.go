package qrcode

import (
	"net/url"
	"strings"

	"pushcampaign/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// storeQueryParam is read by the subscribe page to register the browser for the store
const storeQueryParam = "store_id"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
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
		baseURL:              baseURL,
	}
}

// SubscribeURL appends the store to the configured subscribe page URL
func (s *qrcodeService) SubscribeURL(storeID string) (string, error) {
	if strings.TrimSpace(storeID) == "" {
		return "", errors.New("store id is required")
	}
	if s.baseURL == "" {
		return "", errors.New("qrcode base url is not configured")
	}

	subscribeURL, err := url.Parse(s.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid qrcode base url")
	}
	if subscribeURL.Scheme == "" || subscribeURL.Host == "" {
		return "", errors.Errorf("qrcode base url must be absolute: %s", s.baseURL)
	}

	query := subscribeURL.Query()
	query.Set(storeQueryParam, storeID)
	subscribeURL.RawQuery = query.Encode()

	return subscribeURL.String(), nil
}

// GenerateStoreQR renders the store's subscribe URL as a PNG QR code
func (s *qrcodeService) GenerateStoreQR(storeID string) ([]byte, error) {
	content, err := s.SubscribeURL(storeID)
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
