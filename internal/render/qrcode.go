package render

import (
	"image"
	"image/color"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// QRStyle colors the modules and the quiet zone of a QR code.
// Nil colors keep the library's black on white.
type QRStyle struct {
	Foreground color.Color
	Background color.Color
}

// GenerateQRCodeImage returns a QR code image for payload, quiet zone included.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int, style QRStyle) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	if style.Foreground != nil {
		qrCode.ForegroundColor = style.Foreground
	}
	if style.Background != nil {
		qrCode.BackgroundColor = style.Background
	}
	return qrCode.Image(sizePx), nil
}
