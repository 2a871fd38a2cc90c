package services

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// PaymentQRDataURI encodes a payment URL as a QR code PNG data URI for
// inline embedding in rendered documents.
func PaymentQRDataURI(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("payment URL is empty")
	}
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to encode payment QR: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// AttachPaymentQR adds a qrDataUri entry to the prepared view-model's
// paymentLinks map, preferring the card checkout link. Data without payment
// links passes through untouched; QR failures degrade to no QR.
func AttachPaymentQR(data map[string]interface{}) {
	links, ok := data["paymentLinks"].(map[string]interface{})
	if !ok {
		return
	}
	url, _ := links["stripeUrl"].(string)
	if url == "" {
		url, _ = links["paypalUrl"].(string)
	}
	if url == "" {
		return
	}
	uri, err := PaymentQRDataURI(url)
	if err != nil {
		return
	}
	links["qrDataUri"] = uri
}
