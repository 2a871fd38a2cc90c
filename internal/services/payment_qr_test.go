package services

import (
	"strings"
	"testing"
)

func TestPaymentQRDataURI(t *testing.T) {
	uri, err := PaymentQRDataURI("https://pay.example/abc")
	if err != nil {
		t.Fatalf("PaymentQRDataURI: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri = %q, want a PNG data URI", uri[:min(len(uri), 40)])
	}

	if _, err := PaymentQRDataURI(""); err == nil {
		t.Error("empty URL should error")
	}
}

func TestAttachPaymentQR(t *testing.T) {
	data := map[string]interface{}{
		"paymentLinks": map[string]interface{}{
			"stripeUrl": "https://pay.example/abc",
		},
	}
	AttachPaymentQR(data)

	links := data["paymentLinks"].(map[string]interface{})
	uri, _ := links["qrDataUri"].(string)
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("qrDataUri = %q, want a PNG data URI", uri)
	}
}

func TestAttachPaymentQRNoLinks(t *testing.T) {
	data := map[string]interface{}{"paymentLinks": false}
	AttachPaymentQR(data)
	if data["paymentLinks"] != false {
		t.Errorf("data without links changed: %v", data["paymentLinks"])
	}

	empty := map[string]interface{}{
		"paymentLinks": map[string]interface{}{"instructions": "wire transfer"},
	}
	AttachPaymentQR(empty)
	links := empty["paymentLinks"].(map[string]interface{})
	if _, ok := links["qrDataUri"]; ok {
		t.Error("no URL means no QR")
	}
}
