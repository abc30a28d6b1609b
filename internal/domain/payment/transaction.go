package payment

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// NewTransactionID generates a transaction reference of the form
// TXN-<unix-millis>-<9 alphanumerics>.
func NewTransactionID() string {
	random := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), random)
}

// QRCodeURL builds the payment QR reference URL embedding the
// currency-stripped amount and the booking id.
func QRCodeURL(amount, bookingID string) string {
	payload := fmt.Sprintf("spa-payment://pay?booking=%s&amount=%s", bookingID, stripAmount(amount))
	return qrEndpoint + "?size=250x250&data=" + url.QueryEscape(payload)
}

// stripAmount removes currency symbols and separators, keeping digits and the
// decimal point ("$1,250.50" → "1250.50").
func stripAmount(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
