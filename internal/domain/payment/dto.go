package payment

import (
	"database/sql"
	"time"
)

// StatusPending is the only status a simulated transaction ever carries; a
// booking's payment_status moves to StatusCompleted on confirmation.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// InitiateRequest for starting a simulated payment
type InitiateRequest struct {
	Amount      string `json:"amount" validate:"required"`
	ServiceName string `json:"serviceName" validate:"required"`
	BookingID   string `json:"bookingId" validate:"required"`
}

// InitiateResponse for a started payment
type InitiateResponse struct {
	Message       string `json:"message"`
	QRCodeURL     string `json:"qrCodeUrl"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}

// ConfirmRequest for confirming a payment. TransactionID is optional; when a
// pending transaction is on record it is checked against the initiated one.
type ConfirmRequest struct {
	BookingID     string `json:"bookingId" validate:"required"`
	TransactionID string `json:"transactionId"`
}

// ConfirmedBooking is the booking row as returned by the confirmation update
type ConfirmedBooking struct {
	ID            int64          `db:"id"`
	Service       string         `db:"service"`
	Duration      string         `db:"duration"`
	Price         float64        `db:"price"`
	Name          string         `db:"name"`
	Phone         string         `db:"phone"`
	Datetime      time.Time      `db:"datetime"`
	PaymentStatus sql.NullString `db:"payment_status"`
}

// ConfirmResponse for a confirmed payment
type ConfirmResponse struct {
	Message string                  `json:"message"`
	Booking *ConfirmedBookingResult `json:"booking"`
}

// ConfirmedBookingResult is the JSON shape of a confirmed booking
type ConfirmedBookingResult struct {
	ID            int64   `json:"id"`
	Service       string  `json:"service"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Datetime      string  `json:"datetime"`
	PaymentStatus string  `json:"payment_status"`
}

// ToResult converts the row to its response shape
func (b *ConfirmedBooking) ToResult() *ConfirmedBookingResult {
	res := &ConfirmedBookingResult{
		ID:       b.ID,
		Service:  b.Service,
		Duration: b.Duration,
		Price:    b.Price,
		Name:     b.Name,
		Phone:    b.Phone,
		Datetime: b.Datetime.Format(time.RFC3339),
	}
	if b.PaymentStatus.Valid {
		res.PaymentStatus = b.PaymentStatus.String
	}
	return res
}
