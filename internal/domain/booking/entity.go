package booking

import (
	"database/sql"
	"time"
)

// Booking represents a spa appointment booking
type Booking struct {
	ID            int64          `db:"id"`
	Service       string         `db:"service"`
	Duration      string         `db:"duration"`
	Price         float64        `db:"price"`
	Name          string         `db:"name"`
	Phone         string         `db:"phone"`
	Datetime      time.Time      `db:"datetime"`
	PaymentStatus sql.NullString `db:"payment_status"`
}

// BookingResponse for API responses
type BookingResponse struct {
	ID            int64   `json:"id"`
	Service       string  `json:"service"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Datetime      string  `json:"datetime"`
	PaymentStatus string  `json:"payment_status,omitempty"`
}

// ToResponse converts entity to response
func (b *Booking) ToResponse() *BookingResponse {
	resp := &BookingResponse{
		ID:       b.ID,
		Service:  b.Service,
		Duration: b.Duration,
		Price:    b.Price,
		Name:     b.Name,
		Phone:    b.Phone,
		Datetime: b.Datetime.Format(time.RFC3339),
	}
	if b.PaymentStatus.Valid {
		resp.PaymentStatus = b.PaymentStatus.String
	}
	return resp
}

// CreateRequest for creating a booking. Price arrives as free text from the
// frontend ("$45.00") and is normalized before persistence.
type CreateRequest struct {
	Service  string `json:"service" validate:"required"`
	Duration string `json:"duration" validate:"required"`
	Price    string `json:"price" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Datetime string `json:"datetime" validate:"required"`
}

// DeleteResponse confirms a deletion
type DeleteResponse struct {
	Message string `json:"message"`
}
