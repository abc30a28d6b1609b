package payment

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Repository handles payment database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new payment repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// ConfirmPayment marks a booking as paid and returns the updated row.
// Returns ErrBookingNotFound when no booking matched.
func (r *Repository) ConfirmPayment(ctx context.Context, bookingID int64) (*ConfirmedBooking, error) {
	query := `
		UPDATE bookings
		SET payment_status = $1
		WHERE id = $2
		RETURNING id, service, duration, price, name, phone, datetime, payment_status
	`
	var b ConfirmedBooking
	err := r.db.GetContext(ctx, &b, query, StatusCompleted, bookingID)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
