package booking

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Repository handles booking database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new booking repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// List returns all bookings, newest appointment first
func (r *Repository) List(ctx context.Context) ([]Booking, error) {
	query := `
		SELECT id, service, duration, price, name, phone, datetime, payment_status
		FROM bookings
		ORDER BY datetime DESC
	`
	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query)
	return bookings, err
}

// Create inserts a new booking and fills in the server-assigned id
func (r *Repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (service, duration, price, name, phone, datetime)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.db.QueryRowxContext(ctx, query,
		b.Service,
		b.Duration,
		b.Price,
		b.Name,
		b.Phone,
		b.Datetime,
	).Scan(&b.ID)
}

// Delete removes a booking by id. Returns ErrNotFound when no row matched.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1 RETURNING id`
	var deleted int64
	err := r.db.QueryRowxContext(ctx, query, id).Scan(&deleted)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}
