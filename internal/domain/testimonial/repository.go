package testimonial

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles testimonial database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new testimonial repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new testimonial
func (r *Repository) Create(ctx context.Context, t *Testimonial) error {
	query := `
		INSERT INTO testimonials (id, reviewer_name, reviewer_email, review_title, review_text, rating, genuine_opinion, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ReviewerName,
		t.ReviewerEmail,
		t.ReviewTitle,
		t.ReviewText,
		t.Rating,
		t.GenuineOpinion,
		t.CreatedAt,
	)
	return err
}

// List returns all testimonials, newest first
func (r *Repository) List(ctx context.Context) ([]Testimonial, error) {
	query := `
		SELECT id, reviewer_name, reviewer_email, review_title, review_text, rating, genuine_opinion, created_at
		FROM testimonials
		ORDER BY created_at DESC
	`
	var testimonials []Testimonial
	err := r.db.SelectContext(ctx, &testimonials, query)
	return testimonials, err
}

// Delete removes a testimonial by id. Returns ErrNotFound when no row matched.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM testimonials WHERE id = $1 RETURNING id`
	var deleted uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, id).Scan(&deleted)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}
