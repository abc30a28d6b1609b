package testimonial

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Testimonial represents a client review of the spa
type Testimonial struct {
	ID             uuid.UUID      `db:"id"`
	ReviewerName   string         `db:"reviewer_name"`
	ReviewerEmail  string         `db:"reviewer_email"`
	ReviewTitle    sql.NullString `db:"review_title"`
	ReviewText     string         `db:"review_text"`
	Rating         int            `db:"rating"`
	GenuineOpinion bool           `db:"genuine_opinion"`
	CreatedAt      time.Time      `db:"created_at"`
}

// TestimonialResponse for API responses
type TestimonialResponse struct {
	ID             string `json:"id"`
	ReviewerName   string `json:"reviewerName"`
	ReviewerEmail  string `json:"reviewerEmail"`
	ReviewTitle    string `json:"reviewTitle,omitempty"`
	ReviewText     string `json:"reviewText"`
	Rating         int    `json:"rating"`
	GenuineOpinion bool   `json:"genuineOpinion"`
	CreatedAt      string `json:"createdAt"`
}

// ToResponse converts entity to response
func (t *Testimonial) ToResponse() *TestimonialResponse {
	resp := &TestimonialResponse{
		ID:             t.ID.String(),
		ReviewerName:   t.ReviewerName,
		ReviewerEmail:  t.ReviewerEmail,
		ReviewText:     t.ReviewText,
		Rating:         t.Rating,
		GenuineOpinion: t.GenuineOpinion,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
	if t.ReviewTitle.Valid {
		resp.ReviewTitle = t.ReviewTitle.String
	}
	return resp
}

// CreateRequest for submitting a testimonial. GenuineOpinion is a pointer so
// an explicit false passes validation while an absent field does not.
type CreateRequest struct {
	ReviewerName   string `json:"reviewerName" validate:"required"`
	ReviewerEmail  string `json:"reviewerEmail" validate:"required"`
	ReviewTitle    string `json:"reviewTitle"`
	ReviewText     string `json:"reviewText" validate:"required"`
	Rating         int    `json:"rating" validate:"required,gte=1,lte=5"`
	GenuineOpinion *bool  `json:"genuineOpinion" validate:"required"`
}

// DeleteResponse confirms a deletion
type DeleteResponse struct {
	Message string `json:"message"`
}
