package testimonial

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/spa12/spa-api/internal/pkg/errorhandler"
	"github.com/spa12/spa-api/internal/pkg/response"
	"github.com/spa12/spa-api/internal/pkg/validator"
)

// Store is the persistence surface the testimonial handlers need.
type Store interface {
	Create(ctx context.Context, t *Testimonial) error
	List(ctx context.Context) ([]Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler handles testimonial HTTP requests.
type Handler struct {
	store Store
}

// NewHandler creates a new testimonial handler.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Create handles POST /api/testimonials
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	t := &Testimonial{
		ID:             uuid.New(),
		ReviewerName:   req.ReviewerName,
		ReviewerEmail:  req.ReviewerEmail,
		ReviewTitle:    sql.NullString{String: req.ReviewTitle, Valid: req.ReviewTitle != ""},
		ReviewText:     req.ReviewText,
		Rating:         req.Rating,
		GenuineOpinion: *req.GenuineOpinion,
		CreatedAt:      time.Now().UTC(),
	}

	if err := h.store.Create(r.Context(), t); err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "TESTIMONIAL_CREATION_FAILED", "Failed to create testimonial", err)
		return
	}

	response.Created(w, t.ToResponse())
}

// List handles GET /api/testimonials
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.store.List(r.Context())
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "TESTIMONIAL_LIST_FAILED", "Failed to list testimonials", err)
		return
	}

	items := make([]*TestimonialResponse, len(testimonials))
	for i := range testimonials {
		items[i] = testimonials[i].ToResponse()
	}
	response.OK(w, items)
}

// Delete handles DELETE /api/testimonials/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		response.NotFound(w, fmt.Sprintf("Testimonial with id %s not found", raw))
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, fmt.Sprintf("Testimonial with id %s not found", id))
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "TESTIMONIAL_DELETE_FAILED",
			fmt.Sprintf("Failed to delete testimonial: %v", err), err)
		return
	}

	response.OK(w, &DeleteResponse{Message: fmt.Sprintf("Testimonial %s deleted successfully", id)})
}
