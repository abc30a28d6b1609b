package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/spa12/spa-api/internal/pkg/errorhandler"
	"github.com/spa12/spa-api/internal/pkg/response"
	"github.com/spa12/spa-api/internal/pkg/validator"
)

// Store is the persistence surface the booking handlers need.
type Store interface {
	List(ctx context.Context) ([]Booking, error)
	Create(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id int64) error
}

// Handler handles booking HTTP requests.
type Handler struct {
	store Store
}

// NewHandler creates a new booking handler.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List handles GET /booking_spa12
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.store.List(r.Context())
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "BOOKING_LIST_FAILED", "Failed to list bookings", err)
		return
	}

	items := make([]*BookingResponse, len(bookings))
	for i := range bookings {
		items[i] = bookings[i].ToResponse()
	}
	response.OK(w, items)
}

// Create handles POST /booking_spa12
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

	price, err := NormalizePrice(req.Price)
	if err != nil {
		response.ValidationError(w, map[string]string{"price": "Price must contain a numeric value"})
		return
	}

	datetime, err := parseDatetime(req.Datetime)
	if err != nil {
		response.ValidationError(w, map[string]string{"datetime": "Invalid datetime format"})
		return
	}

	b := &Booking{
		Service:  req.Service,
		Duration: req.Duration,
		Price:    price,
		Name:     req.Name,
		Phone:    req.Phone,
		Datetime: datetime,
	}

	if err := h.store.Create(r.Context(), b); err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "BOOKING_CREATION_FAILED", "Failed to create booking", err)
		return
	}

	response.Created(w, b.ToResponse())
}

// Delete handles DELETE /booking_spa12/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.NotFound(w, fmt.Sprintf("Booking with id %s not found", raw))
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, fmt.Sprintf("Booking with id %d not found", id))
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "BOOKING_DELETE_FAILED", "Failed to delete booking", err)
		return
	}

	response.OK(w, &DeleteResponse{Message: fmt.Sprintf("Booking %d deleted successfully", id)})
}

// datetimeLayouts covers the formats the booking widget is known to send.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseDatetime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
