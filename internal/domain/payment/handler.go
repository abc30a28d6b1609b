package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/spa12/spa-api/internal/pkg/errorhandler"
	"github.com/spa12/spa-api/internal/pkg/response"
	"github.com/spa12/spa-api/internal/pkg/validator"
)

// Store is the persistence surface the payment handlers need.
type Store interface {
	ConfirmPayment(ctx context.Context, bookingID int64) (*ConfirmedBooking, error)
}

// TransactionRecords tracks the pending transaction issued at initiation so
// confirmation can be checked against it.
type TransactionRecords interface {
	Save(ctx context.Context, bookingID, transactionID string) error
	Get(ctx context.Context, bookingID string) (string, error)
	Clear(ctx context.Context, bookingID string) error
}

// Handler handles payment HTTP requests. The initiate flow is a simulation:
// nothing is persisted and the delay models gateway latency for the frontend.
type Handler struct {
	store Store
	txns  TransactionRecords
	delay time.Duration
}

// NewHandler creates a new payment handler.
func NewHandler(store Store, txns TransactionRecords, delay time.Duration) *Handler {
	return &Handler{store: store, txns: txns, delay: delay}
}

// Initiate handles POST /api/payments/initiate
func (h *Handler) Initiate(w http.ResponseWriter, r *http.Request) {
	var req InitiateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	transactionID := NewTransactionID()
	qrCodeURL := QRCodeURL(req.Amount, req.BookingID)

	// Simulated processing latency, local to this request. Honors client
	// disconnect; no other request is blocked while waiting.
	select {
	case <-time.After(h.delay):
	case <-r.Context().Done():
		return
	}

	if err := h.txns.Save(r.Context(), req.BookingID, transactionID); err != nil {
		log.Warn().Err(err).Str("booking_id", req.BookingID).Msg("Failed to record pending transaction")
	}

	response.OK(w, &InitiateResponse{
		Message:       "Payment initiated, scan the QR code to pay",
		QRCodeURL:     qrCodeURL,
		TransactionID: transactionID,
		Status:        StatusPending,
	})
}

// Confirm handles POST /api/payments/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	bookingID, err := strconv.ParseInt(req.BookingID, 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid booking id")
		return
	}

	// Cross-check against the transaction issued at initiation when one is on
	// record and the caller supplied one.
	pending, err := h.txns.Get(r.Context(), req.BookingID)
	if err != nil {
		log.Warn().Err(err).Str("booking_id", req.BookingID).Msg("Failed to read pending transaction")
	}
	if pending != "" && req.TransactionID != "" && req.TransactionID != pending {
		response.BadRequest(w, ErrTransactionMismatch.Error())
		return
	}

	confirmed, err := h.store.ConfirmPayment(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.NotFound(w, fmt.Sprintf("Booking with id %d not found", bookingID))
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "PAYMENT_CONFIRM_FAILED", "Failed to confirm payment", err)
		return
	}

	if err := h.txns.Clear(r.Context(), req.BookingID); err != nil {
		log.Warn().Err(err).Str("booking_id", req.BookingID).Msg("Failed to clear pending transaction")
	}

	response.OK(w, &ConfirmResponse{
		Message: "Payment confirmed",
		Booking: confirmed.ToResult(),
	})
}
