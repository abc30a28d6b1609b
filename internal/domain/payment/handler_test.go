package payment

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeStore struct {
	confirmed map[int64]*ConfirmedBooking
	failWith  error
}

func (f *fakeStore) ConfirmPayment(ctx context.Context, bookingID int64) (*ConfirmedBooking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	b, ok := f.confirmed[bookingID]
	if !ok {
		return nil, ErrBookingNotFound
	}
	b.PaymentStatus = sql.NullString{String: StatusCompleted, Valid: true}
	return b, nil
}

type fakeRecords struct {
	pending map[string]string
}

func (f *fakeRecords) Save(ctx context.Context, bookingID, transactionID string) error {
	f.pending[bookingID] = transactionID
	return nil
}

func (f *fakeRecords) Get(ctx context.Context, bookingID string) (string, error) {
	return f.pending[bookingID], nil
}

func (f *fakeRecords) Clear(ctx context.Context, bookingID string) error {
	delete(f.pending, bookingID)
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestHandler(store Store) *Handler {
	// Millisecond delay keeps the simulated latency out of test runtime.
	return NewHandler(store, NewTransactionStore(nil, 0), time.Millisecond)
}

func doRequest(t *testing.T, h *Handler, target string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	rr := httptest.NewRecorder()
	Routes(h).ServeHTTP(rr, req)

	var env envelope
	if rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rr, env
}

func TestInitiateMissingFieldRejected(t *testing.T) {
	for _, field := range []string{"amount", "serviceName", "bookingId"} {
		h := newTestHandler(&fakeStore{})

		body := map[string]interface{}{
			"amount":      "$50",
			"serviceName": "Massage",
			"bookingId":   "1",
		}
		delete(body, field)

		rr, _ := doRequest(t, h, "/initiate", body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("missing %s: expected 400, got %d", field, rr.Code)
		}
	}
}

func TestInitiateReturnsPendingTransaction(t *testing.T) {
	h := newTestHandler(&fakeStore{})

	rr, env := doRequest(t, h, "/initiate", map[string]interface{}{
		"amount":      "$50",
		"serviceName": "Massage",
		"bookingId":   "1",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp InitiateResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != StatusPending {
		t.Fatalf("expected status pending, got %q", resp.Status)
	}
	if !transactionIDPattern.MatchString(resp.TransactionID) {
		t.Fatalf("bad transaction id %q", resp.TransactionID)
	}
	if resp.QRCodeURL == "" || resp.Message == "" {
		t.Fatalf("incomplete response: %+v", resp)
	}
}

func TestConfirmMissingBookingIDRejected(t *testing.T) {
	h := newTestHandler(&fakeStore{})

	rr, _ := doRequest(t, h, "/confirm", map[string]interface{}{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	rr, _ = doRequest(t, h, "/confirm", map[string]interface{}{"bookingId": "not-a-number"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rr.Code)
	}
}

func TestConfirmUnknownBookingReturnsNotFound(t *testing.T) {
	h := newTestHandler(&fakeStore{confirmed: map[int64]*ConfirmedBooking{}})

	rr, env := doRequest(t, h, "/confirm", map[string]interface{}{"bookingId": "999999"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if env.Error == nil || env.Error.Message == "" {
		t.Fatal("expected an id-specific message")
	}
}

func TestConfirmMarksBookingCompleted(t *testing.T) {
	store := &fakeStore{confirmed: map[int64]*ConfirmedBooking{
		1: {
			ID:       1,
			Service:  "Massage",
			Duration: "60 min",
			Price:    50,
			Name:     "Alice",
			Phone:    "+15550001111",
			Datetime: time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC),
		},
	}}
	h := newTestHandler(store)

	rr, env := doRequest(t, h, "/confirm", map[string]interface{}{"bookingId": "1"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp ConfirmResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Booking == nil || resp.Booking.PaymentStatus != StatusCompleted {
		t.Fatalf("expected completed payment status, got %+v", resp.Booking)
	}
	if resp.Message == "" {
		t.Fatal("expected a confirmation message")
	}
}

func confirmableBooking() *ConfirmedBooking {
	return &ConfirmedBooking{
		ID:       1,
		Service:  "Massage",
		Duration: "60 min",
		Price:    50,
		Name:     "Alice",
		Phone:    "+15550001111",
		Datetime: time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC),
	}
}

func TestConfirmRejectsMismatchedTransaction(t *testing.T) {
	store := &fakeStore{confirmed: map[int64]*ConfirmedBooking{1: confirmableBooking()}}
	records := &fakeRecords{pending: map[string]string{"1": "TXN-1-abc123def"}}
	h := NewHandler(store, records, time.Millisecond)

	rr, env := doRequest(t, h, "/confirm", map[string]interface{}{
		"bookingId":     "1",
		"transactionId": "TXN-9-zzzzzzzzz",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if env.Error == nil || env.Error.Message == "" {
		t.Fatal("expected a mismatch message")
	}
	if store.confirmed[1].PaymentStatus.Valid {
		t.Fatal("booking must not be confirmed on a mismatched transaction")
	}
}

func TestConfirmAcceptsMatchingTransaction(t *testing.T) {
	store := &fakeStore{confirmed: map[int64]*ConfirmedBooking{1: confirmableBooking()}}
	records := &fakeRecords{pending: map[string]string{"1": "TXN-1-abc123def"}}
	h := NewHandler(store, records, time.Millisecond)

	rr, _ := doRequest(t, h, "/confirm", map[string]interface{}{
		"bookingId":     "1",
		"transactionId": "TXN-1-abc123def",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(records.pending) != 0 {
		t.Fatal("pending record should be cleared after confirmation")
	}
}

func TestConfirmWithoutTransactionIDStillConfirms(t *testing.T) {
	// The documented wire contract only requires bookingId.
	store := &fakeStore{confirmed: map[int64]*ConfirmedBooking{1: confirmableBooking()}}
	records := &fakeRecords{pending: map[string]string{"1": "TXN-1-abc123def"}}
	h := NewHandler(store, records, time.Millisecond)

	rr, _ := doRequest(t, h, "/confirm", map[string]interface{}{"bookingId": "1"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestConfirmStoreErrorReturns500(t *testing.T) {
	h := newTestHandler(&fakeStore{failWith: errStore("connection reset")})

	rr, env := doRequest(t, h, "/confirm", map[string]interface{}{"bookingId": "1"})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if env.Error == nil || env.Error.Code != "PAYMENT_CONFIRM_FAILED" {
		t.Fatalf("unexpected error payload: %+v", env.Error)
	}
}

type errStore string

func (e errStore) Error() string { return string(e) }
