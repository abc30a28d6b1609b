package response

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type trackedBody struct {
	io.Reader
	closed bool
}

func (b *trackedBody) Close() error {
	b.closed = true
	return nil
}

func TestDecodeJSONClosesBody(t *testing.T) {
	body := &trackedBody{Reader: strings.NewReader(`{"name":"Alice"}`)}

	var v struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(body, &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Name != "Alice" {
		t.Fatalf("expected decoded value, got %+v", v)
	}
	if !body.closed {
		t.Fatal("expected body to be closed")
	}
}

func TestDecodeJSONClosesBodyOnError(t *testing.T) {
	body := &trackedBody{Reader: strings.NewReader(`{not json`)}

	var v struct{}
	if err := DecodeJSON(body, &v); err == nil {
		t.Fatal("expected a decode error")
	}
	if !body.closed {
		t.Fatal("expected body to be closed on error too")
	}
}

func TestValidationErrorIsBadRequest(t *testing.T) {
	rr := httptest.NewRecorder()
	ValidationError(rr, map[string]string{"price": "This field is required"})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Error == nil || resp.Error.Details["price"] == "" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
