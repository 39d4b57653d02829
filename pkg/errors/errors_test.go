package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCodeToHTTPStatus(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{CodeInvalidParam, http.StatusBadRequest},
		{CodeUpstreamTimeout, http.StatusGatewayTimeout},
		{CodeAPIKeyMissing, http.StatusInternalServerError},
		{CodeInternalError, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := New(tc.code, "msg").HTTPStatus; got != tc.want {
			t.Fatalf("New(%s).HTTPStatus = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestNewWithStatus_PassesThroughStatus(t *testing.T) {
	err := NewWithStatus(CodeUpstreamError, "Rate limit reached", http.StatusTooManyRequests)
	if err.HTTPStatus != http.StatusTooManyRequests {
		t.Fatalf("HTTPStatus = %d, want 429", err.HTTPStatus)
	}
	if err.ClientDetail() != "Rate limit reached" {
		t.Fatalf("ClientDetail = %q", err.ClientDetail())
	}
}

func TestWithDetail_DoesNotMutateOriginal(t *testing.T) {
	derived := ErrInvalidParam.WithDetail("topic must not be empty")
	if ErrInvalidParam.Detail != "" {
		t.Fatalf("predefined error mutated: %q", ErrInvalidParam.Detail)
	}
	if derived.ClientDetail() != "topic must not be empty" {
		t.Fatalf("ClientDetail = %q", derived.ClientDetail())
	}
	if derived.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("HTTPStatus = %d", derived.HTTPStatus)
	}
}

func TestAsAppError(t *testing.T) {
	if got := AsAppError(ErrAPIKeyMissing); got != ErrAPIKeyMissing {
		t.Fatal("AsAppError should pass AppError through")
	}

	plain := fmt.Errorf("connection refused")
	got := AsAppError(plain)
	if got.Code != CodeUnknown {
		t.Fatalf("code = %s", got.Code)
	}
	if got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("status = %d", got.HTTPStatus)
	}
	if got.ClientDetail() != "connection refused" {
		t.Fatalf("detail = %q", got.ClientDetail())
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, CodeInternalError, "wrapped")
	if err.Unwrap() != cause {
		t.Fatal("Unwrap should return the cause")
	}
}
