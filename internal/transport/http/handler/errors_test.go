package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travelpoint-api/internal/domain"
)

func TestHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"persistence is opaque", domain.ErrPersistence, http.StatusInternalServerError, "Database Error"},
		{"wrapped fixed message", fmt.Errorf("create: %w", domain.ErrEmailTaken), http.StatusConflict, "Email already registered"},
		{"invalid otp", domain.ErrInvalidOTP, http.StatusBadRequest, "Invalid OTP"},
		{"otp attempts exhausted", domain.ErrTooManyOTPAttempts, http.StatusTooManyRequests, "Too many invalid OTP attempts"},
		{"validation keeps reason", domain.Invalid("field 'email' failed 'email'"), http.StatusUnprocessableEntity, "field 'email' failed 'email'"},
		{"resource not found", domain.NotFound("Post"), http.StatusNotFound, "Post not found"},
		{"bare sentinel", domain.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"bad request", fmt.Errorf("you cannot follow yourself: %w", domain.ErrBadRequest), http.StatusBadRequest, "you cannot follow yourself"},
		{"unclassified", errors.New("pq: connection reset"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httpError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)
			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, tc.msg, decodeMessage(t, rr))
		})
	}
}
