package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/travelpoint-api/internal/domain"
)

// fixedMessages maps flow errors to the exact text clients see.
var fixedMessages = []struct {
	err    error
	status int
	msg    string
}{
	{domain.ErrPersistence, http.StatusInternalServerError, "Database Error"},
	{domain.ErrNotification, http.StatusInternalServerError, "Could not send OTP"},
	{domain.ErrInternal, http.StatusInternalServerError, "Internal Server Error"},
	{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid password"},
	{domain.ErrInvalidOTP, http.StatusBadRequest, "Invalid OTP"},
	{domain.ErrTooManyOTPAttempts, http.StatusTooManyRequests, "Too many invalid OTP attempts"},
	{domain.ErrNoPendingRegistration, http.StatusBadRequest, "No pending registration for this email"},
	{domain.ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{domain.ErrTokenExpired, http.StatusUnauthorized, "Token has expired"},
	{domain.ErrInvalidSignature, http.StatusUnauthorized, "Invalid token"},
}

// categories map the remaining errors by sentinel; the message is the error text
// with the sentinel suffix removed.
var categories = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusUnprocessableEntity},
	{domain.ErrBadRequest, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
}

// httpError writes the response for a service error. Internal causes are logged, never returned.
func httpError(w http.ResponseWriter, r *http.Request, err error) {
	for _, f := range fixedMessages {
		if errors.Is(err, f.err) {
			if f.status >= http.StatusInternalServerError {
				slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
			}
			writeError(w, f.status, f.msg)
			return
		}
	}
	for _, c := range categories {
		if errors.Is(err, c.err) {
			writeError(w, c.status, clientMessage(err, c.err, c.status))
			return
		}
	}
	slog.Error("unclassified error", "method", r.Method, "path", r.URL.Path, "err", err)
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}

func clientMessage(err, sentinel error, status int) string {
	msg := strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
	if msg == err.Error() || msg == "" {
		return http.StatusText(status)
	}
	return msg
}
