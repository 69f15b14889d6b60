package handler

import (
	"errors"
	"net/http"

	"github.com/travelpoint-api/internal/application/auth"
	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/transport/http/middleware"
)

// AuthHandler serves registration, OTP verification and login.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.SubmitRegistration(r.Context(), req); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MessageEnvelope{Message: "OTP sent to your email. Please verify."})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.VerifyOTP(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthEnvelope(res, false))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.Login(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthEnvelope(res, false))
}

func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.GoogleLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.LoginWithGoogle(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthEnvelope(res, true))
}

// Secure greets the bearer of a valid token. Google accounts without a users row are welcomed too.
func (h *AuthHandler) Secure(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	email := claims.Subject
	u, err := h.svc.CurrentUser(r.Context(), claims.Subject)
	switch {
	case err == nil:
		email = u.Email
	case !errors.Is(err, domain.ErrUserNotFound):
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Welcome " + email + "!"})
}
