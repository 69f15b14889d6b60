package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/travelpoint-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper. Every error body uses it.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// AuthEnvelope wraps every token-issuing response.
type AuthEnvelope struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Email       string `json:"email,omitempty"`
	UserID      int64  `json:"user_id"`
	UserType    int    `json:"user_type"`
}

// IDEnvelope acknowledges a mutation that concerns a single user.
type IDEnvelope struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type PostCreatedEnvelope struct {
	Message string `json:"message"`
	PostID  int64  `json:"post_id"`
}

type LikesEnvelope struct {
	Message string `json:"message"`
	Likes   int    `json:"likes"`
}

type UsersEnvelope struct {
	Users []int64 `json:"users"`
}

func toAuthEnvelope(res *domain.AuthResult, withEmail bool) AuthEnvelope {
	env := AuthEnvelope{
		AccessToken: res.AccessToken,
		TokenType:   res.TokenType,
		UserID:      res.UserID,
		UserType:    res.UserType,
	}
	if withEmail {
		env.Email = res.Email
	}
	return env
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Message: msg})
}

// decodeJSON writes a 400 and returns false when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses a positive int64 URL parameter, writing a 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func parsePage(r *http.Request) domain.Page {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	return domain.NewPage(page, perPage)
}
