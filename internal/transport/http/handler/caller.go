package handler

import (
	"net/http"

	"github.com/travelpoint-api/internal/transport/http/middleware"
)

// actingAs reports whether the authenticated caller is userID. It writes 401 when the
// request carries no claims and 403 with the given message when the ids differ.
func actingAs(w http.ResponseWriter, r *http.Request, userID int64, forbidden string) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return false
	}
	if claims.UserID != userID {
		writeError(w, http.StatusForbidden, forbidden)
		return false
	}
	return true
}
