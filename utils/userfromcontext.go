package utils

import (
	"net/http"

	"pawmart/globals"
)

// GetUserIDFromRequest returns the authenticated user id placed in the
// request context by the auth middleware, or "" if absent.
func GetUserIDFromRequest(r *http.Request) string {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		return ""
	}
	return userID
}
