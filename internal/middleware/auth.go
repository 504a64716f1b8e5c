package middleware

import (
	"context"
	"net/http"

	"ticketvue/internal/models"
)

// GetUserFromContext returns the locally signed in user of the session, if any
func GetUserFromContext(ctx context.Context) *models.User {
	st := GetStore(ctx)
	if st == nil {
		return nil
	}
	return st.State().User
}

// IsHTMXRequest checks if the request is from HTMX
func IsHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
