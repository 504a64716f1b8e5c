package handlers

import (
	"net/http"

	"ticketvue/internal/models"
	"ticketvue/internal/services"
	"ticketvue/internal/store"
)

// AuthHandler drives the local sign in modal
type AuthHandler struct {
	auth services.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// OpenModal shows the sign in modal
func (h *AuthHandler) OpenModal(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	st.Dispatch(store.AuthModalOpened{})
	respondApp(w, r, st)
}

// CloseModal hides the modal without signing in
func (h *AuthHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	st.Dispatch(store.AuthModalClosed{})
	respondApp(w, r, st)
}

// SwitchMode toggles between login and signup
func (h *AuthHandler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	mode := models.AuthMode(r.FormValue("mode"))
	if mode != models.AuthModeLogin && mode != models.AuthModeSignup {
		fail(w, r, http.StatusBadRequest, "Invalid auth mode")
		return
	}

	st.Dispatch(store.AuthModeChanged{Mode: mode})
	respondApp(w, r, st)
}

// Submit signs the user in locally. A missing email re-renders the modal
// with the error.
func (h *AuthHandler) Submit(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid form data")
		return
	}

	form := models.AuthForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Name:     r.FormValue("name"),
	}
	_, _ = h.auth.SignIn(st, form)
	respondApp(w, r, st)
}

// SignOut clears the local user
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	h.auth.SignOut(st)
	respondApp(w, r, st)
}
