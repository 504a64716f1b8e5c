package services

import (
	"time"

	"ticketvue/internal/models"
	"ticketvue/internal/store"
)

// AuthService backs the local sign in modal. No credentials are checked
// and nothing leaves the session.
type AuthService struct {
	now func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{now: time.Now}
}

// SignIn creates the local user for login and signup alike
func (s *AuthService) SignIn(st *store.Store, form models.AuthForm) (*models.User, error) {
	if errs := form.Validate(); len(errs) > 0 {
		st.Dispatch(store.AuthRejected{Errors: errs})
		return nil, errs
	}

	user := models.NewLocalUser(form.Email, form.Name, s.now())
	st.Dispatch(store.SignedIn{User: user})
	return user, nil
}

// SignOut clears the local user
func (s *AuthService) SignOut(st *store.Store) {
	st.Dispatch(store.SignedOut{})
}
