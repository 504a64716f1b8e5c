package models

import (
	"strings"
	"time"
)

// User is the locally signed-in shopper. No credential is ever verified.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewLocalUser builds a user from the auth form. The name falls back to
// the local part of the email address.
func NewLocalUser(email, name string, now time.Time) *User {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return &User{
		ID:    now.UnixMilli(),
		Email: email,
		Name:  name,
	}
}
