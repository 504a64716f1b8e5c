package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLocalUser(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	tests := []struct {
		name         string
		email        string
		givenName    string
		expectedName string
	}{
		{name: "explicit name", email: "ana@example.com", givenName: "Ana Silva", expectedName: "Ana Silva"},
		{name: "name from email", email: "ana@example.com", givenName: "", expectedName: "ana"},
		{name: "whitespace trimmed", email: " bo@example.com ", givenName: "  ", expectedName: "bo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := NewLocalUser(tt.email, tt.givenName, now)
			assert.Equal(t, int64(1700000000123), user.ID)
			assert.Equal(t, tt.expectedName, user.Name)
		})
	}
}
