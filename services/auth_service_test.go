package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("New@Example.com", "supersecret", "New User")
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.NotEqual(t, "supersecret", user.Password) // stored hashed
	assert.InDelta(t, 0.5, user.WeeklyRate, 1e-9)

	token, err := svc.Authenticate("new@example.com", "supersecret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("dup@example.com", "supersecret", "First")
	assert.NoError(t, err)

	_, err = svc.Register("DUP@example.com", "othersecret", "Second")
	assert.Error(t, err)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("who@example.com", "supersecret", "Who")
	assert.NoError(t, err)

	_, err = svc.Authenticate("who@example.com", "wrongpass")
	assert.Error(t, err)

	_, err = svc.Authenticate("nobody@example.com", "supersecret")
	assert.Error(t, err)
}
