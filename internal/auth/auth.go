// Package auth holds the session layer and the boundary to the external
// authentication collaborator. Credential checks and two-factor (TOTP)
// verification happen on the collaborator's side; this package only calls
// the interface and issues opaque session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// CredentialVerifier is implemented by the external auth collaborator. It
// reports whether the secret (password plus one-time code, formatted per
// the collaborator's contract) is valid for the user.
type CredentialVerifier interface {
	VerifyCredential(ctx context.Context, userID, secret string) (bool, error)
}

// SessionStore persists opaque session tokens with a TTL.
type SessionStore interface {
	Put(ctx context.Context, token, userID string, ttl time.Duration) error

	// Get resolves a token to a user ID. Missing or expired tokens return
	// ErrInvalidSession.
	Get(ctx context.Context, token string) (string, error)

	Delete(ctx context.Context, token string) error
	Close() error
}

// SessionManager verifies credentials through the collaborator and hands
// out uuid session tokens.
type SessionManager struct {
	verifier CredentialVerifier
	store    SessionStore
	ttl      time.Duration
	logger   *zap.Logger
}

func NewSessionManager(verifier CredentialVerifier, store SessionStore, ttl time.Duration, logger *zap.Logger) *SessionManager {
	return &SessionManager{
		verifier: verifier,
		store:    store,
		ttl:      ttl,
		logger:   logger,
	}
}

// Login checks the credential with the collaborator and, on success,
// issues a session token.
func (m *SessionManager) Login(ctx context.Context, userID, secret string) (string, error) {
	ok, err := m.verifier.VerifyCredential(ctx, userID, secret)
	if err != nil {
		return "", fmt.Errorf("verifying credential: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	token := uuid.New().String()
	if err := m.store.Put(ctx, token, userID, m.ttl); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}

	m.logger.Info("Session issued", zap.String("user_id", userID))
	return token, nil
}

// Authenticate resolves a session token to the user it belongs to.
func (m *SessionManager) Authenticate(ctx context.Context, token string) (string, error) {
	return m.store.Get(ctx, token)
}

// Logout invalidates a session token.
func (m *SessionManager) Logout(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}
