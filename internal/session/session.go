package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// Token length in bytes (32 bytes = 64 hex characters).
const tokenLength = 32

// Store binds opaque session tokens to user identifiers. Tokens are
// server-validated references only; nothing about the user is encoded in
// them. State is in-memory and does not survive a process restart.
type Store struct {
	mu      sync.RWMutex
	byToken map[string]string
	byUser  map[string]string
}

func NewStore() *Store {
	return &Store{
		byToken: make(map[string]string),
		byUser:  make(map[string]string),
	}
}

// Establish invalidates any session previously bound to the user and binds a
// fresh token to the user's identifier.
func (s *Store) Establish(userID string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byUser[userID]; ok {
		delete(s.byToken, prev)
	}
	s.byToken[token] = userID
	s.byUser[userID] = token

	return token, nil
}

// Resolve returns the user identifier bound to the token, if any.
func (s *Store) Resolve(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.byToken[token]
	return userID, ok
}

// Terminate clears the binding for the token. Unknown tokens are a no-op.
func (s *Store) Terminate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.byToken[token]
	if !ok {
		return
	}
	delete(s.byToken, token)
	if s.byUser[userID] == token {
		delete(s.byUser, userID)
	}
}

func generateToken() (string, error) {
	bytes := make([]byte, tokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
