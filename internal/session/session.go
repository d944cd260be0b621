package session

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// set of storage keys owned by the session store
const (
	KeyToken = "utec_diagram_token"
	KeyUser  = "utec_diagram_user"
)

// set of authorization header values
const (
	HeaderAuthorization = "Authorization"
	bearerScheme        = "Bearer "
)

// User is the authenticated user's profile
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Credential is the token and user profile pair of an authenticated session
type Credential struct {
	Token string
	User  User
}

// Store manages the persisted session credential
type Store struct {
	storage Storage
}

// NewStore creates a new session store backed by the provided storage
func NewStore(storage Storage) *Store {
	return &Store{storage}
}

// SaveCredential persists the token along with the user profile
// If either write fails, the previously stored credential is left in place
func (s *Store) SaveCredential(token string, user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	if batch, ok := s.storage.(BatchStorage); ok {
		if err := batch.SetAll(map[string]string{KeyToken: token, KeyUser: string(data)}); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	}

	prevToken, hasToken := s.storage.Get(KeyToken)
	prevUser, hasUser := s.storage.Get(KeyUser)

	if err := s.storage.Set(KeyToken, token); err != nil {
		s.restore(KeyToken, prevToken, hasToken)
		return fmt.Errorf("failed to save session: %w", err)
	}

	if err := s.storage.Set(KeyUser, string(data)); err != nil {
		s.restore(KeyToken, prevToken, hasToken)
		s.restore(KeyUser, prevUser, hasUser)
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *Store) restore(key, value string, present bool) {
	if present {
		_ = s.storage.Set(key, value)
		return
	}
	_ = s.storage.Remove(key)
}

// Token returns the session token, if present
func (s *Store) Token() (string, bool) {
	token, ok := s.storage.Get(KeyToken)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// User returns the session user, if present
// A stored user that cannot be parsed is treated as absent
func (s *Store) User() (User, bool) {
	data, ok := s.storage.Get(KeyUser)
	if !ok || data == "" {
		return User{}, false
	}

	var user User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return User{}, false
	}
	return user, true
}

// Credential returns the full session credential, if both parts are present
func (s *Store) Credential() (Credential, bool) {
	token, ok := s.Token()
	if !ok {
		return Credential{}, false
	}
	user, ok := s.User()
	if !ok {
		return Credential{}, false
	}
	return Credential{token, user}, true
}

// Clear removes the session token and user
func (s *Store) Clear() error {
	tokenErr := s.storage.Remove(KeyToken)
	userErr := s.storage.Remove(KeyUser)

	if tokenErr != nil {
		return fmt.Errorf("failed to clear session: %w", tokenErr)
	}
	if userErr != nil {
		return fmt.Errorf("failed to clear session: %w", userErr)
	}
	return nil
}

// IsAuthenticated returns true when a session token is present
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// AuthorizationHeader returns the bearer authorization header for the session token
// or an empty header when no token is present
func (s *Store) AuthorizationHeader() http.Header {
	header := http.Header{}
	if token, ok := s.Token(); ok {
		header.Set(HeaderAuthorization, bearerScheme+token)
	}
	return header
}
