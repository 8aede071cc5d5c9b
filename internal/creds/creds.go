// Package creds implements the username/password credential store used by
// the sign-up and login screens.
package creds

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Credential errors. All are user-correctable and surfaced as transient
// inline messages.
var (
	ErrEmptyField    = errors.New("username and password cannot be empty")
	ErrDuplicateUser = errors.New("username already exists")
	ErrWeakPassword  = errors.New("password must be 8+ chars incl. upper, lower, digit, and symbol")
	ErrUnknownUser   = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect username or password")
)

// passwordSymbols is the punctuation set accepted by the strength rule.
const passwordSymbols = "!@#$%^&*()_+-=[]{}|;':\",.<>?/"

// Store maps usernames to password hashes, backed by a single JSON file
// loaded whole at start and overwritten whole on every account creation.
type Store struct {
	path  string
	users map[string]string
}

// Load reads the credential file at path. A missing file yields an empty
// store.
func Load(path string) (*Store, error) {
	s := &Store{path: path, users: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	if err := json.Unmarshal(data, &s.users); err != nil {
		return nil, fmt.Errorf("failed to parse credential file: %w", err)
	}
	return s, nil
}

// Register creates a new account and persists the store immediately.
func (s *Store) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyField
	}
	if _, exists := s.users[username]; exists {
		return ErrDuplicateUser
	}
	if !StrongPassword(password) {
		return ErrWeakPassword
	}

	s.users[username] = HashPassword(password)
	return s.save()
}

// Authenticate checks a username/password pair against the store.
func (s *Store) Authenticate(username, password string) error {
	hash, exists := s.users[username]
	if !exists {
		return ErrUnknownUser
	}
	if hash != HashPassword(password) {
		return ErrWrongPassword
	}
	return nil
}

// HashPassword returns the hex SHA-256 digest of password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// StrongPassword reports whether password satisfies the strength rule:
// at least 8 characters with at least one uppercase letter, one lowercase
// letter, one digit, and one symbol from the accepted punctuation set.
func StrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

func (s *Store) save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s.users, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	return nil
}
