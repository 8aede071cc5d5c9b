package creds

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const goodPassword = "Str0ng!pass"

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s, path
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", "alice", goodPassword, nil},
		{"empty username", "", goodPassword, ErrEmptyField},
		{"empty password", "alice", "", ErrEmptyField},
		{"too short", "alice", "S0r!t", ErrWeakPassword},
		{"no uppercase", "alice", "weak1pass!", ErrWeakPassword},
		{"no lowercase", "alice", "WEAK1PASS!", ErrWeakPassword},
		{"no digit", "alice", "Weakpass!", ErrWeakPassword},
		{"no symbol", "alice", "Weak1pass", ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			err := s.Register(tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Register("alice", goodPassword); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	// Duplicate wins over password validity: even a weak password reports
	// the duplicate.
	if err := s.Register("alice", "weak"); !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("Register duplicate = %v, want ErrDuplicateUser", err)
	}
	if err := s.Register("alice", goodPassword); !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("Register duplicate = %v, want ErrDuplicateUser", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Register("alice", goodPassword); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", "alice", goodPassword, nil},
		{"unknown user", "bob", goodPassword, ErrUnknownUser},
		{"wrong password", "alice", "Wr0ng!pass", ErrWrongPassword},
		{"case-sensitive username", "Alice", goodPassword, ErrUnknownUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Authenticate(tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Authenticate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterPersistsImmediately(t *testing.T) {
	s, path := newTestStore(t)
	if err := s.Register("alice", goodPassword); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("credential file not written: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if err := reloaded.Authenticate("alice", goodPassword); err != nil {
		t.Errorf("Authenticate after reload = %v", err)
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	if HashPassword("secret") != HashPassword("secret") {
		t.Error("hash must be deterministic")
	}
	if HashPassword("secret") == HashPassword("Secret") {
		t.Error("different passwords must not collide trivially")
	}
	// Hex SHA-256 digest length.
	if got := len(HashPassword("secret")); got != 64 {
		t.Errorf("hash length = %d, want 64", got)
	}
}

func TestStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"Ab1?xyzw", true},
		{"abc", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSymbols11", false},
	}

	for _, tt := range tests {
		if got := StrongPassword(tt.password); got != tt.want {
			t.Errorf("StrongPassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}
