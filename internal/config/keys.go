package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService   = "studyplan"
	holidayKeyUser   = "holiday-api-key"
	assistantKeyUser = "assistant-api-key"
)

// DataDir returns the path to the data directory for per-user storage.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/studyplan/
func DataDir() (string, error) {
	// Check XDG_DATA_HOME first
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, "studyplan")
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// UserDataDir returns the directory holding the per-user task files.
func UserDataDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "user_data"), nil
}

// UsersFilePath returns the path of the credential file.
func UsersFilePath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "users.json"), nil
}

// HolidayAPIKey retrieves the holiday API key.
// Priority: 1. CALENDARIFIC_API_KEY env var, 2. System keyring,
// 3. Key file, 4. Config value
func HolidayAPIKey(cfg *Config) string {
	return lookupKey("CALENDARIFIC_API_KEY", holidayKeyUser, cfg.Holidays.APIKey)
}

// AssistantAPIKey retrieves the assistant API key.
// Priority: 1. OPENAI_API_KEY env var, 2. System keyring, 3. Key file,
// 4. Config value
func AssistantAPIKey(cfg *Config) string {
	return lookupKey("OPENAI_API_KEY", assistantKeyUser, cfg.Assistant.APIKey)
}

// SaveHolidayAPIKey stores the holiday API key securely.
// Tries the system keyring first, falls back to a key file.
func SaveHolidayAPIKey(key string) error {
	return saveKey(holidayKeyUser, key)
}

// SaveAssistantAPIKey stores the assistant API key securely.
func SaveAssistantAPIKey(key string) error {
	return saveKey(assistantKeyUser, key)
}

func lookupKey(envVar, keyringUser, configValue string) string {
	// Environment variable has highest priority, allowing override
	if key := os.Getenv(envVar); key != "" {
		return strings.TrimSpace(key)
	}

	if key, err := keyring.Get(keyringService, keyringUser); err == nil && key != "" {
		return strings.TrimSpace(key)
	}

	if dataDir, err := DataDir(); err == nil {
		data, err := os.ReadFile(filepath.Join(dataDir, "."+keyringUser))
		if err == nil {
			if key := strings.TrimSpace(string(data)); key != "" {
				return key
			}
		}
	}

	return strings.TrimSpace(configValue)
}

func saveKey(keyringUser, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	// Try keyring first
	if err := keyring.Set(keyringService, keyringUser, key); err == nil {
		return nil
	}

	// Fall back to file storage
	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	keyPath := filepath.Join(dataDir, "."+keyringUser)
	if err := os.WriteFile(keyPath, []byte(key), 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	return nil
}
