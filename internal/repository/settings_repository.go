package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/propfolio/backend/internal/errors"
)

// SettingsRepository provides access to the system_setting key/value table.
// Values are stored as opaque strings; encryption of sensitive values is
// the service layer's responsibility.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting returns the stored value for a key.
// Returns ErrSettingNotFound when the key has never been set.
func (s *SettingsRepository) GetSetting(key string) (string, error) {
	var value string

	err := s.db.QueryRow(`SELECT value FROM system_setting WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query system_setting table: %w", err)
	}

	return value, nil
}

// SetSetting stores or replaces the value for a key.
func (s *SettingsRepository) SetSetting(key, value string) error {
	query := `
		INSERT INTO system_setting (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to upsert system_setting table: %w", err)
	}

	return nil
}
