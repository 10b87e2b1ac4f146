package service

import (
	"database/sql"
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/propfolio/backend/internal/database"
	"github.com/propfolio/backend/internal/repository"
	"github.com/propfolio/backend/internal/version"
)

// avmTokenKey is the system_setting row holding the encrypted provider token.
const avmTokenKey = "avm_api_token"

// SystemService handles system-related operations: health, version, and
// storage of the AVM provider credential. The credential is encrypted with
// a fernet key before it touches the database.
type SystemService struct {
	db           *sql.DB
	settingsRepo *repository.SettingsRepository
	fernetKey    *fernet.Key
}

// NewSystemService creates a new SystemService. fernetKey is the base64
// fernet key from configuration; it may be empty, in which case token
// storage is disabled but health/version still work.
func NewSystemService(db *sql.DB, settingsRepo *repository.SettingsRepository, fernetKey string) (*SystemService, error) {
	svc := &SystemService{
		db:           db,
		settingsRepo: settingsRepo,
	}

	if fernetKey != "" {
		key, err := fernet.DecodeKey(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		svc.fernetKey = key
	}

	return svc, nil
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the build version string.
func (s *SystemService) CheckVersion() string {
	return version.Version
}

// SetAVMToken encrypts and stores the AVM provider API token.
func (s *SystemService) SetAVMToken(token string) error {
	if s.fernetKey == nil {
		return fmt.Errorf("fernet key not configured")
	}

	encrypted, err := fernet.EncryptAndSign([]byte(token), s.fernetKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt token: %w", err)
	}

	return s.settingsRepo.SetSetting(avmTokenKey, string(encrypted))
}

// GetAVMToken retrieves and decrypts the stored AVM provider API token.
// Tokens do not expire; rotation happens by overwriting.
func (s *SystemService) GetAVMToken() (string, error) {
	if s.fernetKey == nil {
		return "", fmt.Errorf("fernet key not configured")
	}

	stored, err := s.settingsRepo.GetSetting(avmTokenKey)
	if err != nil {
		return "", err
	}

	token := fernet.VerifyAndDecrypt([]byte(stored), 0, []*fernet.Key{s.fernetKey})
	if token == nil {
		return "", fmt.Errorf("failed to decrypt stored token")
	}

	return string(token), nil
}
