// Package testutil provides shared helpers for service and handler tests:
// an in-memory database with the production schema, fluent data factories,
// and pre-wired service constructors.
package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/propfolio/backend/internal/repository"
	"github.com/propfolio/backend/internal/service"
)

// NewTestPortfolioService creates a fully wired PortfolioService backed by
// the given test database.
func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	propertyRepo := repository.NewPropertyRepository(db)
	return service.NewPortfolioService(
		propertyRepo,
		NewTestValuationService(t, db),
		NewTestLoanService(t, db),
		NewTestTransactionService(t, db),
	)
}

// NewTestPropertyService creates a PropertyService backed by the given
// test database.
func NewTestPropertyService(t *testing.T, db *sql.DB) *service.PropertyService {
	t.Helper()

	return service.NewPropertyService(repository.NewPropertyRepository(db))
}

// NewTestValuationService creates a ValuationService backed by the given
// test database.
func NewTestValuationService(t *testing.T, db *sql.DB) *service.ValuationService {
	t.Helper()

	valuationRepo := repository.NewValuationRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	return service.NewValuationService(valuationRepo, propertyRepo)
}

// NewTestLoanService creates a LoanService backed by the given test database.
func NewTestLoanService(t *testing.T, db *sql.DB) *service.LoanService {
	t.Helper()

	loanRepo := repository.NewLoanRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	return service.NewLoanService(loanRepo, propertyRepo)
}

// NewTestTransactionService creates a TransactionService backed by the
// given test database.
func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	return service.NewTransactionService(transactionRepo, propertyRepo)
}

// NewTestSystemService creates a SystemService backed by the given test
// database. The fernet key is a fixed test key, so token storage works.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	// Base64 of 32 zero bytes, a valid fernet key for tests only.
	const testFernetKey = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

	settingsRepo := repository.NewSettingsRepository(db)
	svc, err := service.NewSystemService(db, settingsRepo, testFernetKey)
	if err != nil {
		t.Fatalf("Failed to create test system service: %v", err)
	}
	return svc
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeAddress generates a unique street address for testing.
//
// Example usage:
//
//	address := testutil.MakeAddress()
//	// Returns: "42 Test Street A1B2C3"
func MakeAddress() string {
	return "42 Test Street " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
