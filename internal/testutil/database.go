package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Property table
		CREATE TABLE property (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			address VARCHAR(200) NOT NULL,
			suburb VARCHAR(100) NOT NULL,
			state VARCHAR(10) NOT NULL,
			entity_name VARCHAR(100) NOT NULL DEFAULT '',
			purchase_price FLOAT NOT NULL CHECK (purchase_price >= 0),
			purchase_date DATE NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'active',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Valuation table
		CREATE TABLE valuation (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			property_id VARCHAR(36) NOT NULL,
			estimated_value FLOAT NOT NULL,
			value_date DATE NOT NULL,
			source VARCHAR(10) NOT NULL DEFAULT 'manual',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(property_id) REFERENCES property(id) ON DELETE CASCADE
		);

		-- Loan table
		CREATE TABLE loan (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			property_id VARCHAR(36) NOT NULL,
			lender VARCHAR(100) NOT NULL DEFAULT '',
			current_balance FLOAT NOT NULL,
			interest_rate FLOAT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(property_id) REFERENCES property(id) ON DELETE CASCADE
		);

		-- Bank transaction table
		CREATE TABLE bank_transaction (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			property_id VARCHAR(36),
			date DATE NOT NULL,
			amount FLOAT NOT NULL,
			type VARCHAR(10) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(property_id) REFERENCES property(id) ON DELETE SET NULL
		);

		-- System setting table
		CREATE TABLE system_setting (
			key VARCHAR(50) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Indexes for performance
		CREATE INDEX idx_property_user ON property(user_id);
		CREATE INDEX idx_valuation_property_date ON valuation(property_id, value_date);
		CREATE INDEX idx_loan_property ON loan(property_id);
		CREATE INDEX idx_transaction_user_date ON bank_transaction(user_id, date);
		CREATE INDEX idx_transaction_property ON bank_transaction(property_id);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"bank_transaction",
		"loan",
		"valuation",
		"property",
		"system_setting",
	}

	for _, table := range tables {
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
