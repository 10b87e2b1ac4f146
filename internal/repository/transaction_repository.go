package repository

import (
	"database/sql"
	"fmt"
	"time"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
)

// TransactionRepository provides data access methods for the
// bank_transaction table. Transactions belong to a user directly and may
// optionally be linked to one of the user's properties.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetPropertyTransactions retrieves property-linked transactions for the
// given properties within the date range (inclusive on both ends), grouped
// by property ID. Transactions without a property link are excluded here;
// they exist for the user's books but never enter the metrics engine.
//
// Only property IDs that actually have transactions appear as keys; the
// service layer fills in empty slices for the rest so callers can tell
// "no transactions this period" apart from "property not requested".
func (s *TransactionRepository) GetPropertyTransactions(userID string, propertyIDs []string, startDate, endDate time.Time) (map[string][]model.Transaction, error) {
	if len(propertyIDs) == 0 {
		return make(map[string][]model.Transaction), nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT id, user_id, property_id, date, amount, type, description, created_at
		FROM bank_transaction
		WHERE user_id = ?
		AND property_id IS NOT NULL
		AND property_id IN (` + placeholders(len(propertyIDs)) + `)
		AND date >= ?
		AND date <= ?
		ORDER BY date ASC
	`

	args := make([]any, 0, len(propertyIDs)+3)
	args = append(args, userID)
	for _, id := range propertyIDs {
		args = append(args, id)
	}
	args = append(args, startDate.Format("2006-01-02"))
	args = append(args, endDate.Format("2006-01-02"))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank_transaction table: %w", err)
	}
	defer rows.Close()

	transactionsByProperty := make(map[string][]model.Transaction)

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactionsByProperty[t.PropertyID] = append(transactionsByProperty[t.PropertyID], t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank_transaction table: %w", err)
	}

	return transactionsByProperty, nil
}

// GetTransactions retrieves all of a user's transactions within the date
// range (inclusive), linked or not, sorted by date ascending.
func (s *TransactionRepository) GetTransactions(userID string, startDate, endDate time.Time) ([]model.Transaction, error) {
	query := `
		SELECT id, user_id, property_id, date, amount, type, description, created_at
		FROM bank_transaction
		WHERE user_id = ?
		AND date >= ?
		AND date <= ?
		ORDER BY date ASC
	`

	rows, err := s.db.Query(query, userID, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query bank_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank_transaction table: %w", err)
	}

	return transactions, nil
}

// CreateTransaction inserts a new transaction row. An empty PropertyID is
// stored as NULL.
func (s *TransactionRepository) CreateTransaction(t model.Transaction) error {
	query := `
		INSERT INTO bank_transaction (id, user_id, property_id, date, amount, type, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var propertyID any
	if t.PropertyID != "" {
		propertyID = t.PropertyID
	}

	_, err := s.db.Exec(query,
		t.ID,
		t.UserID,
		propertyID,
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Type,
		t.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into bank_transaction table: %w", err)
	}

	return nil
}

// DeleteTransaction removes a transaction belonging to the user.
// Returns ErrTransactionNotFound when no row matched.
func (s *TransactionRepository) DeleteTransaction(userID, transactionID string) error {
	result, err := s.db.Exec(`DELETE FROM bank_transaction WHERE id = ? AND user_id = ?`, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete from bank_transaction table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var t model.Transaction
	var propertyID sql.NullString
	var dateStr, createdAtStr string

	err := rows.Scan(
		&t.ID,
		&t.UserID,
		&propertyID,
		&dateStr,
		&t.Amount,
		&t.Type,
		&t.Description,
		&createdAtStr,
	)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan bank_transaction table results: %w", err)
	}

	if propertyID.Valid {
		t.PropertyID = propertyID.String
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return t, nil
}
