package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
)

// LoanRepository provides data access methods for the loan table.
// Like valuations, loans are owner-scoped through the property table.
type LoanRepository struct {
	db *sql.DB
}

// NewLoanRepository creates a new LoanRepository with the provided database connection.
func NewLoanRepository(db *sql.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// GetLoansForProperties retrieves all loans for the given properties,
// grouped by property ID. Properties without loans are simply absent from
// the map. Returns an empty map if propertyIDs is empty.
func (s *LoanRepository) GetLoansForProperties(userID string, propertyIDs []string) (map[string][]model.Loan, error) {
	if len(propertyIDs) == 0 {
		return make(map[string][]model.Loan), nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT l.id, l.property_id, l.lender, l.current_balance, l.interest_rate, l.created_at
		FROM loan l
		JOIN property p ON p.id = l.property_id
		WHERE p.user_id = ?
		AND l.property_id IN (` + placeholders(len(propertyIDs)) + `)
		ORDER BY l.created_at, l.id
	`

	args := make([]any, 0, len(propertyIDs)+1)
	args = append(args, userID)
	for _, id := range propertyIDs {
		args = append(args, id)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loan table: %w", err)
	}
	defer rows.Close()

	loansByProperty := make(map[string][]model.Loan)

	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loansByProperty[l.PropertyID] = append(loansByProperty[l.PropertyID], l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan table: %w", err)
	}

	return loansByProperty, nil
}

// GetLoansOnProperty retrieves all loans for one property for the CRUD
// listing endpoint.
func (s *LoanRepository) GetLoansOnProperty(userID, propertyID string) ([]model.Loan, error) {
	query := `
		SELECT l.id, l.property_id, l.lender, l.current_balance, l.interest_rate, l.created_at
		FROM loan l
		JOIN property p ON p.id = l.property_id
		WHERE p.user_id = ? AND l.property_id = ?
		ORDER BY l.created_at, l.id
	`

	rows, err := s.db.Query(query, userID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query loan table: %w", err)
	}
	defer rows.Close()

	loans := []model.Loan{}

	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan table: %w", err)
	}

	return loans, nil
}

// CreateLoan inserts a new loan row.
func (s *LoanRepository) CreateLoan(l model.Loan) error {
	query := `
		INSERT INTO loan (id, property_id, lender, current_balance, interest_rate)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query, l.ID, l.PropertyID, l.Lender, l.CurrentBalance, l.InterestRate)
	if err != nil {
		return fmt.Errorf("failed to insert into loan table: %w", err)
	}

	return nil
}

// UpdateLoanBalance sets the current balance of a loan, scoped to the owner.
// Returns ErrLoanNotFound when no row matched.
func (s *LoanRepository) UpdateLoanBalance(userID, loanID string, balance float64) error {
	query := `
		UPDATE loan
		SET current_balance = ?
		WHERE id = ?
		AND property_id IN (SELECT id FROM property WHERE user_id = ?)
	`

	result, err := s.db.Exec(query, balance, loanID, userID)
	if err != nil {
		return fmt.Errorf("failed to update loan table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrLoanNotFound
	}

	return nil
}

// DeleteLoan removes a loan, scoped to the owner.
// Returns ErrLoanNotFound when no row matched.
func (s *LoanRepository) DeleteLoan(userID, loanID string) error {
	query := `
		DELETE FROM loan
		WHERE id = ?
		AND property_id IN (SELECT id FROM property WHERE user_id = ?)
	`

	result, err := s.db.Exec(query, loanID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete from loan table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrLoanNotFound
	}

	return nil
}

func scanLoan(rows *sql.Rows) (model.Loan, error) {
	var l model.Loan
	var createdAtStr string

	err := rows.Scan(
		&l.ID,
		&l.PropertyID,
		&l.Lender,
		&l.CurrentBalance,
		&l.InterestRate,
		&createdAtStr,
	)
	if err != nil {
		return model.Loan{}, fmt.Errorf("failed to scan loan table results: %w", err)
	}

	l.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return l, nil
}
