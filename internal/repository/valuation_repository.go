package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
)

// ValuationRepository provides data access methods for the valuation table.
// Owner scoping happens through a join on the property table since
// valuations reference properties, not users.
type ValuationRepository struct {
	db *sql.DB
}

// NewValuationRepository creates a new ValuationRepository with the provided database connection.
func NewValuationRepository(db *sql.DB) *ValuationRepository {
	return &ValuationRepository{db: db}
}

// GetValuationsForProperties retrieves every valuation row for the given
// properties, grouped by property ID.
//
// Rows are ordered by value_date, then created_at, then id, all ascending.
// The latest-wins reduction in the service layer depends on this ordering
// for its tie-break rule; do not change it without changing that reduction.
//
// Returns an empty map if propertyIDs is empty.
func (s *ValuationRepository) GetValuationsForProperties(userID string, propertyIDs []string) (map[string][]model.Valuation, error) {
	if len(propertyIDs) == 0 {
		return make(map[string][]model.Valuation), nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT v.id, v.property_id, v.estimated_value, v.value_date, v.source, v.created_at
		FROM valuation v
		JOIN property p ON p.id = v.property_id
		WHERE p.user_id = ?
		AND v.property_id IN (` + placeholders(len(propertyIDs)) + `)
		ORDER BY v.value_date ASC, v.created_at ASC, v.id ASC
	`

	args := make([]any, 0, len(propertyIDs)+1)
	args = append(args, userID)
	for _, id := range propertyIDs {
		args = append(args, id)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query valuation table: %w", err)
	}
	defer rows.Close()

	valuationsByProperty := make(map[string][]model.Valuation)

	for rows.Next() {
		v, err := scanValuation(rows)
		if err != nil {
			return nil, err
		}
		valuationsByProperty[v.PropertyID] = append(valuationsByProperty[v.PropertyID], v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating valuation table: %w", err)
	}

	return valuationsByProperty, nil
}

// GetValuationsOnProperty retrieves all valuations for one property,
// newest first, for the CRUD listing endpoint.
func (s *ValuationRepository) GetValuationsOnProperty(userID, propertyID string) ([]model.Valuation, error) {
	query := `
		SELECT v.id, v.property_id, v.estimated_value, v.value_date, v.source, v.created_at
		FROM valuation v
		JOIN property p ON p.id = v.property_id
		WHERE p.user_id = ? AND v.property_id = ?
		ORDER BY v.value_date DESC, v.created_at DESC
	`

	rows, err := s.db.Query(query, userID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query valuation table: %w", err)
	}
	defer rows.Close()

	valuations := []model.Valuation{}

	for rows.Next() {
		v, err := scanValuation(rows)
		if err != nil {
			return nil, err
		}
		valuations = append(valuations, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating valuation table: %w", err)
	}

	return valuations, nil
}

// CreateValuation inserts a new valuation row.
func (s *ValuationRepository) CreateValuation(v model.Valuation) error {
	query := `
		INSERT INTO valuation (id, property_id, estimated_value, value_date, source)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		v.ID,
		v.PropertyID,
		v.EstimatedValue,
		v.ValueDate.Format("2006-01-02"),
		v.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into valuation table: %w", err)
	}

	return nil
}

// DeleteValuation removes a valuation, scoped to the owner through the
// property join. Returns ErrValuationNotFound when no row matched.
func (s *ValuationRepository) DeleteValuation(userID, valuationID string) error {
	query := `
		DELETE FROM valuation
		WHERE id = ?
		AND property_id IN (SELECT id FROM property WHERE user_id = ?)
	`

	result, err := s.db.Exec(query, valuationID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete from valuation table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrValuationNotFound
	}

	return nil
}

func scanValuation(rows *sql.Rows) (model.Valuation, error) {
	var v model.Valuation
	var valueDateStr, createdAtStr string

	err := rows.Scan(
		&v.ID,
		&v.PropertyID,
		&v.EstimatedValue,
		&valueDateStr,
		&v.Source,
		&createdAtStr,
	)
	if err != nil {
		return model.Valuation{}, fmt.Errorf("failed to scan valuation table results: %w", err)
	}

	v.ValueDate, err = ParseTime(valueDateStr)
	if err != nil {
		return model.Valuation{}, fmt.Errorf("failed to parse value date: %w", err)
	}

	v.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Valuation{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return v, nil
}
