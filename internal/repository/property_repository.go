package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
)

// PropertyRepository provides data access methods for the property table.
// Every query is scoped to an owner: callers pass the user ID of the
// already-authenticated portfolio owner.
type PropertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new PropertyRepository with the provided database connection.
func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// GetProperties retrieves all properties belonging to the given owner.
// Returns an empty slice if the owner has no properties.
func (s *PropertyRepository) GetProperties(userID string) ([]model.Property, error) {
	query := `
		SELECT id, user_id, address, suburb, state, entity_name,
		       purchase_price, purchase_date, status, created_at
		FROM property
		WHERE user_id = ?
		ORDER BY created_at, id
	`

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query property table: %w", err)
	}
	defer rows.Close()

	properties := []model.Property{}

	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property table: %w", err)
	}

	return properties, nil
}

// GetActiveProperties retrieves active properties across all owners.
// Used only by the valuation refresh job, which runs system-wide.
func (s *PropertyRepository) GetActiveProperties() ([]model.Property, error) {
	query := `
		SELECT id, user_id, address, suburb, state, entity_name,
		       purchase_price, purchase_date, status, created_at
		FROM property
		WHERE status = ?
		ORDER BY created_at, id
	`

	rows, err := s.db.Query(query, model.PropertyStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query property table: %w", err)
	}
	defer rows.Close()

	properties := []model.Property{}

	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property table: %w", err)
	}

	return properties, nil
}

// GetPropertyOnID retrieves a single property by ID, scoped to the owner.
// Returns ErrPropertyNotFound when the property does not exist or belongs
// to a different owner.
func (s *PropertyRepository) GetPropertyOnID(userID, propertyID string) (model.Property, error) {
	query := `
		SELECT id, user_id, address, suburb, state, entity_name,
		       purchase_price, purchase_date, status, created_at
		FROM property
		WHERE id = ? AND user_id = ?
	`

	row := s.db.QueryRow(query, propertyID, userID)

	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return model.Property{}, apperrors.ErrPropertyNotFound
	}
	if err != nil {
		return model.Property{}, err
	}

	return p, nil
}

// CreateProperty inserts a new property row.
func (s *PropertyRepository) CreateProperty(p model.Property) error {
	query := `
		INSERT INTO property (id, user_id, address, suburb, state, entity_name,
		                      purchase_price, purchase_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		p.ID,
		p.UserID,
		p.Address,
		p.Suburb,
		p.State,
		p.EntityName,
		p.PurchasePrice,
		p.PurchaseDate.Format("2006-01-02"),
		p.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into property table: %w", err)
	}

	return nil
}

// UpdateProperty updates the mutable attributes of a property.
// Returns ErrPropertyNotFound when no row matched.
func (s *PropertyRepository) UpdateProperty(p model.Property) error {
	query := `
		UPDATE property
		SET address = ?, suburb = ?, state = ?, entity_name = ?,
		    purchase_price = ?, purchase_date = ?, status = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.Exec(query,
		p.Address,
		p.Suburb,
		p.State,
		p.EntityName,
		p.PurchasePrice,
		p.PurchaseDate.Format("2006-01-02"),
		p.Status,
		p.ID,
		p.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update property table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}

// DeleteProperty removes a property and, via foreign keys, its valuations
// and loans. Returns ErrPropertyNotFound when no row matched.
func (s *PropertyRepository) DeleteProperty(userID, propertyID string) error {
	result, err := s.db.Exec(`DELETE FROM property WHERE id = ? AND user_id = ?`, propertyID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete from property table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(row scanner) (model.Property, error) {
	var p model.Property
	var purchaseDateStr, createdAtStr string

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Address,
		&p.Suburb,
		&p.State,
		&p.EntityName,
		&p.PurchasePrice,
		&purchaseDateStr,
		&p.Status,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Property{}, err
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to scan property table results: %w", err)
	}

	p.PurchaseDate, err = ParseTime(purchaseDateStr)
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to parse purchase date: %w", err)
	}

	p.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return p, nil
}
