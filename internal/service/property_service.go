package service

import (
	"github.com/google/uuid"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
	"github.com/propfolio/backend/internal/repository"
)

// PropertyService owns the thin CRUD surface over properties. The metrics
// engine reads properties through PortfolioService, not here.
type PropertyService struct {
	propertyRepo *repository.PropertyRepository
}

// NewPropertyService creates a new PropertyService with the provided repository.
func NewPropertyService(propertyRepo *repository.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

// GetProperties lists all of the owner's properties.
func (s *PropertyService) GetProperties(userID string) ([]model.Property, error) {
	return s.propertyRepo.GetProperties(userID)
}

// GetProperty retrieves one of the owner's properties.
func (s *PropertyService) GetProperty(userID, propertyID string) (model.Property, error) {
	return s.propertyRepo.GetPropertyOnID(userID, propertyID)
}

// CreateProperty records a new property for the owner. New properties
// always start active.
func (s *PropertyService) CreateProperty(p model.Property) (model.Property, error) {
	if p.PurchasePrice < 0 {
		return model.Property{}, apperrors.ErrNegativePurchasePrice
	}

	p.ID = uuid.NewString()
	p.Status = model.PropertyStatusActive

	if err := s.propertyRepo.CreateProperty(p); err != nil {
		return model.Property{}, err
	}

	return p, nil
}

// UpdateProperty updates a property's attributes. The status lifecycle is
// one-way: once sold, a property cannot be reactivated.
func (s *PropertyService) UpdateProperty(p model.Property) (model.Property, error) {
	if p.PurchasePrice < 0 {
		return model.Property{}, apperrors.ErrNegativePurchasePrice
	}

	existing, err := s.propertyRepo.GetPropertyOnID(p.UserID, p.ID)
	if err != nil {
		return model.Property{}, err
	}

	if existing.Status == model.PropertyStatusSold && p.Status == model.PropertyStatusActive {
		return model.Property{}, apperrors.ErrStatusTransition
	}

	if err := s.propertyRepo.UpdateProperty(p); err != nil {
		return model.Property{}, err
	}

	return p, nil
}

// DeleteProperty removes one of the owner's properties along with its
// valuations and loans.
func (s *PropertyService) DeleteProperty(userID, propertyID string) error {
	return s.propertyRepo.DeleteProperty(userID, propertyID)
}
