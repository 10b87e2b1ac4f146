package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/propfolio/backend/internal/model"
	"github.com/propfolio/backend/internal/repository"
)

// EstimateProvider supplies current market value estimates for an address.
// Implemented by the avm package; defined here so the refresh job can be
// tested against a stub.
type EstimateProvider interface {
	GetEstimate(ctx context.Context, address, suburb, state string) (float64, time.Time, error)
}

// ValuationService owns valuation business logic: the latest-wins
// resolution used by the metrics engine, the CRUD surface, and the
// provider-driven refresh job.
type ValuationService struct {
	valuationRepo *repository.ValuationRepository
	propertyRepo  *repository.PropertyRepository
}

// NewValuationService creates a new ValuationService with the provided repositories.
func NewValuationService(valuationRepo *repository.ValuationRepository, propertyRepo *repository.PropertyRepository) *ValuationService {
	return &ValuationService{
		valuationRepo: valuationRepo,
		propertyRepo:  propertyRepo,
	}
}

// LatestValues resolves the single most recent valuation per property.
//
// A property can accumulate many valuation rows over time; picking the
// first row the store happens to return would silently corrupt every
// downstream metric, so the max-by-date selection is an explicit reduction
// here rather than something left to query ordering.
//
// Rows arrive ordered by value_date, created_at, id ascending and the
// winner is replaced on a greater-or-equal value date, so when two
// valuations share the same date the most recently recorded one wins.
// That tie-break is deliberate and deterministic.
//
// The result has at most one entry per property and no entry at all for
// properties with zero valuations; callers treat absence as "no value".
// Returns an empty map without querying when propertyIDs is empty.
func (s *ValuationService) LatestValues(userID string, propertyIDs []string) (map[string]model.Valuation, error) {
	latest := make(map[string]model.Valuation)
	if len(propertyIDs) == 0 {
		return latest, nil
	}

	valuationsByProperty, err := s.valuationRepo.GetValuationsForProperties(userID, propertyIDs)
	if err != nil {
		return nil, err
	}

	for propertyID, valuations := range valuationsByProperty {
		winner := valuations[0]
		for _, v := range valuations[1:] {
			if !v.ValueDate.Before(winner.ValueDate) {
				winner = v
			}
		}
		latest[propertyID] = winner
	}

	return latest, nil
}

// GetValuations lists all valuations for one of the owner's properties,
// newest first. The property lookup doubles as the ownership check.
func (s *ValuationService) GetValuations(userID, propertyID string) ([]model.Valuation, error) {
	if _, err := s.propertyRepo.GetPropertyOnID(userID, propertyID); err != nil {
		return nil, err
	}
	return s.valuationRepo.GetValuationsOnProperty(userID, propertyID)
}

// AddValuation records a manual valuation against one of the owner's properties.
func (s *ValuationService) AddValuation(userID, propertyID string, estimatedValue float64, valueDate time.Time) (model.Valuation, error) {
	if _, err := s.propertyRepo.GetPropertyOnID(userID, propertyID); err != nil {
		return model.Valuation{}, err
	}

	v := model.Valuation{
		ID:             uuid.NewString(),
		PropertyID:     propertyID,
		EstimatedValue: estimatedValue,
		ValueDate:      valueDate,
		Source:         model.ValuationSourceManual,
	}

	if err := s.valuationRepo.CreateValuation(v); err != nil {
		return model.Valuation{}, err
	}

	return v, nil
}

// DeleteValuation removes one of the owner's valuations.
func (s *ValuationService) DeleteValuation(userID, valuationID string) error {
	return s.valuationRepo.DeleteValuation(userID, valuationID)
}

// RefreshFromProvider fetches a current estimate for every active property
// in the system and records it as an AVM-sourced valuation. Invoked by the
// scheduler; manual valuations are untouched and latest-wins resolution
// applies across both sources.
//
// Failures for individual properties are logged and skipped so one bad
// address does not starve the rest of the refresh. Returns the number of
// valuations written.
func (s *ValuationService) RefreshFromProvider(ctx context.Context, provider EstimateProvider) (int, error) {
	properties, err := s.propertyRepo.GetActiveProperties()
	if err != nil {
		return 0, fmt.Errorf("failed to load properties for refresh: %w", err)
	}

	refreshed := 0
	for _, p := range properties {
		if ctx.Err() != nil {
			return refreshed, ctx.Err()
		}

		value, asOf, err := provider.GetEstimate(ctx, p.Address, p.Suburb, p.State)
		if err != nil {
			log.Printf("valuation refresh skipped for %s: %v", p.ID, err)
			continue
		}

		v := model.Valuation{
			ID:             uuid.NewString(),
			PropertyID:     p.ID,
			EstimatedValue: value,
			ValueDate:      asOf,
			Source:         model.ValuationSourceAVM,
		}

		if err := s.valuationRepo.CreateValuation(v); err != nil {
			return refreshed, err
		}
		refreshed++
	}

	return refreshed, nil
}
