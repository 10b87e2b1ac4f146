package service

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/propfolio/backend/internal/model"
	"github.com/propfolio/backend/internal/repository"
)

// PortfolioService is the composition root of the metrics engine. It wires
// the period resolver, latest-valuation resolution, debt aggregation,
// transaction windowing, the metric calculator, and the sorter into the
// two public operations: portfolio summary and per-property metrics.
//
// Each call independently re-reads valuations, loans, and transactions;
// nothing is cached across calls, so there is no staleness window. The
// engine performs no writes and both operations can run concurrently for
// any filter sets without interference.
type PortfolioService struct {
	propertyRepo       *repository.PropertyRepository
	valuationService   *ValuationService
	loanService        *LoanService
	transactionService *TransactionService

	// Now supplies the reference time for period resolution. Overridable
	// so tests can pin the reporting window to a fixed instant.
	Now func() time.Time
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	propertyRepo *repository.PropertyRepository,
	valuationService *ValuationService,
	loanService *LoanService,
	transactionService *TransactionService,
) *PortfolioService {
	return &PortfolioService{
		propertyRepo:       propertyRepo,
		valuationService:   valuationService,
		loanService:        loanService,
		transactionService: transactionService,
		Now:                time.Now,
	}
}

// GetSummary computes the scalar roll-up for the owner's filtered property
// set over the given reporting period. An empty or fully-filtered-out set
// is not an error: the result is a zero record with nil ratios.
func (s *PortfolioService) GetSummary(userID string, period model.Period, filter model.PropertyFilter) (model.PortfolioSummary, error) {
	rows, err := s.collectMetrics(userID, period, filter)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	return CalculateSummary(rows), nil
}

// GetPropertyMetrics computes one metric record per property in the
// owner's filtered set, ordered by the requested key. The filter set is
// identical to GetSummary's, so the listing always reconciles with the
// summary for the same inputs. An empty filtered set yields an empty list.
func (s *PortfolioService) GetPropertyMetrics(userID string, period model.Period, filter model.PropertyFilter, sortBy model.SortKey, order model.SortOrder) ([]model.PropertyMetrics, error) {
	rows, err := s.collectMetrics(userID, period, filter)
	if err != nil {
		return nil, err
	}

	if err := SortMetrics(rows, sortBy, order); err != nil {
		return nil, err
	}

	return rows, nil
}

// collectMetrics runs the shared pipeline behind both public operations:
// resolve the window, filter the property set, fan out the three data
// fetches, join, and calculate.
//
// The filtered property-ID set is computed once and every fetch observes
// that same set. The three fetches are independent of one another and run
// concurrently; the calculator joins on all of them. Any fetch error
// surfaces unchanged, with no retries and no partial results.
func (s *PortfolioService) collectMetrics(userID string, period model.Period, filter model.PropertyFilter) ([]model.PropertyMetrics, error) {
	window, err := ResolvePeriod(period, s.Now())
	if err != nil {
		return nil, err
	}

	properties, err := s.propertyRepo.GetProperties(userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if filter.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	if len(filtered) == 0 {
		return []model.PropertyMetrics{}, nil
	}

	propertyIDs := make([]string, len(filtered))
	for i, p := range filtered {
		propertyIDs[i] = p.ID
	}

	var (
		latestValues map[string]model.Valuation
		debtTotals   map[string]float64
		windowedTxns map[string][]model.Transaction
		fetchGroup   errgroup.Group
	)

	fetchGroup.Go(func() error {
		var err error
		latestValues, err = s.valuationService.LatestValues(userID, propertyIDs)
		return err
	})
	fetchGroup.Go(func() error {
		var err error
		debtTotals, err = s.loanService.TotalDebt(userID, propertyIDs)
		return err
	})
	fetchGroup.Go(func() error {
		var err error
		windowedTxns, err = s.transactionService.WindowedByProperty(userID, propertyIDs, window)
		return err
	})

	if err := fetchGroup.Wait(); err != nil {
		return nil, err
	}

	rows := make([]model.PropertyMetrics, len(filtered))
	for i, p := range filtered {
		var latest *model.Valuation
		if v, ok := latestValues[p.ID]; ok {
			latest = &v
		}

		rows[i] = CalculateMetrics(p, latest, debtTotals[p.ID], windowedTxns[p.ID], window.Multiplier)
	}

	return rows, nil
}
