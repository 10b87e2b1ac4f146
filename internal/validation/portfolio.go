package validation

import (
	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
)

// ValidatePeriod checks a reporting period against the closed enumeration.
// An empty value is rejected too: callers must always say which window
// they want.
func ValidatePeriod(period model.Period) error {
	switch period {
	case model.PeriodMonthly, model.PeriodQuarterly, model.PeriodAnnual:
		return nil
	default:
		return apperrors.ErrInvalidPeriod
	}
}

// ValidateSortKey checks a sort key against the closed enumeration.
func ValidateSortKey(key model.SortKey) error {
	switch key {
	case model.SortByCashFlow, model.SortByEquity, model.SortByLVR, model.SortByAlphabetical:
		return nil
	default:
		return apperrors.ErrInvalidSortKey
	}
}

// ValidateSortOrder checks a sort order against asc/desc.
func ValidateSortOrder(order model.SortOrder) error {
	switch order {
	case model.SortAsc, model.SortDesc:
		return nil
	default:
		return apperrors.ErrInvalidSortOrder
	}
}

// ValidateStatusFilter checks an optional status filter; empty means "any".
func ValidateStatusFilter(status model.PropertyStatus) error {
	switch status {
	case "", model.PropertyStatusActive, model.PropertyStatusSold:
		return nil
	default:
		return apperrors.ErrInvalidStatus
	}
}
