package validation_test

import (
	"errors"
	"testing"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
	"github.com/propfolio/backend/internal/validation"
)

func TestValidatePeriod(t *testing.T) {
	tests := []struct {
		name    string
		period  model.Period
		wantErr bool
	}{
		{"monthly", model.PeriodMonthly, false},
		{"quarterly", model.PeriodQuarterly, false},
		{"annual", model.PeriodAnnual, false},
		{"empty", model.Period(""), true},
		{"unknown", model.Period("weekly"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidatePeriod(tt.period)
			if tt.wantErr && !errors.Is(err, apperrors.ErrInvalidPeriod) {
				t.Errorf("Expected ErrInvalidPeriod, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateSortKey(t *testing.T) {
	for _, key := range []model.SortKey{model.SortByCashFlow, model.SortByEquity, model.SortByLVR, model.SortByAlphabetical} {
		if err := validation.ValidateSortKey(key); err != nil {
			t.Errorf("Expected %s to be valid, got %v", key, err)
		}
	}

	if err := validation.ValidateSortKey(model.SortKey("price")); !errors.Is(err, apperrors.ErrInvalidSortKey) {
		t.Errorf("Expected ErrInvalidSortKey, got %v", err)
	}
	if err := validation.ValidateSortKey(model.SortKey("")); !errors.Is(err, apperrors.ErrInvalidSortKey) {
		t.Errorf("Expected ErrInvalidSortKey for empty key, got %v", err)
	}
}

func TestValidateSortOrder(t *testing.T) {
	if err := validation.ValidateSortOrder(model.SortAsc); err != nil {
		t.Errorf("Expected asc to be valid, got %v", err)
	}
	if err := validation.ValidateSortOrder(model.SortDesc); err != nil {
		t.Errorf("Expected desc to be valid, got %v", err)
	}
	if err := validation.ValidateSortOrder(model.SortOrder("sideways")); !errors.Is(err, apperrors.ErrInvalidSortOrder) {
		t.Errorf("Expected ErrInvalidSortOrder, got %v", err)
	}
}

func TestValidateStatusFilter(t *testing.T) {
	// Empty means "any" and is allowed; unknown values are not.
	if err := validation.ValidateStatusFilter(""); err != nil {
		t.Errorf("Expected empty filter to be valid, got %v", err)
	}
	if err := validation.ValidateStatusFilter(model.PropertyStatusActive); err != nil {
		t.Errorf("Expected active to be valid, got %v", err)
	}
	if err := validation.ValidateStatusFilter(model.PropertyStatus("demolished")); !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}
