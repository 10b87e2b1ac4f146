package service

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
)

// SortMetrics orders per-property metric rows in place by the chosen key
// and direction. The sort is stable: rows with equal keys keep their input
// order, which for engine output means property creation order.
//
// A nil LVR sorts as 0 so unvalued properties stay in the listing instead
// of erroring out or being dropped. The alphabetical key compares suburbs
// with a locale-aware collator, not raw byte order.
//
// Returns an error for keys or orders outside the closed enumerations;
// that is a caller contract violation, not a data condition.
func SortMetrics(rows []model.PropertyMetrics, sortBy model.SortKey, order model.SortOrder) error {
	if order != model.SortAsc && order != model.SortDesc {
		return apperrors.ErrInvalidSortOrder
	}

	var cmp func(a, b model.PropertyMetrics) int

	switch sortBy {
	case model.SortByCashFlow:
		cmp = func(a, b model.PropertyMetrics) int {
			return compareFloat(a.CashFlow, b.CashFlow)
		}
	case model.SortByEquity:
		cmp = func(a, b model.PropertyMetrics) int {
			return compareFloat(a.Equity, b.Equity)
		}
	case model.SortByLVR:
		cmp = func(a, b model.PropertyMetrics) int {
			return compareFloat(lvrOrZero(a), lvrOrZero(b))
		}
	case model.SortByAlphabetical:
		collator := collate.New(language.English, collate.IgnoreCase)
		cmp = func(a, b model.PropertyMetrics) int {
			return collator.CompareString(a.Suburb, b.Suburb)
		}
	default:
		return apperrors.ErrInvalidSortKey
	}

	if order == model.SortDesc {
		asc := cmp
		cmp = func(a, b model.PropertyMetrics) int {
			return -asc(a, b)
		}
	}

	slices.SortStableFunc(rows, cmp)
	return nil
}

func lvrOrZero(m model.PropertyMetrics) float64 {
	if m.LVR == nil {
		return 0
	}
	return *m.LVR
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
