package service

import (
	"time"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
)

// ResolvePeriod converts a reporting period into a concrete calendar window
// anchored to the given reference time. The reference time is an explicit
// parameter rather than a wall-clock read so callers (and tests) control
// what "now" means.
//
// monthly covers the current calendar month, quarterly the current calendar
// quarter, annual the current calendar year. Start and end are UTC midnight
// and both ends are inclusive. The returned multiplier (12/4/1) is the
// annualization factor tied to the window length.
func ResolvePeriod(period model.Period, now time.Time) (model.PeriodWindow, error) {
	now = now.UTC()

	var start, end time.Time
	var multiplier int

	switch period {
	case model.PeriodMonthly:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
		multiplier = 12
	case model.PeriodQuarterly:
		quarterStart := time.Month((int(now.Month())-1)/3*3 + 1)
		start = time.Date(now.Year(), quarterStart, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 3, -1)
		multiplier = 4
	case model.PeriodAnnual:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		multiplier = 1
	default:
		return model.PeriodWindow{}, apperrors.ErrInvalidPeriod
	}

	return model.PeriodWindow{
		StartDate:  start,
		EndDate:    end,
		Multiplier: multiplier,
	}, nil
}
