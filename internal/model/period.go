package model

import "time"

// Period is the reporting granularity for windowed metrics.
type Period string

const (
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodAnnual    Period = "annual"
)

// PeriodWindow is a concrete reporting window derived from a Period and a
// reference instant. Both dates are UTC midnight and the window is
// inclusive on both ends at day granularity. Multiplier projects a
// window total to a yearly figure and must stay in step with the window
// length (monthly=12, quarterly=4, annual=1) or yields come out wrong.
type PeriodWindow struct {
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Multiplier int       `json:"multiplier"`
}

// Contains reports whether a date falls inside the window.
func (w PeriodWindow) Contains(date time.Time) bool {
	return !date.Before(w.StartDate) && !date.After(w.EndDate)
}
