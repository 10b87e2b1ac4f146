package model

import "time"

// Valuation sources distinguish manually entered figures from the
// automated feed so the refresh job can be audited.
const (
	ValuationSourceManual = "manual"
	ValuationSourceAVM    = "avm"
)

// Valuation is a point-in-time estimate of a property's market value.
// A property accumulates valuations over time; metric calculations use
// only the latest one per property.
type Valuation struct {
	ID             string    `json:"id"`
	PropertyID     string    `json:"propertyId"`
	EstimatedValue float64   `json:"estimatedValue"`
	ValueDate      time.Time `json:"valueDate"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}
