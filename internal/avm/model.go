package avm

import "time"

// Response represents the raw JSON response from the AVM estimate endpoint.
// The provider returns one estimate object per matched address plus an
// optional top-level error message.
type Response struct {
	Estimates []RawEstimate `json:"estimates"`
	Error     *string       `json:"error"`
}

// RawEstimate is one matched address in the provider response, as the
// provider serializes it.
type RawEstimate struct {
	Address        string  `json:"address"`
	Suburb         string  `json:"suburb"`
	State          string  `json:"state"`
	Estimate       float64 `json:"estimate"`
	ConfidenceLow  float64 `json:"confidence_low"`
	ConfidenceHigh float64 `json:"confidence_high"`
	AsOf           string  `json:"as_of"`
}

// Estimate is the application's internal representation of a single
// automated valuation: the point estimate, the provider's confidence band,
// and the date the model produced it.
type Estimate struct {
	Address        string    `json:"address"`
	Suburb         string    `json:"suburb"`
	State          string    `json:"state"`
	Value          float64   `json:"value"`
	ConfidenceLow  float64   `json:"confidenceLow"`
	ConfidenceHigh float64   `json:"confidenceHigh"`
	AsOf           time.Time `json:"asOf"`
}
