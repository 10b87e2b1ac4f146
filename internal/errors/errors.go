package errors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPropertyNotFound indicates that a property with the given ID does not exist
	// for the requesting owner.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrValuationNotFound indicates that a valuation with the given ID does not exist.
	ErrValuationNotFound = errors.New("valuation not found")

	// ErrLoanNotFound indicates that a loan with the given ID does not exist.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSettingNotFound indicates that a system setting key has not been stored.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidPeriod indicates a reporting period outside the closed
	// monthly/quarterly/annual enumeration. This is a caller programming
	// error, rejected at the boundary.
	ErrInvalidPeriod = errors.New("invalid reporting period")

	// ErrInvalidSortKey indicates a sort key outside the closed enumeration.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrInvalidSortOrder indicates a sort order other than asc or desc.
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// ErrInvalidStatus indicates a property status outside active/sold.
	ErrInvalidStatus = errors.New("invalid property status")

	// ErrStatusTransition indicates an attempt to move a property backwards
	// in its lifecycle (sold properties cannot become active again).
	ErrStatusTransition = errors.New("invalid status transition")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrNegativePurchasePrice indicates a property purchase price below zero.
	ErrNegativePurchasePrice = errors.New("purchase price cannot be negative")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. The engine propagates these unchanged; it never retries or
// degrades to partial results.
var (
	ErrFailedToRetrieveProperties   = errors.New("failed to retrieve properties")
	ErrFailedToRetrieveValuations   = errors.New("failed to retrieve valuations")
	ErrFailedToRetrieveLoans        = errors.New("failed to retrieve loans")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToGetSummary           = errors.New("failed to get portfolio summary")
	ErrFailedToGetPropertyMetrics   = errors.New("failed to get property metrics")
	ErrFailedToRefreshValuations    = errors.New("failed to refresh valuations")
)
