package model

import "time"

// Loan is a debt facility secured against a property. A property can have
// several (split loans); its total debt is the sum of their balances.
// A negative balance means the loan is in credit and is not clamped.
type Loan struct {
	ID             string    `json:"id"`
	PropertyID     string    `json:"propertyId"`
	Lender         string    `json:"lender"`
	CurrentBalance float64   `json:"currentBalance"`
	InterestRate   float64   `json:"interestRate"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}
