package request

// CreateLoanRequest is the payload for recording a loan against a property.
type CreateLoanRequest struct {
	Lender         string  `json:"lender"`
	CurrentBalance float64 `json:"currentBalance"`
	InterestRate   float64 `json:"interestRate"`
}

// UpdateLoanBalanceRequest is the payload for updating a loan's balance.
type UpdateLoanBalanceRequest struct {
	CurrentBalance float64 `json:"currentBalance"`
}
