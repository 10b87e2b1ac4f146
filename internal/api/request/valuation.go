package request

// CreateValuationRequest is the payload for recording a manual valuation.
// ValueDate is a "2006-01-02" date string.
type CreateValuationRequest struct {
	EstimatedValue float64 `json:"estimatedValue"`
	ValueDate      string  `json:"valueDate"`
}
