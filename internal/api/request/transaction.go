package request

// CreateTransactionRequest is the payload for recording a bank transaction.
// Amount is signed: positive inflow, negative outflow. PropertyID is
// optional; unlinked transactions never enter the metrics engine.
type CreateTransactionRequest struct {
	PropertyID  string  `json:"propertyId,omitempty"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
}
