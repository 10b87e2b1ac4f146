package model

import "time"

// Transaction types. Only income and expense participate in yield math;
// anything else still counts towards cash flow.
const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)

// Transaction represents a bank transaction. Amounts are signed: positive
// for inflows, negative for outflows. PropertyID is empty for transactions
// not linked to a property; those never enter the metrics engine.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	PropertyID  string    `json:"propertyId,omitempty"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
