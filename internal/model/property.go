package model

import "time"

// PropertyStatus is the lifecycle state of a property. Transitions are
// one-way: active -> sold.
type PropertyStatus string

const (
	PropertyStatusActive PropertyStatus = "active"
	PropertyStatusSold   PropertyStatus = "sold"
)

// Property represents an investment property from the database.
// Purchase price and date come from the original contract; the current
// market value lives in the valuation table, not here.
type Property struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	Address       string         `json:"address"`
	Suburb        string         `json:"suburb"`
	State         string         `json:"state"`
	EntityName    string         `json:"entityName"`
	PurchasePrice float64        `json:"purchasePrice"`
	PurchaseDate  time.Time      `json:"purchaseDate"`
	Status        PropertyStatus `json:"status"`
	CreatedAt     time.Time      `json:"createdAt,omitempty"`
}

// PropertyFilter narrows a user's property set before metric calculation.
// Empty fields match everything. The same filter feeds both the summary
// and the per-property metrics so the two stay consistent.
type PropertyFilter struct {
	State      string
	EntityName string
	Status     PropertyStatus
}

// Matches reports whether a property passes every set predicate.
func (f PropertyFilter) Matches(p Property) bool {
	if f.State != "" && p.State != f.State {
		return false
	}
	if f.EntityName != "" && p.EntityName != f.EntityName {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}
