package request

// CreatePropertyRequest is the payload for registering a new property.
// PurchaseDate is a "2006-01-02" date string.
type CreatePropertyRequest struct {
	Address       string  `json:"address"`
	Suburb        string  `json:"suburb"`
	State         string  `json:"state"`
	EntityName    string  `json:"entityName"`
	PurchasePrice float64 `json:"purchasePrice"`
	PurchaseDate  string  `json:"purchaseDate"`
}

// UpdatePropertyRequest is the payload for updating a property. All fields
// are required; status may move active -> sold but never back.
type UpdatePropertyRequest struct {
	Address       string  `json:"address"`
	Suburb        string  `json:"suburb"`
	State         string  `json:"state"`
	EntityName    string  `json:"entityName"`
	PurchasePrice float64 `json:"purchasePrice"`
	PurchaseDate  string  `json:"purchaseDate"`
	Status        string  `json:"status"`
}
