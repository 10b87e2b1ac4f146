package model

// SortKey selects the ordering for per-property metric listings.
type SortKey string

const (
	SortByCashFlow     SortKey = "cashFlow"
	SortByEquity       SortKey = "equity"
	SortByLVR          SortKey = "lvr"
	SortByAlphabetical SortKey = "alphabetical"
)

// SortOrder is the listing direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PropertyMetrics is the full set of derived figures for one property over
// one reporting window. It is recomputed on every query and never stored.
//
// Ratio fields (LVR, GrossYield, NetYield) are pointers: nil means the
// ratio is undefined because the property has no valuation, which is a
// different state from a ratio of zero. CapitalGrowthPercent deliberately
// falls back to 0 rather than nil when the purchase price is zero.
type PropertyMetrics struct {
	PropertyID           string         `json:"propertyId"`
	Address              string         `json:"address"`
	Suburb               string         `json:"suburb"`
	State                string         `json:"state"`
	EntityName           string         `json:"entityName"`
	Status               PropertyStatus `json:"status"`
	PurchasePrice        float64        `json:"purchasePrice"`
	CurrentValue         float64        `json:"currentValue"`
	CapitalGrowth        float64        `json:"capitalGrowth"`
	CapitalGrowthPercent float64        `json:"capitalGrowthPercent"`
	TotalLoans           float64        `json:"totalLoans"`
	Equity               float64        `json:"equity"`
	LVR                  *float64       `json:"lvr"`
	GrossYield           *float64       `json:"grossYield"`
	NetYield             *float64       `json:"netYield"`
	CashFlow             float64        `json:"cashFlow"`
	AnnualIncome         float64        `json:"annualIncome"`
	AnnualExpenses       float64        `json:"annualExpenses"`
	HasValue             bool           `json:"hasValue"`
}

// PortfolioSummary is the scalar roll-up across a filtered property set.
// PortfolioLVR and AverageYield are ratios of the summed figures, not
// averages of per-property ratios, and are nil when total value is zero.
type PortfolioSummary struct {
	PropertyCount int      `json:"propertyCount"`
	TotalValue    float64  `json:"totalValue"`
	TotalDebt     float64  `json:"totalDebt"`
	TotalEquity   float64  `json:"totalEquity"`
	PortfolioLVR  *float64 `json:"portfolioLVR"`
	CashFlow      float64  `json:"cashFlow"`
	AverageYield  *float64 `json:"averageYield"`
}
