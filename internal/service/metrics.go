package service

import (
	"math"

	"github.com/propfolio/backend/internal/model"
)

// RoundingPrecision rounds monetary amounts to two decimal places.
const RoundingPrecision = 100.0

// CalculateMetrics computes the derived figures for a single property over
// one reporting window. It is a pure function of its inputs: the property
// record, the resolved latest valuation (nil when the property has none),
// the aggregated loan balance, the transactions that fell inside the
// window, and the window's annualization multiplier.
//
// Policies, in order of appearance:
//   - equity has no floor; negative equity is a meaningful state
//   - LVR and both yields are nil (not zero) without a valuation, so a
//     missing value never masquerades as a debt-free property
//   - capital growth percent falls back to 0, not nil, when the purchase
//     price is zero
//   - income sums signed income amounts; expenses sum the absolute value
//     of expense amounts; cash flow sums everything as signed
//   - the multiplier applies to the windowed totals as-is, with no
//     assumption that activity is spread evenly across the window
func CalculateMetrics(p model.Property, latest *model.Valuation, totalDebt float64, transactions []model.Transaction, multiplier int) model.PropertyMetrics {
	var value float64
	hasValue := false
	if latest != nil {
		value = latest.EstimatedValue
		hasValue = value > 0
	}

	var cashFlow, income, expenses float64
	for _, t := range transactions {
		cashFlow += t.Amount
		switch t.Type {
		case model.TransactionTypeIncome:
			income += t.Amount
		case model.TransactionTypeExpense:
			expenses += math.Abs(t.Amount)
		}
	}

	annualIncome := income * float64(multiplier)
	annualExpenses := expenses * float64(multiplier)

	capitalGrowth := value - p.PurchasePrice
	capitalGrowthPercent := 0.0
	if p.PurchasePrice > 0 {
		capitalGrowthPercent = capitalGrowth / p.PurchasePrice * 100
	}

	return model.PropertyMetrics{
		PropertyID:           p.ID,
		Address:              p.Address,
		Suburb:               p.Suburb,
		State:                p.State,
		EntityName:           p.EntityName,
		Status:               p.Status,
		PurchasePrice:        p.PurchasePrice,
		CurrentValue:         value,
		CapitalGrowth:        capitalGrowth,
		CapitalGrowthPercent: capitalGrowthPercent,
		TotalLoans:           totalDebt,
		Equity:               value - totalDebt,
		LVR:                  ratio(totalDebt, value),
		GrossYield:           ratio(annualIncome, value),
		NetYield:             ratio(annualIncome-annualExpenses, value),
		CashFlow:             round2(cashFlow),
		AnnualIncome:         round2(annualIncome),
		AnnualExpenses:       round2(annualExpenses),
		HasValue:             hasValue,
	}
}

// CalculateSummary rolls per-property metrics up into portfolio scalars.
// Ratios are computed over the summed figures, never averaged across
// properties: a ratio of sums weighs each property by its value, which an
// arithmetic mean of per-property ratios does not.
func CalculateSummary(rows []model.PropertyMetrics) model.PortfolioSummary {
	var totalValue, totalDebt, cashFlow, annualIncome float64

	for _, r := range rows {
		totalValue += r.CurrentValue
		totalDebt += r.TotalLoans
		cashFlow += r.CashFlow
		annualIncome += r.AnnualIncome
	}

	return model.PortfolioSummary{
		PropertyCount: len(rows),
		TotalValue:    totalValue,
		TotalDebt:     totalDebt,
		TotalEquity:   totalValue - totalDebt,
		PortfolioLVR:  ratio(totalDebt, totalValue),
		CashFlow:      round2(cashFlow),
		AverageYield:  ratio(annualIncome, totalValue),
	}
}

// ratio returns numerator/denominator, or nil when the denominator is not
// positive. This is the single place the undefined-ratio policy lives;
// division by zero can never reach the runtime.
func ratio(numerator, denominator float64) *float64 {
	if denominator <= 0 {
		return nil
	}
	r := numerator / denominator
	return &r
}

func round2(v float64) float64 {
	return math.Round(v*RoundingPrecision) / RoundingPrecision
}
