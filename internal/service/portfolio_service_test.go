package service_test

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
	"github.com/propfolio/backend/internal/testutil"
)

// june15 pins the reporting window to June 2024 for every engine test.
var june15 = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func fixedNow() time.Time {
	return june15
}

// TestPortfolioService_GetSummary tests the portfolio roll-up end to end.
//
// WHY: The summary is the product's headline number. This exercises the
// whole pipeline against a real database: window resolution, latest
// valuation per property, summed loans, windowed transactions, and the
// ratio-of-sums totals.
func TestPortfolioService_GetSummary(t *testing.T) {
	t.Run("computes totals for a two-property portfolio", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow
		userID := testutil.MakeID()

		// Property A: valued at 600k with 400k debt and June activity.
		propA := testutil.NewProperty(userID).WithPurchasePrice(500000).Build(t, db)
		testutil.CreateValuation(t, db, propA.ID, 600000, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
		testutil.CreateLoan(t, db, propA.ID, 400000)
		testutil.CreateIncome(t, db, userID, propA.ID, 2400, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC))
		testutil.CreateExpense(t, db, userID, propA.ID, -300, time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC))

		// Property B: no valuation yet, debt only.
		propB := testutil.NewProperty(userID).WithPurchasePrice(450000).Build(t, db)
		testutil.CreateLoan(t, db, propB.ID, 150000)

		// Execute
		summary, err := svc.GetSummary(userID, model.PeriodMonthly, model.PropertyFilter{})

		// Assert
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		if summary.PropertyCount != 2 {
			t.Errorf("Expected property count 2, got %d", summary.PropertyCount)
		}
		if summary.TotalValue != 600000 {
			t.Errorf("Expected total value 600000, got %v", summary.TotalValue)
		}
		if summary.TotalDebt != 550000 {
			t.Errorf("Expected total debt 550000, got %v", summary.TotalDebt)
		}
		if summary.TotalEquity != 50000 {
			t.Errorf("Expected total equity 50000, got %v", summary.TotalEquity)
		}
		if summary.CashFlow != 2100 {
			t.Errorf("Expected cash flow 2100, got %v", summary.CashFlow)
		}
		if summary.PortfolioLVR == nil || !almostEqual(*summary.PortfolioLVR, 550000.0/600000.0) {
			t.Errorf("Expected portfolio LVR 550/600, got %v", summary.PortfolioLVR)
		}
	})

	t.Run("returns zero record for a user with no properties", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow

		// Execute
		summary, err := svc.GetSummary(testutil.MakeID(), model.PeriodMonthly, model.PropertyFilter{})

		// Assert
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.PropertyCount != 0 || summary.TotalValue != 0 {
			t.Errorf("Expected zero record, got %+v", summary)
		}
		if summary.PortfolioLVR != nil {
			t.Errorf("Expected nil portfolio LVR, got %v", *summary.PortfolioLVR)
		}
	})

	t.Run("does not see other users' properties", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow
		owner := testutil.MakeID()
		other := testutil.MakeID()

		prop := testutil.CreateProperty(t, db, other)
		testutil.CreateValuation(t, db, prop.ID, 600000, june15)

		// Execute
		summary, err := svc.GetSummary(owner, model.PeriodMonthly, model.PropertyFilter{})

		// Assert
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.PropertyCount != 0 {
			t.Errorf("Expected 0 properties for a different owner, got %d", summary.PropertyCount)
		}
	})

	t.Run("rejects unknown period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		_, err := svc.GetSummary(testutil.MakeID(), model.Period("weekly"), model.PropertyFilter{})
		if !errors.Is(err, apperrors.ErrInvalidPeriod) {
			t.Errorf("Expected ErrInvalidPeriod, got %v", err)
		}
	})
}

// TestPortfolioService_GetPropertyMetrics tests the per-property listing.
//
// WHY: The listing must reconcile with the summary for the same inputs,
// resolve the latest valuation regardless of insertion order, scope
// transactions to the window, and honor filters and sort parameters.
func TestPortfolioService_GetPropertyMetrics(t *testing.T) {
	t.Run("reports per-property figures for the reference portfolio", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow
		userID := testutil.MakeID()

		propA := testutil.NewProperty(userID).WithSuburb("Richmond").WithPurchasePrice(500000).Build(t, db)
		testutil.CreateValuation(t, db, propA.ID, 600000, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
		testutil.CreateLoan(t, db, propA.ID, 400000)
		testutil.CreateIncome(t, db, userID, propA.ID, 2400, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC))
		testutil.CreateExpense(t, db, userID, propA.ID, -300, time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC))

		propB := testutil.NewProperty(userID).WithSuburb("Fitzroy").Build(t, db)
		testutil.CreateLoan(t, db, propB.ID, 150000)

		// Execute
		rows, err := svc.GetPropertyMetrics(userID, model.PeriodMonthly, model.PropertyFilter{}, model.SortByEquity, model.SortDesc)

		// Assert
		if err != nil {
			t.Fatalf("GetPropertyMetrics() returned unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("Expected 2 rows, got %d", len(rows))
		}

		// Equity descending puts the valued property first.
		a, b := rows[0], rows[1]
		if a.PropertyID != propA.ID {
			t.Fatalf("Expected property A first, got %s", a.PropertyID)
		}

		if a.Equity != 200000 {
			t.Errorf("Expected equity 200000, got %v", a.Equity)
		}
		if a.LVR == nil || !almostEqual(*a.LVR, 400000.0/600000.0) {
			t.Errorf("Expected LVR 2/3, got %v", a.LVR)
		}
		if a.GrossYield == nil || !almostEqual(*a.GrossYield, 0.048) {
			t.Errorf("Expected gross yield 0.048, got %v", a.GrossYield)
		}
		if a.NetYield == nil || !almostEqual(*a.NetYield, 0.042) {
			t.Errorf("Expected net yield 0.042, got %v", a.NetYield)
		}
		if a.CashFlow != 2100 {
			t.Errorf("Expected cash flow 2100, got %v", a.CashFlow)
		}

		if b.PropertyID != propB.ID {
			t.Fatalf("Expected property B second, got %s", b.PropertyID)
		}
		if b.HasValue {
			t.Error("Expected hasValue false for unvalued property")
		}
		if b.LVR != nil {
			t.Errorf("Expected nil LVR for unvalued property, got %v", *b.LVR)
		}
		if b.Equity != -150000 {
			t.Errorf("Expected equity -150000, got %v", b.Equity)
		}
	})

	t.Run("uses the latest valuation regardless of insertion order", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)

		// Newest valuation inserted first; date order must win over row order.
		testutil.CreateValuation(t, db, prop.ID, 650000, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
		testutil.CreateValuation(t, db, prop.ID, 500000, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC))
		testutil.CreateValuation(t, db, prop.ID, 580000, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

		// Execute
		rows, err := svc.GetPropertyMetrics(userID, model.PeriodMonthly, model.PropertyFilter{}, model.SortByEquity, model.SortDesc)

		// Assert
		if err != nil {
			t.Fatalf("GetPropertyMetrics() returned unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("Expected 1 row, got %d", len(rows))
		}
		if rows[0].CurrentValue != 650000 {
			t.Errorf("Expected latest value 650000, got %v", rows[0].CurrentValue)
		}
	})

	t.Run("excludes transactions outside the window", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)

		// Inside June 2024, including both boundary days.
		testutil.CreateIncome(t, db, userID, prop.ID, 1000, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
		testutil.CreateIncome(t, db, userID, prop.ID, 1000, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC))
		// Outside the window.
		testutil.CreateIncome(t, db, userID, prop.ID, 5000, time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC))
		testutil.CreateIncome(t, db, userID, prop.ID, 5000, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))

		// Execute
		rows, err := svc.GetPropertyMetrics(userID, model.PeriodMonthly, model.PropertyFilter{}, model.SortByEquity, model.SortDesc)

		// Assert
		if err != nil {
			t.Fatalf("GetPropertyMetrics() returned unexpected error: %v", err)
		}
		if rows[0].CashFlow != 2000 {
			t.Errorf("Expected cash flow 2000 from boundary-inclusive window, got %v", rows[0].CashFlow)
		}
	})

	t.Run("sums multiple loans per property", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)
		testutil.CreateValuation(t, db, prop.ID, 600000, june15)
		testutil.CreateLoan(t, db, prop.ID, 300000)
		testutil.CreateLoan(t, db, prop.ID, 100000)

		// Execute
		rows, err := svc.GetPropertyMetrics(userID, model.PeriodMonthly, model.PropertyFilter{}, model.SortByEquity, model.SortDesc)

		// Assert
		if err != nil {
			t.Fatalf("GetPropertyMetrics() returned unexpected error: %v", err)
		}
		if rows[0].TotalLoans != 400000 {
			t.Errorf("Expected total loans 400000 across split loans, got %v", rows[0].TotalLoans)
		}
	})

	t.Run("filters by state entity and status", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow
		userID := testutil.MakeID()

		vicTrust := testutil.NewProperty(userID).WithState("VIC").WithEntityName("Family Trust").Build(t, db)
		testutil.NewProperty(userID).WithState("NSW").WithEntityName("Family Trust").Build(t, db)
		testutil.NewProperty(userID).WithState("VIC").WithEntityName("Personal").Build(t, db)
		testutil.NewProperty(userID).WithState("VIC").WithEntityName("Family Trust").Sold().Build(t, db)

		filter := model.PropertyFilter{
			State:      "VIC",
			EntityName: "Family Trust",
			Status:     model.PropertyStatusActive,
		}

		// Execute
		rows, err := svc.GetPropertyMetrics(userID, model.PeriodMonthly, filter, model.SortByEquity, model.SortDesc)

		// Assert
		if err != nil {
			t.Fatalf("GetPropertyMetrics() returned unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("Expected 1 row after filtering, got %d", len(rows))
		}
		if rows[0].PropertyID != vicTrust.ID {
			t.Errorf("Expected the active VIC trust property, got %s", rows[0].PropertyID)
		}
	})

	t.Run("listing reconciles with summary", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow
		userID := testutil.MakeID()

		for i := 0; i < 3; i++ {
			prop := testutil.CreateProperty(t, db, userID)
			testutil.CreateValuation(t, db, prop.ID, 500000, june15)
			testutil.CreateLoan(t, db, prop.ID, 200000)
			testutil.CreateIncome(t, db, userID, prop.ID, 1500, june15)
		}

		// Execute
		rows, err := svc.GetPropertyMetrics(userID, model.PeriodMonthly, model.PropertyFilter{}, model.SortByEquity, model.SortDesc)
		if err != nil {
			t.Fatalf("GetPropertyMetrics() returned unexpected error: %v", err)
		}
		summary, err := svc.GetSummary(userID, model.PeriodMonthly, model.PropertyFilter{})
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		// Assert
		var value, debt, cashFlow float64
		for _, r := range rows {
			value += r.CurrentValue
			debt += r.TotalLoans
			cashFlow += r.CashFlow
		}

		if summary.TotalValue != value {
			t.Errorf("Summary value %v does not match listing total %v", summary.TotalValue, value)
		}
		if summary.TotalDebt != debt {
			t.Errorf("Summary debt %v does not match listing total %v", summary.TotalDebt, debt)
		}
		if summary.CashFlow != cashFlow {
			t.Errorf("Summary cash flow %v does not match listing total %v", summary.CashFlow, cashFlow)
		}
	})

	t.Run("repeated calls return identical results", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow
		userID := testutil.MakeID()

		prop := testutil.CreateProperty(t, db, userID)
		testutil.CreateValuation(t, db, prop.ID, 600000, june15)
		testutil.CreateLoan(t, db, prop.ID, 400000)

		// Execute
		first, err := svc.GetPropertyMetrics(userID, model.PeriodMonthly, model.PropertyFilter{}, model.SortByEquity, model.SortDesc)
		if err != nil {
			t.Fatalf("GetPropertyMetrics() returned unexpected error: %v", err)
		}
		second, err := svc.GetPropertyMetrics(userID, model.PeriodMonthly, model.PropertyFilter{}, model.SortByEquity, model.SortDesc)
		if err != nil {
			t.Fatalf("GetPropertyMetrics() returned unexpected error: %v", err)
		}

		// Assert
		if len(first) != len(second) {
			t.Fatalf("Expected identical row counts, got %d and %d", len(first), len(second))
		}
		for i := range first {
			if first[i].PropertyID != second[i].PropertyID || first[i].Equity != second[i].Equity {
				t.Errorf("Row %d differs between calls: %+v vs %+v", i, first[i], second[i])
			}
		}
	})

	t.Run("rejects unknown sort key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		svc.Now = fixedNow
		userID := testutil.MakeID()
		testutil.CreateProperty(t, db, userID)

		_, err := svc.GetPropertyMetrics(userID, model.PeriodMonthly, model.PropertyFilter{}, model.SortKey("yield"), model.SortAsc)
		if !errors.Is(err, apperrors.ErrInvalidSortKey) {
			t.Errorf("Expected ErrInvalidSortKey, got %v", err)
		}
	})
}
