package service_test

import (
	"errors"
	"testing"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/testutil"
)

// TestLoanService_TotalDebt tests debt aggregation per property.
//
// WHY: Split loans must collapse to one figure per property, loans in
// credit must not be clamped, and properties without loans must simply be
// absent so the engine reads them as debt-free.
func TestLoanService_TotalDebt(t *testing.T) {
	t.Run("sums split loans per property", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLoanService(t, db)
		userID := testutil.MakeID()
		propA := testutil.CreateProperty(t, db, userID)
		propB := testutil.CreateProperty(t, db, userID)

		testutil.CreateLoan(t, db, propA.ID, 300000)
		testutil.CreateLoan(t, db, propA.ID, 100000)
		testutil.CreateLoan(t, db, propB.ID, 250000)

		// Execute
		totals, err := svc.TotalDebt(userID, []string{propA.ID, propB.ID})

		// Assert
		if err != nil {
			t.Fatalf("TotalDebt() returned unexpected error: %v", err)
		}
		if totals[propA.ID] != 400000 {
			t.Errorf("Expected 400000 for property A, got %v", totals[propA.ID])
		}
		if totals[propB.ID] != 250000 {
			t.Errorf("Expected 250000 for property B, got %v", totals[propB.ID])
		}
	})

	t.Run("negative balances pass through unclamped", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLoanService(t, db)
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)

		testutil.CreateLoan(t, db, prop.ID, 200000)
		testutil.CreateLoan(t, db, prop.ID, -250000)

		// Execute
		totals, err := svc.TotalDebt(userID, []string{prop.ID})

		// Assert
		if err != nil {
			t.Fatalf("TotalDebt() returned unexpected error: %v", err)
		}
		if totals[prop.ID] != -50000 {
			t.Errorf("Expected -50000 total for loans in credit, got %v", totals[prop.ID])
		}
	})

	t.Run("loan-free properties are absent from the map", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLoanService(t, db)
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)

		// Execute
		totals, err := svc.TotalDebt(userID, []string{prop.ID})

		// Assert
		if err != nil {
			t.Fatalf("TotalDebt() returned unexpected error: %v", err)
		}
		if _, ok := totals[prop.ID]; ok {
			t.Error("Expected no entry for a loan-free property")
		}
	})
}

// TestLoanService_AddLoan tests loan creation and the ownership check.
func TestLoanService_AddLoan(t *testing.T) {
	t.Run("records a loan against an owned property", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLoanService(t, db)
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)

		// Execute
		loan, err := svc.AddLoan(userID, prop.ID, "Sample Bank", 400000, 5.89)

		// Assert
		if err != nil {
			t.Fatalf("AddLoan() returned unexpected error: %v", err)
		}
		if loan.ID == "" {
			t.Error("Expected a generated ID")
		}
		testutil.AssertRowCount(t, db, "loan", 1)
	})

	t.Run("rejects another user's property", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLoanService(t, db)
		prop := testutil.CreateProperty(t, db, testutil.MakeID())

		// Execute
		_, err := svc.AddLoan(testutil.MakeID(), prop.ID, "Sample Bank", 400000, 5.89)

		// Assert
		if !errors.Is(err, apperrors.ErrPropertyNotFound) {
			t.Errorf("Expected ErrPropertyNotFound, got %v", err)
		}
	})
}

// TestLoanService_UpdateBalance tests balance maintenance.
func TestLoanService_UpdateBalance(t *testing.T) {
	t.Run("updates the current balance", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLoanService(t, db)
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)
		loan := testutil.CreateLoan(t, db, prop.ID, 400000)

		// Execute
		if err := svc.UpdateBalance(userID, loan.ID, 395000); err != nil {
			t.Fatalf("UpdateBalance() returned unexpected error: %v", err)
		}

		// Assert
		loans, err := svc.GetLoans(userID, prop.ID)
		if err != nil {
			t.Fatalf("GetLoans() returned unexpected error: %v", err)
		}
		if len(loans) != 1 || loans[0].CurrentBalance != 395000 {
			t.Errorf("Expected balance 395000, got %+v", loans)
		}
	})

	t.Run("returns not found for another user's loan", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestLoanService(t, db)
		prop := testutil.CreateProperty(t, db, testutil.MakeID())
		loan := testutil.CreateLoan(t, db, prop.ID, 400000)

		// Execute
		err := svc.UpdateBalance(testutil.MakeID(), loan.ID, 0)

		// Assert
		if !errors.Is(err, apperrors.ErrLoanNotFound) {
			t.Errorf("Expected ErrLoanNotFound, got %v", err)
		}
	})
}
