package service_test

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
	"github.com/propfolio/backend/internal/testutil"
)

// TestTransactionService_WindowedByProperty tests the window partitioning
// feeding the metrics engine.
//
// WHY: The engine distinguishes "no activity" (empty slice) from "no
// valuation" (absent entry). Every requested property must appear in the
// result, unlinked transactions must never leak in, and the window is
// inclusive on both boundary days.
func TestTransactionService_WindowedByProperty(t *testing.T) {
	juneWindow := model.PeriodWindow{
		StartDate:  time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		Multiplier: 12,
	}

	t.Run("partitions window transactions by property", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeID()
		propA := testutil.CreateProperty(t, db, userID)
		propB := testutil.CreateProperty(t, db, userID)

		testutil.CreateIncome(t, db, userID, propA.ID, 2400, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC))
		testutil.CreateExpense(t, db, userID, propA.ID, -300, time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC))
		testutil.CreateIncome(t, db, userID, propB.ID, 1500, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
		// Outside the window.
		testutil.CreateIncome(t, db, userID, propA.ID, 9000, time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC))
		// Not linked to any property.
		testutil.NewBankTransaction(userID).WithAmount(700).Build(t, db)

		// Execute
		partitioned, err := svc.WindowedByProperty(userID, []string{propA.ID, propB.ID}, juneWindow)

		// Assert
		if err != nil {
			t.Fatalf("WindowedByProperty() returned unexpected error: %v", err)
		}
		if len(partitioned[propA.ID]) != 2 {
			t.Errorf("Expected 2 transactions for property A, got %d", len(partitioned[propA.ID]))
		}
		if len(partitioned[propB.ID]) != 1 {
			t.Errorf("Expected 1 transaction for property B, got %d", len(partitioned[propB.ID]))
		}
	})

	t.Run("quiet properties get an empty slice not a missing entry", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)

		// Execute
		partitioned, err := svc.WindowedByProperty(userID, []string{prop.ID}, juneWindow)

		// Assert
		if err != nil {
			t.Fatalf("WindowedByProperty() returned unexpected error: %v", err)
		}
		txns, ok := partitioned[prop.ID]
		if !ok {
			t.Fatal("Expected an entry for the quiet property")
		}
		if len(txns) != 0 {
			t.Errorf("Expected empty slice, got %d transactions", len(txns))
		}
	})

	t.Run("includes both boundary days", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)

		testutil.CreateIncome(t, db, userID, prop.ID, 100, juneWindow.StartDate)
		testutil.CreateIncome(t, db, userID, prop.ID, 100, juneWindow.EndDate)

		// Execute
		partitioned, err := svc.WindowedByProperty(userID, []string{prop.ID}, juneWindow)

		// Assert
		if err != nil {
			t.Fatalf("WindowedByProperty() returned unexpected error: %v", err)
		}
		if len(partitioned[prop.ID]) != 2 {
			t.Errorf("Expected both boundary-day transactions, got %d", len(partitioned[prop.ID]))
		}
	})
}

// TestTransactionService_AddTransaction tests transaction creation rules.
//
// WHY: A transaction linked to a property the caller does not own would
// leak into someone else's metrics.
func TestTransactionService_AddTransaction(t *testing.T) {
	t.Run("records a property-linked transaction", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)

		// Execute
		tx, err := svc.AddTransaction(userID, prop.ID, june15, 2400, model.TransactionTypeIncome, "June rent")

		// Assert
		if err != nil {
			t.Fatalf("AddTransaction() returned unexpected error: %v", err)
		}
		if tx.ID == "" {
			t.Error("Expected a generated ID")
		}
		testutil.AssertRowCount(t, db, "bank_transaction", 1)
	})

	t.Run("records an unlinked transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.AddTransaction(testutil.MakeID(), "", june15, -120, model.TransactionTypeExpense, "Accountant fee")
		if err != nil {
			t.Fatalf("AddTransaction() returned unexpected error: %v", err)
		}
	})

	t.Run("rejects linking to another user's property", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		prop := testutil.CreateProperty(t, db, testutil.MakeID())

		// Execute
		_, err := svc.AddTransaction(testutil.MakeID(), prop.ID, june15, 2400, model.TransactionTypeIncome, "June rent")

		// Assert
		if !errors.Is(err, apperrors.ErrPropertyNotFound) {
			t.Errorf("Expected ErrPropertyNotFound, got %v", err)
		}
	})
}

// TestTransactionService_GetTransactions tests the range listing.
//
// WHY: The listing includes unlinked transactions and must reject an
// inverted date range instead of silently returning nothing.
func TestTransactionService_GetTransactions(t *testing.T) {
	t.Run("lists linked and unlinked transactions in range", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeID()
		prop := testutil.CreateProperty(t, db, userID)

		testutil.CreateIncome(t, db, userID, prop.ID, 2400, june15)
		testutil.NewBankTransaction(userID).WithAmount(-120).WithDate(june15).Build(t, db)

		// Execute
		txns, err := svc.GetTransactions(userID,
			time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC))

		// Assert
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}
		if len(txns) != 2 {
			t.Errorf("Expected 2 transactions, got %d", len(txns))
		}
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.GetTransactions(testutil.MakeID(),
			time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange, got %v", err)
		}
	})
}
