package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/propfolio/backend/internal/model"
)

// dateFormat is how DATE columns are stored in SQLite.
const dateFormat = "2006-01-02"

// PropertyBuilder provides a fluent interface for creating test properties.
//
// Example usage:
//
//	// Simple creation with defaults
//	property := testutil.NewProperty(userID).Build(t, db)
//
//	// Customized property
//	property := testutil.NewProperty(userID).
//	    WithSuburb("Richmond").
//	    WithPurchasePrice(500000).
//	    Sold().
//	    Build(t, db)
type PropertyBuilder struct {
	ID            string
	UserID        string
	Address       string
	Suburb        string
	State         string
	EntityName    string
	PurchasePrice float64
	PurchaseDate  time.Time
	Status        model.PropertyStatus
}

// NewProperty creates a PropertyBuilder with sensible defaults.
func NewProperty(userID string) *PropertyBuilder {
	return &PropertyBuilder{
		ID:            MakeID(),
		UserID:        userID,
		Address:       MakeAddress(),
		Suburb:        "Testville",
		State:         "VIC",
		EntityName:    "",
		PurchasePrice: 500000,
		PurchaseDate:  time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC),
		Status:        model.PropertyStatusActive,
	}
}

// WithID sets a custom ID.
func (b *PropertyBuilder) WithID(id string) *PropertyBuilder {
	b.ID = id
	return b
}

// WithAddress sets a custom street address.
func (b *PropertyBuilder) WithAddress(address string) *PropertyBuilder {
	b.Address = address
	return b
}

// WithSuburb sets a custom suburb.
func (b *PropertyBuilder) WithSuburb(suburb string) *PropertyBuilder {
	b.Suburb = suburb
	return b
}

// WithState sets a custom state.
func (b *PropertyBuilder) WithState(state string) *PropertyBuilder {
	b.State = state
	return b
}

// WithEntityName sets a custom owning entity.
func (b *PropertyBuilder) WithEntityName(entity string) *PropertyBuilder {
	b.EntityName = entity
	return b
}

// WithPurchasePrice sets a custom purchase price.
func (b *PropertyBuilder) WithPurchasePrice(price float64) *PropertyBuilder {
	b.PurchasePrice = price
	return b
}

// WithPurchaseDate sets a custom purchase date.
func (b *PropertyBuilder) WithPurchaseDate(date time.Time) *PropertyBuilder {
	b.PurchaseDate = date
	return b
}

// Sold marks the property as sold.
func (b *PropertyBuilder) Sold() *PropertyBuilder {
	b.Status = model.PropertyStatusSold
	return b
}

// Build creates the property in the database and returns it.
func (b *PropertyBuilder) Build(t *testing.T, db *sql.DB) model.Property {
	t.Helper()

	query := `
		INSERT INTO property (id, user_id, address, suburb, state, entity_name, purchase_price, purchase_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.Address, b.Suburb, b.State, b.EntityName,
		b.PurchasePrice, b.PurchaseDate.Format(dateFormat), string(b.Status))
	if err != nil {
		t.Fatalf("Failed to create test property: %v", err)
	}

	return model.Property{
		ID:            b.ID,
		UserID:        b.UserID,
		Address:       b.Address,
		Suburb:        b.Suburb,
		State:         b.State,
		EntityName:    b.EntityName,
		PurchasePrice: b.PurchasePrice,
		PurchaseDate:  b.PurchaseDate,
		Status:        b.Status,
	}
}

// CreateProperty creates a property with default values for the given owner.
//
// Example usage:
//
//	property := testutil.CreateProperty(t, db, userID)
func CreateProperty(t *testing.T, db *sql.DB, userID string) model.Property {
	t.Helper()
	return NewProperty(userID).Build(t, db)
}

// ValuationBuilder provides a fluent interface for creating test valuations.
//
// Example usage:
//
//	valuation := testutil.NewValuation(property.ID).
//	    WithValue(600000).
//	    WithValueDate(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)).
//	    Build(t, db)
type ValuationBuilder struct {
	ID             string
	PropertyID     string
	EstimatedValue float64
	ValueDate      time.Time
	Source         string
	CreatedAt      time.Time
}

// NewValuation creates a ValuationBuilder with sensible defaults.
func NewValuation(propertyID string) *ValuationBuilder {
	return &ValuationBuilder{
		ID:             MakeID(),
		PropertyID:     propertyID,
		EstimatedValue: 600000,
		ValueDate:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Source:         model.ValuationSourceManual,
	}
}

// WithValue sets a custom estimated value.
func (b *ValuationBuilder) WithValue(value float64) *ValuationBuilder {
	b.EstimatedValue = value
	return b
}

// WithValueDate sets a custom value date.
func (b *ValuationBuilder) WithValueDate(date time.Time) *ValuationBuilder {
	b.ValueDate = date
	return b
}

// WithSource sets a custom source.
func (b *ValuationBuilder) WithSource(source string) *ValuationBuilder {
	b.Source = source
	return b
}

// WithCreatedAt pins the record timestamp. Needed by tests that exercise
// the tie-break between valuations sharing a value date.
func (b *ValuationBuilder) WithCreatedAt(created time.Time) *ValuationBuilder {
	b.CreatedAt = created
	return b
}

// Build creates the valuation in the database and returns it.
func (b *ValuationBuilder) Build(t *testing.T, db *sql.DB) model.Valuation {
	t.Helper()

	var err error
	if b.CreatedAt.IsZero() {
		query := `
			INSERT INTO valuation (id, property_id, estimated_value, value_date, source)
			VALUES (?, ?, ?, ?, ?)
		`
		_, err = db.Exec(query, b.ID, b.PropertyID, b.EstimatedValue, b.ValueDate.Format(dateFormat), b.Source)
	} else {
		query := `
			INSERT INTO valuation (id, property_id, estimated_value, value_date, source, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		_, err = db.Exec(query, b.ID, b.PropertyID, b.EstimatedValue, b.ValueDate.Format(dateFormat), b.Source,
			b.CreatedAt.UTC().Format(time.RFC3339))
	}
	if err != nil {
		t.Fatalf("Failed to create test valuation: %v", err)
	}

	return model.Valuation{
		ID:             b.ID,
		PropertyID:     b.PropertyID,
		EstimatedValue: b.EstimatedValue,
		ValueDate:      b.ValueDate,
		Source:         b.Source,
		CreatedAt:      b.CreatedAt,
	}
}

// CreateValuation creates a valuation with the given value and date.
//
// Example usage:
//
//	valuation := testutil.CreateValuation(t, db, property.ID, 600000, valueDate)
func CreateValuation(t *testing.T, db *sql.DB, propertyID string, value float64, date time.Time) model.Valuation {
	t.Helper()
	return NewValuation(propertyID).WithValue(value).WithValueDate(date).Build(t, db)
}

// LoanBuilder provides a fluent interface for creating test loans.
//
// Example usage:
//
//	loan := testutil.NewLoan(property.ID).
//	    WithBalance(400000).
//	    WithLender("Test Bank").
//	    Build(t, db)
type LoanBuilder struct {
	ID             string
	PropertyID     string
	Lender         string
	CurrentBalance float64
	InterestRate   float64
}

// NewLoan creates a LoanBuilder with sensible defaults.
func NewLoan(propertyID string) *LoanBuilder {
	return &LoanBuilder{
		ID:             MakeID(),
		PropertyID:     propertyID,
		Lender:         "Test Bank",
		CurrentBalance: 400000,
		InterestRate:   5.5,
	}
}

// WithLender sets a custom lender name.
func (b *LoanBuilder) WithLender(lender string) *LoanBuilder {
	b.Lender = lender
	return b
}

// WithBalance sets a custom current balance.
func (b *LoanBuilder) WithBalance(balance float64) *LoanBuilder {
	b.CurrentBalance = balance
	return b
}

// WithInterestRate sets a custom interest rate.
func (b *LoanBuilder) WithInterestRate(rate float64) *LoanBuilder {
	b.InterestRate = rate
	return b
}

// Build creates the loan in the database and returns it.
func (b *LoanBuilder) Build(t *testing.T, db *sql.DB) model.Loan {
	t.Helper()

	query := `
		INSERT INTO loan (id, property_id, lender, current_balance, interest_rate)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.PropertyID, b.Lender, b.CurrentBalance, b.InterestRate)
	if err != nil {
		t.Fatalf("Failed to create test loan: %v", err)
	}

	return model.Loan{
		ID:             b.ID,
		PropertyID:     b.PropertyID,
		Lender:         b.Lender,
		CurrentBalance: b.CurrentBalance,
		InterestRate:   b.InterestRate,
	}
}

// CreateLoan creates a loan with the given balance.
//
// Example usage:
//
//	loan := testutil.CreateLoan(t, db, property.ID, 400000)
func CreateLoan(t *testing.T, db *sql.DB, propertyID string, balance float64) model.Loan {
	t.Helper()
	return NewLoan(propertyID).WithBalance(balance).Build(t, db)
}

// TransactionBuilder provides a fluent interface for creating test bank
// transactions.
//
// Example usage:
//
//	tx := testutil.NewBankTransaction(userID).
//	    ForProperty(property.ID).
//	    WithAmount(2400).
//	    WithDate(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)).
//	    Build(t, db)
type TransactionBuilder struct {
	ID          string
	UserID      string
	PropertyID  string
	Date        time.Time
	Amount      float64
	Type        string
	Description string
}

// NewBankTransaction creates a TransactionBuilder with sensible defaults.
// The transaction is unlinked; call ForProperty to tie it to a property.
func NewBankTransaction(userID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:          MakeID(),
		UserID:      userID,
		Date:        time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		Amount:      100,
		Type:        model.TransactionTypeIncome,
		Description: "Test transaction",
	}
}

// ForProperty links the transaction to a property.
func (b *TransactionBuilder) ForProperty(propertyID string) *TransactionBuilder {
	b.PropertyID = propertyID
	return b
}

// WithDate sets a custom transaction date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// WithAmount sets a custom signed amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithType sets a custom transaction type.
func (b *TransactionBuilder) WithType(txType string) *TransactionBuilder {
	b.Type = txType
	return b
}

// WithDescription sets a custom description.
func (b *TransactionBuilder) WithDescription(desc string) *TransactionBuilder {
	b.Description = desc
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	var propertyID interface{}
	if b.PropertyID != "" {
		propertyID = b.PropertyID
	}

	query := `
		INSERT INTO bank_transaction (id, user_id, property_id, date, amount, type, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, propertyID, b.Date.Format(dateFormat), b.Amount, b.Type, b.Description)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		UserID:      b.UserID,
		PropertyID:  b.PropertyID,
		Date:        b.Date,
		Amount:      b.Amount,
		Type:        b.Type,
		Description: b.Description,
	}
}

// CreateIncome creates an income transaction against a property.
//
// Example usage:
//
//	testutil.CreateIncome(t, db, userID, property.ID, 2400, rentDate)
func CreateIncome(t *testing.T, db *sql.DB, userID, propertyID string, amount float64, date time.Time) model.Transaction {
	t.Helper()
	return NewBankTransaction(userID).
		ForProperty(propertyID).
		WithAmount(amount).
		WithType(model.TransactionTypeIncome).
		WithDate(date).
		Build(t, db)
}

// CreateExpense creates an expense transaction against a property. The
// amount should be negative, matching how outflows are recorded.
//
// Example usage:
//
//	testutil.CreateExpense(t, db, userID, property.ID, -300, billDate)
func CreateExpense(t *testing.T, db *sql.DB, userID, propertyID string, amount float64, date time.Time) model.Transaction {
	t.Helper()
	return NewBankTransaction(userID).
		ForProperty(propertyID).
		WithAmount(amount).
		WithType(model.TransactionTypeExpense).
		WithDate(date).
		Build(t, db)
}
