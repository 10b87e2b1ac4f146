package service

import (
	"github.com/google/uuid"

	"github.com/propfolio/backend/internal/model"
	"github.com/propfolio/backend/internal/repository"
)

// LoanService owns loan business logic: per-property debt aggregation for
// the metrics engine plus the CRUD surface.
type LoanService struct {
	loanRepo     *repository.LoanRepository
	propertyRepo *repository.PropertyRepository
}

// NewLoanService creates a new LoanService with the provided repositories.
func NewLoanService(loanRepo *repository.LoanRepository, propertyRepo *repository.PropertyRepository) *LoanService {
	return &LoanService{
		loanRepo:     loanRepo,
		propertyRepo: propertyRepo,
	}
}

// TotalDebt sums every loan balance per property. Split loans collapse to
// a single figure. Properties with no loans are absent from the map and
// read as zero debt downstream. Negative balances (loans in credit) pass
// through unclamped and can legitimately produce negative totals.
// Returns an empty map without querying when propertyIDs is empty.
func (s *LoanService) TotalDebt(userID string, propertyIDs []string) (map[string]float64, error) {
	debtByProperty := make(map[string]float64)
	if len(propertyIDs) == 0 {
		return debtByProperty, nil
	}

	loansByProperty, err := s.loanRepo.GetLoansForProperties(userID, propertyIDs)
	if err != nil {
		return nil, err
	}

	for propertyID, loans := range loansByProperty {
		total := 0.0
		for _, l := range loans {
			total += l.CurrentBalance
		}
		debtByProperty[propertyID] = total
	}

	return debtByProperty, nil
}

// GetLoans lists all loans secured against one of the owner's properties.
func (s *LoanService) GetLoans(userID, propertyID string) ([]model.Loan, error) {
	if _, err := s.propertyRepo.GetPropertyOnID(userID, propertyID); err != nil {
		return nil, err
	}
	return s.loanRepo.GetLoansOnProperty(userID, propertyID)
}

// AddLoan records a loan against one of the owner's properties.
func (s *LoanService) AddLoan(userID, propertyID, lender string, balance, interestRate float64) (model.Loan, error) {
	if _, err := s.propertyRepo.GetPropertyOnID(userID, propertyID); err != nil {
		return model.Loan{}, err
	}

	l := model.Loan{
		ID:             uuid.NewString(),
		PropertyID:     propertyID,
		Lender:         lender,
		CurrentBalance: balance,
		InterestRate:   interestRate,
	}

	if err := s.loanRepo.CreateLoan(l); err != nil {
		return model.Loan{}, err
	}

	return l, nil
}

// UpdateBalance sets the current balance on one of the owner's loans.
func (s *LoanService) UpdateBalance(userID, loanID string, balance float64) error {
	return s.loanRepo.UpdateLoanBalance(userID, loanID, balance)
}

// DeleteLoan removes one of the owner's loans.
func (s *LoanService) DeleteLoan(userID, loanID string) error {
	return s.loanRepo.DeleteLoan(userID, loanID)
}
