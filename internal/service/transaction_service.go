package service

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/model"
	"github.com/propfolio/backend/internal/repository"
)

// TransactionService owns transaction business logic: window filtering and
// per-property partitioning for the metrics engine plus the CRUD surface.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	propertyRepo    *repository.PropertyRepository
}

// NewTransactionService creates a new TransactionService with the provided repositories.
func NewTransactionService(transactionRepo *repository.TransactionRepository, propertyRepo *repository.PropertyRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
	}
}

// WindowedByProperty returns the owner's property-linked transactions that
// fall inside the window, partitioned by property.
//
// Every requested property ID is present in the result, mapped to an empty
// slice when nothing happened in the window. An empty slice is a
// legitimate zero-income, zero-expense state; only a missing valuation is
// a missing-data state, and the two must stay distinguishable.
// Transactions with no property link are excluded before partitioning.
func (s *TransactionService) WindowedByProperty(userID string, propertyIDs []string, window model.PeriodWindow) (map[string][]model.Transaction, error) {
	partitioned, err := s.transactionRepo.GetPropertyTransactions(userID, propertyIDs, window.StartDate, window.EndDate)
	if err != nil {
		return nil, err
	}

	for _, id := range propertyIDs {
		if _, ok := partitioned[id]; !ok {
			partitioned[id] = []model.Transaction{}
		}
	}

	return partitioned, nil
}

// GetTransactions lists the owner's transactions in a date range,
// including ones not linked to any property.
func (s *TransactionService) GetTransactions(userID string, startDate, endDate time.Time) ([]model.Transaction, error) {
	if startDate.After(endDate) {
		return nil, apperrors.ErrInvalidDateRange
	}
	return s.transactionRepo.GetTransactions(userID, startDate, endDate)
}

// AddTransaction records a transaction. When propertyID is set it must
// reference one of the owner's properties.
func (s *TransactionService) AddTransaction(userID, propertyID string, date time.Time, amount float64, txType, description string) (model.Transaction, error) {
	if propertyID != "" {
		if _, err := s.propertyRepo.GetPropertyOnID(userID, propertyID); err != nil {
			return model.Transaction{}, err
		}
	}

	t := model.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		PropertyID:  propertyID,
		Date:        date,
		Amount:      amount,
		Type:        txType,
		Description: description,
	}

	if err := s.transactionRepo.CreateTransaction(t); err != nil {
		return model.Transaction{}, err
	}

	return t, nil
}

// DeleteTransaction removes one of the owner's transactions.
func (s *TransactionService) DeleteTransaction(userID, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(userID, transactionID)
}
