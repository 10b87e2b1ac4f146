package validation

import (
	"github.com/propfolio/backend/internal/api/request"
	"github.com/propfolio/backend/internal/model"
)

func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if req.PropertyID != "" {
		if err := ValidateUUID(req.PropertyID); err != nil {
			errors["propertyId"] = "property id must be a valid UUID"
		}
	}

	if _, err := ParseTime(req.Date); err != nil {
		errors["date"] = "date must be a valid date"
	}

	switch req.Type {
	case model.TransactionTypeIncome, model.TransactionTypeExpense, model.TransactionTypeTransfer:
	default:
		errors["type"] = "type must be income, expense, or transfer"
	}

	if len(req.Description) > 500 {
		errors["description"] = "description must be 500 characters or less"
	}

	if req.Amount == 0 {
		errors["amount"] = "amount cannot be zero"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
