package validation

import (
	"fmt"
	"strings"

	"github.com/propfolio/backend/internal/api/request"
	"github.com/propfolio/backend/internal/model"
)

// Error carries per-field validation failures for request payloads.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

func ValidateCreateProperty(req request.CreatePropertyRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Address) == "" {
		errors["address"] = "address is required"
	} else if len(req.Address) > 200 {
		errors["address"] = "address must be 200 characters or less"
	}

	if strings.TrimSpace(req.Suburb) == "" {
		errors["suburb"] = "suburb is required"
	}

	if strings.TrimSpace(req.State) == "" {
		errors["state"] = "state is required"
	}

	if req.PurchasePrice < 0 {
		errors["purchasePrice"] = "purchase price cannot be negative"
	}

	if _, err := ParseTime(req.PurchaseDate); err != nil {
		errors["purchaseDate"] = "purchase date must be a valid date"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateProperty(req request.UpdatePropertyRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Address) == "" {
		errors["address"] = "address is required"
	} else if len(req.Address) > 200 {
		errors["address"] = "address must be 200 characters or less"
	}

	if strings.TrimSpace(req.Suburb) == "" {
		errors["suburb"] = "suburb is required"
	}

	if strings.TrimSpace(req.State) == "" {
		errors["state"] = "state is required"
	}

	if req.PurchasePrice < 0 {
		errors["purchasePrice"] = "purchase price cannot be negative"
	}

	if _, err := ParseTime(req.PurchaseDate); err != nil {
		errors["purchaseDate"] = "purchase date must be a valid date"
	}

	status := model.PropertyStatus(req.Status)
	if status != model.PropertyStatusActive && status != model.PropertyStatusSold {
		errors["status"] = "status must be active or sold"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateValuation(req request.CreateValuationRequest) error {
	errors := make(map[string]string)

	if req.EstimatedValue <= 0 {
		errors["estimatedValue"] = "estimated value must be positive"
	}

	if _, err := ParseTime(req.ValueDate); err != nil {
		errors["valueDate"] = "value date must be a valid date"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateLoan(req request.CreateLoanRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Lender) == "" {
		errors["lender"] = "lender is required"
	}

	if req.InterestRate < 0 {
		errors["interestRate"] = "interest rate cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
