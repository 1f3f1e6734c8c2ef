package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.SalePrice.IsNegative() {
		errs = append(errs, ValidationError{Field: "SalePrice", Description: "Sale price cannot be negative"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	return errs
}

func validateClient(c ClientRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}
