package service

import (
	"fmt"
	"regexp"
	"strings"

	"bloodbank-data/internal/domain"
)

// Form validation rules. These run before any store access so malformed
// input never reaches the database.
var (
	contactPattern = regexp.MustCompile(`^[0-9]{10}$`)
	idPattern      = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

func validateContact(contact string) error {
	if !contactPattern.MatchString(contact) {
		return fmt.Errorf("contact must be a 10-digit phone number")
	}
	return nil
}

func validateID(field, id string) error {
	if id == "" {
		return fmt.Errorf("%s is required", field)
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%s must contain letters and numbers only", field)
	}
	return nil
}

func validateBloodGroup(group string) error {
	if !domain.ValidBloodGroup(group) {
		return fmt.Errorf("invalid blood group: %q", group)
	}
	return nil
}

func validateDesignation(designation string) error {
	for _, d := range domain.Designations {
		if d == designation {
			return nil
		}
	}
	return fmt.Errorf("designation must be one of: %s", strings.Join(domain.Designations, ", "))
}

func validateQuantity(quantity, max int) error {
	if quantity < 1 || quantity > max {
		return fmt.Errorf("quantity must be between 1 and %d", max)
	}
	return nil
}
