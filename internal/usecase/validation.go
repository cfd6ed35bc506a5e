package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Required-field checks only. The normalizer and the provider decide what a
// usable phone number looks like, and the store accepts any email text.

func ValidateInitiateCallInput(input InitiateCallInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.To) == "" {
		errs = append(errs, ValidationError{"to", "is required"})
	}
	if strings.TrimSpace(input.From) == "" {
		errs = append(errs, ValidationError{"from", "is required"})
	}
	if strings.TrimSpace(input.ContactID) == "" {
		errs = append(errs, ValidationError{"contactId", "is required"})
	}

	return errs
}

func ValidateCreateContactInput(input CreateContactInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, ValidationError{"first_name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	}

	return errs
}
