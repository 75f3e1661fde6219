package validation

import (
	"strings"
)

// DescriptionMaxLength bounds the free-text description of a session.
const DescriptionMaxLength = 500

// SessionValidator validates timer session inputs before they mutate state.
type SessionValidator struct{}

// NewSessionValidator creates a new session validator
func NewSessionValidator() *SessionValidator {
	return &SessionValidator{}
}

// ValidateStart validates the required associations of a new session.
// A failure here means the engine must leave any existing timer untouched.
func (sv *SessionValidator) ValidateStart(customerID, projectID, userID, description string) error {
	validationError := NewValidationError()

	if !isNonEmpty(customerID) {
		validationError.AddRequiredError("customer_id")
	}
	if !isNonEmpty(projectID) {
		validationError.AddRequiredError("project_id")
	}
	if !isNonEmpty(userID) {
		validationError.AddRequiredError("user_id")
	}
	if len(description) > DescriptionMaxLength {
		validationError.AddInvalidLengthError("description", description, DescriptionMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateHourlyRate validates the rate handed to a stop operation.
func (sv *SessionValidator) ValidateHourlyRate(rate float64) error {
	validationError := NewValidationError()

	if rate < 0 {
		validationError.AddInvalidValueError("hourly_rate", rate, "must be non-negative")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func isNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
