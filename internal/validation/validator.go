package validation

import (
	"net/url"
	"regexp"
	"strings"
	"wikiquiz/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the quiz generation request
func (v *Validator) ValidateGenerateQuizRequest(inputURL string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(inputURL) == "" {
		errs = append(errs, domain.NewMissingFieldError("input_url"))
		return errs
	}

	if !isValidArticleURL(inputURL) {
		errs = append(errs, domain.NewInvalidFormatError("input_url", inputURL))
	}

	return errs
}

// Helper functions for validation

// isValidArticleURL checks the URL is absolute http(s) with a host
func isValidArticleURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// IsValidULID checks if the string is a valid ULID format
func IsValidULID(s string) bool {
	// ULID is 26 characters long, Crockford's Base32 encoded
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
