package client

import (
	"errors"
	"regexp"

	"github.com/Dan9191/contact-service/internal/models"
)

// Field validation mirrors what the registration and contact forms check
// before submitting. The server performs no field-level validation of its
// own, so these are the only guards.

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

const minPasswordLen = 6

// ValidateEmail checks the address has a plausible user@domain.tld shape
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword enforces the minimum length and the confirmation match
func ValidatePassword(password, confirmation string) error {
	if len(password) < minPasswordLen {
		return errors.New("password must be at least 6 characters")
	}
	if password != confirmation {
		return errors.New("passwords do not match")
	}
	return nil
}

// ValidatePhone requires exactly ten digits
func ValidatePhone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return errors.New("phone must be exactly 10 digits")
	}
	return nil
}

// ValidateContact checks that every field is present and that email and
// phone match their patterns.
func ValidateContact(req models.ContactRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Phone == "" || req.Company == "" || req.JobTitle == "" {
		return errors.New("all fields are required")
	}
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	return ValidatePhone(req.Phone)
}
