package validation

import (
	"errors"
	"net/mail"
)

// ValidateEmail checks the address is present, within the RFC 5321
// length cap and parses under net/mail's RFC 5322 grammar.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("invalid email address format")
	}
	return nil
}
