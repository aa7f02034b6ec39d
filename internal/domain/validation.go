package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// Dominican mobile prefixes accepted on the purchase form.
var allowedPhonePrefixes = []string{"809", "829", "849"}

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func ValidatePhone(phone string) error {
	digits := NormalizePhone(phone)
	if len(digits) != 10 {
		return fmt.Errorf("%w: phone must be 10 digits", ErrValidation)
	}
	for _, prefix := range allowedPhonePrefixes {
		if strings.HasPrefix(digits, prefix) {
			return nil
		}
	}
	return fmt.Errorf("%w: phone prefix must be one of 809/829/849", ErrValidation)
}

func ValidateBuyerName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 3 {
		return fmt.Errorf("%w: name too short", ErrValidation)
	}
	for _, r := range trimmed {
		if unicode.IsDigit(r) {
			return fmt.Errorf("%w: name must not contain digits", ErrValidation)
		}
	}
	return nil
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: malformed email", ErrValidation)
	}
	return nil
}

// ValidateBuyer checks and normalizes the buyer identity in place:
// the name is stored uppercased, the phone as bare digits.
func (b *BuyerInfo) ValidateBuyer() error {
	if err := ValidateBuyerName(b.Name); err != nil {
		return err
	}
	if err := ValidatePhone(b.Phone); err != nil {
		return err
	}
	if err := ValidateEmail(b.Email); err != nil {
		return err
	}
	b.Name = strings.ToUpper(strings.TrimSpace(b.Name))
	b.Phone = NormalizePhone(b.Phone)
	b.Email = strings.TrimSpace(b.Email)
	return nil
}

// MaskPhone hides the last four digits of a phone for public winner views.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) <= 4 {
		return "****"
	}
	return digits[:len(digits)-4] + "****"
}
