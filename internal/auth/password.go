package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password or PIN with the configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a plaintext secret against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// ValidatePIN checks the shape of a kiosk PIN before it is hashed.
func ValidatePIN(pin string) error {
	if len(pin) < 4 || len(pin) > 8 {
		return errors.New("pin must be 4 to 8 digits")
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return errors.New("pin must contain only digits")
		}
	}
	return nil
}

// ValidatePassword enforces the minimum password policy: length plus at
// least one letter and one digit.
func ValidatePassword(password string, minLength int) error {
	if minLength <= 0 {
		minLength = 8
	}
	if len(password) < minLength {
		return errors.New("password too short")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain a letter and a digit")
	}
	return nil
}
