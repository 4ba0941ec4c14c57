package password

import (
	"errors"

	"wedding-rsvp/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.NewKind("password comparison failed", errs.ErrUnauthorized)
	ErrInvalidPassword  = errs.NewKind("invalid password", errs.ErrInvalidInput)
	ErrInvalidHash      = errs.New("not a bcrypt hash")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// CheckHash rejects a configured hash that bcrypt cannot read, so a typo
// fails at startup instead of at the first login.
func CheckHash(hashedPassword string) error {
	if _, err := bcrypt.Cost([]byte(hashedPassword)); err != nil {
		return errs.Mark(err, ErrInvalidHash)
	}
	return nil
}
