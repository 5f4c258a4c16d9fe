package password

import (
	"commerce-ledger/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword  = errs.NewValidation("invalid password")
	ErrPasswordTooLong  = errs.NewValidation("password exceeds 72 bytes")
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
)

const DefaultCost = bcrypt.DefaultCost

// HashPassword hashes with DefaultCost. bcrypt ignores input past 72 bytes,
// so longer passwords are rejected instead of silently truncated.
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

// HashPasswordWithCost clamps cost into bcrypt's accepted range.
func HashPasswordWithCost(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}
	cost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrComparisonFailed on mismatch. A malformed stored
// hash is returned wrapped so it is not mistaken for a wrong password.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
