package domain

import (
	"errors"
	"os"
)

const (
	RoleUser = "user"

	DateLayout = "2006-01-02"
)

// Units every product, consumption and wastage record must use.
var AllowedUnits = []string{"kg", "g", "l", "ml", "szt"}

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("token is invalid")

	ErrInvalidUnit   = errors.New("unit is not allowed")
	ErrFutureDate    = errors.New("date cannot be in the future")
	ErrInvalidDate   = errors.New("invalid date format")
	ErrInvalidAmount = errors.New("amount must not be negative")
	ErrInvalidQty    = errors.New("quantity must be positive")
)

func IsAllowedUnit(unit string) bool {
	for _, u := range AllowedUnits {
		if u == unit {
			return true
		}
	}
	return false
}
