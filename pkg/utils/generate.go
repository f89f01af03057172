package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
)

// ==================== OTP ====================

// GenerateOTP returns a 6-digit code in the range 100000-999999.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// ==================== ORDER ID ====================

// GenerateOrderID returns a random 4-digit numeric order id. Collisions are
// possible and surface as a primary key violation on insert.
func GenerateOrderID() string {
	return fmt.Sprintf("%d", 1000+mrand.IntN(9000))
}
