package util

import "math/rand/v2"

// GenerateOTP returns a 6 digit code in [100000, 999999].
func GenerateOTP() int {
	return rand.IntN(900000) + 100000
}
