package utils

import (
	"math"
	rndm "math/rand"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var digitRunes = []rune("0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// GenerateBookingReference returns a customer-facing reference like EGF-403921.
func GenerateBookingReference() string {
	return "EGF-" + GenerateRandomDigitString(6)
}

// --- Money ---

// RoundMoney rounds to 2 fractional digits. Apply only at storage or
// presentation boundaries, never between intermediate fee steps.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
