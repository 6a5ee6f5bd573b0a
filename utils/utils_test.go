package utils

import (
	"regexp"
	"testing"
)

func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{72.727579, 72.73},
		{70.6093, 70.61},
		{295.0, 295.0},
		{0.005, 0.01},
		{-1.005, -1.0},
		{0, 0},
	}
	for _, c := range cases {
		if got := RoundMoney(c.in); got != c.want {
			t.Fatalf("RoundMoney(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestGenerateBookingReference(t *testing.T) {
	re := regexp.MustCompile(`^EGF-\d{6}$`)
	for i := 0; i < 20; i++ {
		ref := GenerateBookingReference()
		if !re.MatchString(ref) {
			t.Fatalf("reference %q does not match EGF-NNNNNN", ref)
		}
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	for _, n := range []int{0, 1, 8, 32} {
		if got := GenerateRandomString(n); len(got) != n {
			t.Fatalf("len(GenerateRandomString(%d)) = %d", n, len(got))
		}
	}
}
