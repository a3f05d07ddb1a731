// Package card holds masking helpers for primary account numbers and CVVs.
// Full card data must never reach a log line or a stored record; everything
// that prints card material goes through these functions.
package card

import (
	"strconv"
	"strings"
)

const (
	panMask = "****"
	cvvMask = "***"
)

// MaskPAN redacts a card number to its last four digits. Anything shorter
// than four characters collapses to the fixed mask.
func MaskPAN(pan string) string {
	if len(pan) < 4 {
		return panMask
	}
	return strings.Repeat("*", len(pan)-4) + pan[len(pan)-4:]
}

// MaskCVV always returns the fixed mask, whatever the input.
func MaskCVV(string) string {
	return cvvMask
}

// LastFour returns the trailing four digits of a card number as an integer.
// Short or non-numeric input yields 0 rather than an error.
func LastFour(pan string) int {
	if len(pan) < 4 {
		return 0
	}
	n, err := strconv.Atoi(pan[len(pan)-4:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
