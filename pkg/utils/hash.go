package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}

// MaskPhone hides every digit but the last four (the last one when there are
// fewer than four), keeping separators in place.
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)

	total := 0
	for i := 0; i < len(phone); i++ {
		if isDigit(phone[i]) {
			total++
		}
	}
	keep := 4
	if total < 4 {
		keep = 1
	}

	b := []byte(phone)
	seen := 0
	for i := len(b) - 1; i >= 0; i-- {
		if isDigit(b[i]) {
			seen++
			if seen > keep {
				b[i] = '*'
			}
		}
	}
	return string(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
