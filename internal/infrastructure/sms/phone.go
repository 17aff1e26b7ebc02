package sms

import (
	"strings"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// FormatKenyanPhone normalises a Kenyan phone number to +254 international
// format. Accepted inputs: 07XXXXXXXX, 01XXXXXXXX, 7XXXXXXXX, 1XXXXXXXX,
// 2547XXXXXXXX, +2547XXXXXXXX. Anything else is rejected.
func FormatKenyanPhone(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' {
			return r
		}
		return -1
	}, raw)

	switch {
	case strings.HasPrefix(cleaned, "+254"):
		cleaned = cleaned[1:]
	case strings.HasPrefix(cleaned, "254"):
		// already national-prefixed
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 10:
		cleaned = "254" + cleaned[1:]
	case (strings.HasPrefix(cleaned, "7") || strings.HasPrefix(cleaned, "1")) && len(cleaned) == 9:
		cleaned = "254" + cleaned
	default:
		return "", domain.ErrInvalidPhoneNumber
	}

	if len(cleaned) != 12 || !allDigits(cleaned) {
		return "", domain.ErrInvalidPhoneNumber
	}
	// mobile subscriber numbers start with 7 or 1 after the country code
	if cleaned[3] != '7' && cleaned[3] != '1' {
		return "", domain.ErrInvalidPhoneNumber
	}
	return "+" + cleaned, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
