package usecase

import "strings"

// FormatPhoneNumber turns free-form input into a single dialable E.164-style
// string: strip everything but digits, then assume a US number when the
// digit count fits (10 digits, or 11 starting with "1"); anything else just
// gets the international prefix back. No validation happens here on purpose;
// the provider is the authority on whether a number is reachable.
func FormatPhoneNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if len(cleaned) == 10 {
		return "+1" + cleaned
	}
	if len(cleaned) == 11 && strings.HasPrefix(cleaned, "1") {
		return "+" + cleaned
	}
	return "+" + cleaned
}
