package form

import "strings"

const (
	maxPhoneDigits = 11
	minPhoneDigits = 10
)

func PhoneDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func ValidPhone(raw string) bool {
	return len(PhoneDigits(raw)) >= minPhoneDigits
}

// FormatPhone applies the +7 (XXX) XXX-XX-XX input mask to whatever digits
// raw holds. The first digit is the country code and is always shown as 7.
// Input without digits is returned unchanged.
func FormatPhone(raw string) string {
	d := PhoneDigits(raw)
	if len(d) > maxPhoneDigits {
		d = d[:maxPhoneDigits]
	}

	switch n := len(d); {
	case n == 0:
		return raw
	case n == 1:
		return "+7 " + d
	case n <= 4:
		return "+7 (" + d[1:n]
	case n <= 7:
		return "+7 (" + d[1:4] + ") " + d[4:n]
	case n <= 9:
		return "+7 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:n]
	default:
		return "+7 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:9] + "-" + d[9:n]
	}
}
