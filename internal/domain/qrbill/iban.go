package qrbill

import (
	"regexp"
	"strconv"
	"strings"
)

const ibanLength = 21

var ibanPattern = regexp.MustCompile(`^CH\d{2}\d{5}[A-Z0-9]{12}$`)

// QR-IBANs carry an institution id from the range reserved for the QR
// payment part.
const (
	qrIIDMin = 30000
	qrIIDMax = 31999
)

// NormalizeIBAN strips all whitespace from a raw IBAN and uppercases it.
func NormalizeIBAN(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

// ValidateIBAN reports whether iban is a well-formed Swiss IBAN. It
// expects a normalized value (see NormalizeIBAN) and returns false on
// malformed input instead of failing.
func ValidateIBAN(iban string) bool {
	if len(iban) != ibanLength {
		return false
	}
	if !strings.HasPrefix(iban, "CH") {
		return false
	}
	return ibanPattern.MatchString(iban)
}

// IsQRIBAN reports whether iban's five-digit institution id falls in the
// QR-IBAN range [30000, 31999]. Malformed input yields false.
func IsQRIBAN(iban string) bool {
	if !ValidateIBAN(iban) {
		return false
	}
	iid, err := strconv.Atoi(iban[4:9])
	if err != nil {
		return false
	}
	return iid >= qrIIDMin && iid <= qrIIDMax
}
