// Package barcode berisi util untuk barcode produk: generate ID custom,
// validasi format, dan checksum EAN/UPC untuk barcode hasil scan.
package barcode

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
)

// Format: BRK + 4 digit (contoh: BRK0001)
const idPrefix = "BRK"

var (
	formatRegex  = regexp.MustCompile(`^[A-Z0-9]{3,50}$`)
	numericRegex = regexp.MustCompile(`^\d+$`)
	eanRegex     = regexp.MustCompile(`^\d{8}$|^\d{13}$`)
)

// ErrNotEAN12 is returned by CalculateEAN13Checksum for non 12-digit input.
var ErrNotEAN12 = errors.New("barcode must be 12 digits for EAN-13")

// GenerateID membuat barcode ID acak. Tidak dijamin unik; pengecekan
// uniqueness ada di product store saat create.
func GenerateID() string {
	return fmt.Sprintf("%s%04d", idPrefix, rand.IntN(9999)+1)
}

// ValidateFormat checks a custom barcode: alphanumeric uppercase,
// 3-50 characters, no spaces.
func ValidateFormat(barcode string) bool {
	return formatRegex.MatchString(barcode)
}

// Sanitize trims, uppercases, and strips whitespace from scanner input.
func Sanitize(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	return strings.Join(strings.Fields(s), "")
}

// DetectType returns the barcode symbology for a scanned string.
func DetectType(barcode string) string {
	switch {
	case len(barcode) == 8 && numericRegex.MatchString(barcode):
		return "EAN-8"
	case len(barcode) == 13 && numericRegex.MatchString(barcode):
		return "EAN-13"
	case len(barcode) == 12 && numericRegex.MatchString(barcode):
		return "UPC-A"
	case formatRegex.MatchString(barcode):
		return "CODE128"
	default:
		return "UNKNOWN"
	}
}

// ValidateEANChecksum memverifikasi check digit EAN-8/EAN-13 dengan
// weighted sum mod-10 (bobot 1,3 bergantian).
func ValidateEANChecksum(barcode string) bool {
	if !eanRegex.MatchString(barcode) {
		return false
	}

	checkDigit := int(barcode[len(barcode)-1] - '0')
	sum := 0
	for i, r := range barcode[:len(barcode)-1] {
		digit := int(r - '0')
		if i%2 == 0 {
			sum += digit
		} else {
			sum += digit * 3
		}
	}

	return (10-sum%10)%10 == checkDigit
}

// CalculateEAN13Checksum returns the check digit for a 12-digit payload.
func CalculateEAN13Checksum(barcode string) (int, error) {
	if len(barcode) != 12 || !numericRegex.MatchString(barcode) {
		return 0, ErrNotEAN12
	}

	sum := 0
	for i, r := range barcode {
		digit := int(r - '0')
		if i%2 == 0 {
			sum += digit
		} else {
			sum += digit * 3
		}
	}
	return (10 - sum%10) % 10, nil
}

// FormatDisplay menambah spasi tiap 4 digit untuk barcode numerik
// supaya gampang dibaca di struk/label.
func FormatDisplay(barcode string) string {
	if !numericRegex.MatchString(barcode) {
		return barcode
	}

	var b strings.Builder
	for i, r := range barcode {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
