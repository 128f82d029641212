package barcode_test

import (
	"strings"
	"testing"

	"github.com/rajifPy/kantin-stok/pkg/barcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDMatchesFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		id := barcode.GenerateID()
		require.True(t, barcode.ValidateFormat(id), "generated id %q must pass format validation", id)
		require.Len(t, id, 7)
		require.True(t, strings.HasPrefix(id, "BRK"))
	}
}

func TestValidateFormat(t *testing.T) {
	valid := []string{"BRK0001", "ABC", "8991002101234", strings.Repeat("A", 50)}
	for _, s := range valid {
		assert.True(t, barcode.ValidateFormat(s), s)
	}

	// terlalu pendek, lowercase, spasi, simbol, terlalu panjang, trailing newline
	invalid := []string{
		"",
		"AB",
		"brk0001",
		"BRK 001",
		"BRK-001",
		strings.Repeat("A", 51),
		"BRK0001\n",
	}
	for _, s := range invalid {
		assert.False(t, barcode.ValidateFormat(s), "%q should be invalid", s)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "BRK0001", barcode.Sanitize("  brk 0001 "))
	assert.Equal(t, "8991002101234", barcode.Sanitize("8991002101234"))
	assert.Equal(t, "", barcode.Sanitize("   "))
}

func TestDetectType(t *testing.T) {
	cases := map[string]string{
		"12345678":      "EAN-8",
		"1234567890123": "EAN-13",
		"123456789012":  "UPC-A",
		"BRK0001":       "CODE128",
		"ab!":           "UNKNOWN",
	}
	for input, want := range cases {
		assert.Equal(t, want, barcode.DetectType(input), input)
	}
}

func TestValidateEANChecksum(t *testing.T) {
	// EAN-13 dengan check digit benar
	assert.True(t, barcode.ValidateEANChecksum("4006381333931"))
	// EAN-8 dengan check digit benar
	assert.True(t, barcode.ValidateEANChecksum("12345678"))

	// check digit diubah
	assert.False(t, barcode.ValidateEANChecksum("4006381333932"))
	assert.False(t, barcode.ValidateEANChecksum("12345670"))

	// panjang/karakter salah
	assert.False(t, barcode.ValidateEANChecksum("1234"))
	assert.False(t, barcode.ValidateEANChecksum("123456789012")) // UPC-A tidak termasuk
	assert.False(t, barcode.ValidateEANChecksum("ABCDEFGH"))
}

func TestCalculateEAN13Checksum(t *testing.T) {
	check, err := barcode.CalculateEAN13Checksum("400638133393")
	require.NoError(t, err)
	assert.Equal(t, 1, check)

	// hasil kalkulasi harus lolos validasi
	assert.True(t, barcode.ValidateEANChecksum("4006381333931"))

	_, err = barcode.CalculateEAN13Checksum("12345")
	assert.ErrorIs(t, err, barcode.ErrNotEAN12)

	_, err = barcode.CalculateEAN13Checksum("ABCDEFGHIJKL")
	assert.ErrorIs(t, err, barcode.ErrNotEAN12)
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "1234 5678 9012 3", barcode.FormatDisplay("1234567890123"))
	assert.Equal(t, "1234 5678", barcode.FormatDisplay("12345678"))
	assert.Equal(t, "BRK0001", barcode.FormatDisplay("BRK0001"))
}
