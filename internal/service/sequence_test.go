package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTransaksiID(t *testing.T) {
	cases := []struct {
		last string
		want string
	}{
		{"", "TRX00001"}, // belum ada transaksi sama sekali
		{"TRX00001", "TRX00002"},
		{"TRX00042", "TRX00043"},
		{"TRX00999", "TRX01000"},
		{"TRX99999", "TRX100000"}, // lebar digit bertambah, tidak wrap
		{"TRX100000", "TRX100001"},
	}

	for _, tc := range cases {
		got, err := nextTransaksiID(tc.last)
		require.NoError(t, err, tc.last)
		assert.Equal(t, tc.want, got, tc.last)
	}
}

func TestNextTransaksiIDRejectsGarbage(t *testing.T) {
	for _, last := range []string{"TRXabc", "INV00001", "TRX"} {
		_, err := nextTransaksiID(last)
		assert.Error(t, err, last)
	}
}
