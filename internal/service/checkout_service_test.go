package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	// Skenario kasir: 2 x produk dengan jual 1500 / modal 1000
	totalHarga, keuntungan := computeTotals(2, 1500, 1000)
	assert.Equal(t, int64(3000), totalHarga)
	assert.Equal(t, int64(1000), keuntungan)

	totalHarga, keuntungan = computeTotals(1, 5000, 3500)
	assert.Equal(t, int64(5000), totalHarga)
	assert.Equal(t, int64(1500), keuntungan)

	// jumlah besar tidak overflow int32
	totalHarga, _ = computeTotals(100000, 50000, 40000)
	assert.Equal(t, int64(5_000_000_000), totalHarga)
}

func TestCartLineErrorWrapsCause(t *testing.T) {
	cause := &InsufficientStockError{Available: 3}
	err := &CartLineError{Index: 2, Err: cause}

	assert.ErrorContains(t, err, "item ke-3")
	assert.ErrorContains(t, err, "Stok tersedia: 3")

	var insufficient *InsufficientStockError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Available)
}
