package service

import (
	"errors"
	"fmt"
)

// Pesan error yang tampil ke kasir dibiarkan dalam Bahasa Indonesia,
// konsisten dengan dashboard yang mengonsumsinya.
var (
	ErrInvalidRequest      = errors.New("Invalid request data")
	ErrProductNotFound     = errors.New("Produk tidak ditemukan")
	ErrTransactionNotFound = errors.New("Transaksi tidak ditemukan")
	ErrDuplicateBarcode    = errors.New("Barcode ID sudah digunakan")
	ErrPriceInvariant      = errors.New("Harga jual harus lebih besar dari harga modal")
	ErrInvalidAction       = errors.New("Invalid action")
	ErrStockUpdateFailed   = errors.New("Gagal mengupdate stok")
)

// InsufficientStockError membawa sisa stok supaya kasir tahu
// berapa yang masih bisa dijual.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stok tidak cukup. Stok tersedia: %d", e.Available)
}

// CartLineError menandai baris keranjang mana yang menggagalkan checkout.
type CartLineError struct {
	Index int
	Err   error
}

func (e *CartLineError) Error() string {
	return fmt.Sprintf("item ke-%d: %v", e.Index+1, e.Err)
}

func (e *CartLineError) Unwrap() error {
	return e.Err
}
