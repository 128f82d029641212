package model

import "github.com/google/uuid"

// Transaction adalah catatan penjualan satu produk. Field produk
// di-denormalisasi saat transaksi dibuat supaya riwayat tetap stabil
// walaupun produknya nanti diedit atau dihapus.
type Transaction struct {
	BaseModel
	TransaksiID string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"transaksi_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid" json:"product_id"`
	Product     *Product   `gorm:"constraint:OnDelete:SET NULL" json:"-" validate:"-"`

	// Snapshot produk saat penjualan
	BarcodeID   string `gorm:"type:varchar(50);not null" json:"barcode_id"`
	NamaProduk  string `gorm:"type:varchar(200);not null" json:"nama_produk"`
	HargaSatuan int64  `gorm:"not null" json:"harga_satuan"`

	Jumlah     int   `gorm:"not null" json:"jumlah" validate:"required,gt=0"`
	TotalHarga int64 `gorm:"not null" json:"total_harga"` // jumlah * harga_satuan
	Keuntungan int64 `gorm:"not null" json:"keuntungan"`  // jumlah * (harga_jual - harga_modal)
}
