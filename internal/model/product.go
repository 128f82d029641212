package model

// Kategori adalah kategori produk kantin
type Kategori string

const (
	KategoriMakanan   Kategori = "Makanan"
	KategoriMinuman   Kategori = "Minuman"
	KategoriSnack     Kategori = "Snack"
	KategoriAlatTulis Kategori = "Alat Tulis"
	KategoriLainnya   Kategori = "Lainnya"
)

type Product struct {
	BaseModel
	BarcodeID  string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"barcode_id" validate:"required,barcode"`
	NamaProduk string   `gorm:"type:varchar(200);not null" json:"nama_produk" validate:"required,max=200"`
	Kategori   Kategori `gorm:"type:varchar(20);not null" json:"kategori" validate:"required,oneof=Makanan Minuman Snack 'Alat Tulis' Lainnya"`
	Stok       int      `gorm:"not null;default:0" json:"stok" validate:"gte=0"`
	HargaModal int64    `gorm:"not null;default:0" json:"harga_modal" validate:"gte=0"`
	HargaJual  int64    `gorm:"not null;default:0" json:"harga_jual" validate:"gte=0"`

	// Relasi
	Transactions []Transaction `json:"transactions,omitempty"`
}

// IsLowStock reports whether the product is below the restock threshold
func (p *Product) IsLowStock() bool {
	return p.Stok < LowStockThreshold
}

// LowStockThreshold adalah batas stok menipis
const LowStockThreshold = 10
