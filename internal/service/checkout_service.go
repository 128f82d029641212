package service

import (
	"fmt"

	"github.com/rajifPy/kantin-stok/internal/model"
	"github.com/rajifPy/kantin-stok/internal/repository"
	"github.com/rajifPy/kantin-stok/internal/ws"
	"github.com/rajifPy/kantin-stok/pkg/barcode"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartItem adalah satu baris keranjang di layar transaksi multi-item.
type CartItem struct {
	BarcodeID string `json:"barcode_id"`
	Jumlah    int    `json:"jumlah"`
}

// CheckoutResult membawa transaksi yang tersimpan plus sisa stok
// untuk langsung ditampilkan di layar kasir.
type CheckoutResult struct {
	Transaction    *model.Transaction `json:"data"`
	StockRemaining int                `json:"stock_remaining"`
}

type CheckoutService interface {
	Checkout(barcodeID string, jumlah int) (*CheckoutResult, error)
	CheckoutCart(items []CartItem) ([]CheckoutResult, error)
	GetTransactions(filter repository.TransactionFilter) ([]model.Transaction, error)
	GetTransaction(id uuid.UUID) (*model.Transaction, error)
}

type checkoutService struct {
	txRepo repository.TransactionRepository
	db     *gorm.DB
	hub    *ws.Hub
}

func NewCheckoutService(txRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) CheckoutService {
	return &checkoutService{
		txRepo: txRepo,
		db:     db,
		hub:    hub,
	}
}

// Checkout menjual satu produk: lookup barcode, cek stok, hitung total,
// simpan transaksi, kurangi stok. Seluruhnya satu transaksi database
// dengan baris produk di-lock FOR UPDATE, jadi nomor transaksi dan
// pengurangan stok tidak bisa balapan dengan checkout lain; kalau salah
// satu langkah gagal semuanya di-rollback, tidak ada catatan transaksi
// yatim atau stok yang terlanjur berkurang.
func (s *checkoutService) Checkout(barcodeID string, jumlah int) (*CheckoutResult, error) {
	if jumlah <= 0 {
		return nil, ErrInvalidRequest
	}

	var result *CheckoutResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = s.checkoutLine(tx, barcodeID, jumlah)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishSale(result)
	return result, nil
}

// CheckoutCart menjual seluruh isi keranjang dalam satu transaksi
// database: baris mana pun yang gagal membatalkan semuanya, tidak ada
// keranjang yang ter-apply setengah.
func (s *checkoutService) CheckoutCart(items []CartItem) ([]CheckoutResult, error) {
	if len(items) == 0 {
		return nil, ErrInvalidRequest
	}

	results := make([]CheckoutResult, 0, len(items))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, item := range items {
			result, err := s.checkoutLine(tx, item.BarcodeID, item.Jumlah)
			if err != nil {
				return &CartLineError{Index: i, Err: err}
			}
			results = append(results, *result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range results {
		s.publishSale(&results[i])
	}
	return results, nil
}

func (s *checkoutService) checkoutLine(tx *gorm.DB, barcodeID string, jumlah int) (*CheckoutResult, error) {
	if jumlah <= 0 {
		return nil, ErrInvalidRequest
	}

	// 1. Lock baris produk selama transaksi
	var product model.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "barcode_id = ?", barcode.Sanitize(barcodeID)).Error; err != nil {
		return nil, ErrProductNotFound
	}

	// 2. Cek stok
	if product.Stok < jumlah {
		return nil, &InsufficientStockError{Available: product.Stok}
	}

	// 3. Hitung total dan keuntungan dari snapshot harga saat ini
	totalHarga, keuntungan := computeTotals(jumlah, product.HargaJual, product.HargaModal)

	// 4. Nomor transaksi berikutnya, dibaca di dalam tx yang sama.
	//    Unique index di transaksi_id jadi jaring pengaman terakhir.
	last, err := s.txRepo.LastTransaksiID(tx)
	if err != nil {
		return nil, err
	}
	transaksiID, err := nextTransaksiID(last)
	if err != nil {
		return nil, err
	}

	// 5. Simpan transaksi dengan field produk ter-denormalisasi
	trans := &model.Transaction{
		TransaksiID: transaksiID,
		ProductID:   &product.ID,
		BarcodeID:   product.BarcodeID,
		NamaProduk:  product.NamaProduk,
		HargaSatuan: product.HargaJual,
		Jumlah:      jumlah,
		TotalHarga:  totalHarga,
		Keuntungan:  keuntungan,
	}
	if err := tx.Create(trans).Error; err != nil {
		return nil, err
	}

	// 6. Kurangi stok dengan guard di statement-nya. Nol baris berubah
	//    berarti guard gagal; rollback membuang transaksi di langkah 5.
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stok >= ?", product.ID, jumlah).
		Update("stok", gorm.Expr("stok - ?", jumlah))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrStockUpdateFailed
	}

	return &CheckoutResult{
		Transaction:    trans,
		StockRemaining: product.Stok - jumlah,
	}, nil
}

// computeTotals: total_harga = jumlah * harga_jual,
// keuntungan = jumlah * (harga_jual - harga_modal).
func computeTotals(jumlah int, hargaJual, hargaModal int64) (totalHarga, keuntungan int64) {
	totalHarga = int64(jumlah) * hargaJual
	keuntungan = int64(jumlah) * (hargaJual - hargaModal)
	return totalHarga, keuntungan
}

func (s *checkoutService) publishSale(result *CheckoutResult) {
	t := result.Transaction
	s.hub.PublishStockUpdate("transaction_created",
		fmt.Sprintf("%s: %d x %s, sisa stok %d", t.TransaksiID, t.Jumlah, t.NamaProduk, result.StockRemaining),
		map[string]interface{}{
			"transaksi_id":    t.TransaksiID,
			"barcode_id":      t.BarcodeID,
			"nama_produk":     t.NamaProduk,
			"jumlah":          t.Jumlah,
			"total_harga":     t.TotalHarga,
			"stock_remaining": result.StockRemaining,
		})
}

func (s *checkoutService) GetTransactions(filter repository.TransactionFilter) ([]model.Transaction, error) {
	return s.txRepo.FindAll(filter)
}

func (s *checkoutService) GetTransaction(id uuid.UUID) (*model.Transaction, error) {
	trans, err := s.txRepo.FindByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	return trans, nil
}
