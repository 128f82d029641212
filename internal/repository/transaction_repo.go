package repository

import (
	"errors"
	"time"

	"github.com/rajifPy/kantin-stok/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter membatasi riwayat transaksi berdasarkan tanggal/limit
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// SalesSummary untuk angka agregat laporan
type SalesSummary struct {
	Total          int64 `json:"total"`
	TotalRevenue   int64 `json:"totalRevenue"`
	TotalProfit    int64 `json:"totalProfit"`
	TotalItems     int64 `json:"totalItems"`
	AvgTransaction int64 `json:"avgTransaction"`
}

// ProductSales untuk ranking produk terlaris
type ProductSales struct {
	BarcodeID  string `json:"barcode_id"`
	NamaProduk string `json:"nama_produk"`
	Quantity   int64  `json:"quantity"`
	Revenue    int64  `json:"revenue"`
	Profit     int64  `json:"profit"`
}

// CategorySummary untuk breakdown katalog per kategori
type CategorySummary struct {
	Name       string `json:"name"`
	Count      int64  `json:"count"`
	TotalStock int64  `json:"totalStock"`
	TotalValue int64  `json:"totalValue"`
}

// InventorySummary untuk angka katalog di dashboard
type InventorySummary struct {
	Total      int64 `json:"total"`
	TotalStock int64 `json:"totalStock"`
	LowStock   int64 `json:"lowStock"`
	OutOfStock int64 `json:"outOfStock"`
	TotalValue int64 `json:"totalValue"`
}

type TransactionRepository interface {
	FindAll(filter TransactionFilter) ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	LastTransaksiID(tx *gorm.DB) (string, error)
	GetSalesSummary(startDate, endDate time.Time) (*SalesSummary, error)
	GetTopProducts(startDate, endDate time.Time, limit int) ([]ProductSales, error)
	GetCategorySummary() ([]CategorySummary, error)
	GetInventorySummary() (*InventorySummary, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) FindAll(filter TransactionFilter) ([]model.Transaction, error) {
	var transactions []model.Transaction

	query := r.db.Order("created_at DESC")
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// LastTransaksiID membaca transaksi_id terakhir. Menerima *gorm.DB supaya
// bisa dipanggil di dalam transaksi checkout (sequencer harus satu tx
// dengan insert-nya, lihat checkout service).
func (r *transactionRepo) LastTransaksiID(tx *gorm.DB) (string, error) {
	if tx == nil {
		tx = r.db
	}

	var last model.Transaction
	err := tx.Select("transaksi_id").Order("created_at DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return last.TransaksiID, nil
}

func (r *transactionRepo) GetSalesSummary(startDate, endDate time.Time) (*SalesSummary, error) {
	var summary SalesSummary

	err := r.db.Model(&model.Transaction{}).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Select(`
			COUNT(*) as total,
			COALESCE(SUM(total_harga), 0) as total_revenue,
			COALESCE(SUM(keuntungan), 0) as total_profit,
			COALESCE(SUM(jumlah), 0) as total_items
		`).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	if summary.Total > 0 {
		summary.AvgTransaction = summary.TotalRevenue / summary.Total
	}
	return &summary, nil
}

func (r *transactionRepo) GetTopProducts(startDate, endDate time.Time, limit int) ([]ProductSales, error) {
	var results []ProductSales

	err := r.db.Model(&model.Transaction{}).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Select(`
			barcode_id,
			MAX(nama_produk) as nama_produk,
			SUM(jumlah) as quantity,
			SUM(total_harga) as revenue,
			SUM(keuntungan) as profit
		`).
		Group("barcode_id").
		Order("quantity DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

func (r *transactionRepo) GetCategorySummary() ([]CategorySummary, error) {
	var results []CategorySummary

	err := r.db.Model(&model.Product{}).
		Select(`
			kategori as name,
			COUNT(*) as count,
			COALESCE(SUM(stok), 0) as total_stock,
			COALESCE(SUM(stok * harga_jual), 0) as total_value
		`).
		Group("kategori").
		Order("count DESC").
		Scan(&results).Error
	return results, err
}

func (r *transactionRepo) GetInventorySummary() (*InventorySummary, error) {
	var summary InventorySummary

	err := r.db.Model(&model.Product{}).
		Select(`
			COUNT(*) as total,
			COALESCE(SUM(stok), 0) as total_stock,
			COUNT(*) FILTER (WHERE stok < ?) as low_stock,
			COUNT(*) FILTER (WHERE stok = 0) as out_of_stock,
			COALESCE(SUM(stok * harga_jual), 0) as total_value
		`, model.LowStockThreshold).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
